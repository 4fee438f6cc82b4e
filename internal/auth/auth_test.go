package auth

import (
	"testing"
	"time"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	token, err := m.Issue("user-1", "ADMIN")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user-1" || claims.Role != "ADMIN" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue("user-1", "USER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	token, err := NewManager("secret", -time.Minute).Issue("user-1", "USER")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewManager("secret", -time.Minute).Parse(token); err == nil {
		t.Fatalf("expected parse failure for expired token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-Pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "s3cret-Pass") {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}
