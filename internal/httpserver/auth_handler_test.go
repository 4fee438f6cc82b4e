package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/domain"
	usersvc "bookstore/internal/service/user"
	"github.com/gin-gonic/gin"
)

func TestRegister_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Users.(*stubUserService).user = &domain.User{ID: "u1", Email: "reader@example.com", Role: domain.RoleUser}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"email":"reader@example.com","password":"secret-password","firstName":"Jo","lastName":"Reader"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Users.(*stubUserService).err = domain.ErrAlreadyExists
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"email":"reader@example.com","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), nil, testDeps())

	body := `{"email":"reader@example.com","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	users := deps.Users.(*stubUserService)
	users.user = &domain.User{ID: "u1", Email: "reader@example.com"}
	users.token = "signed-token"
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"email":"reader@example.com","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"signed-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Users.(*stubUserService).err = usersvc.ErrInvalidCredentials
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"email":"reader@example.com","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
