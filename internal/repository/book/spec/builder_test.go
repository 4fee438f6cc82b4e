package spec

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuild_AllParams_OrderedClauses(t *testing.T) {
	b := NewBuilder(DefaultRegistry())
	filter, err := b.Build(SearchParams{
		Title:       "Dune",
		Author:      "Herbert",
		ISBN:        "9783161484100",
		BottomPrice: dec("10.00"),
		UpperPrice:  dec("29.99"),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	clauses := filter.Clauses()
	if len(clauses) != 4 {
		t.Fatalf("expected 4 clauses, got %d", len(clauses))
	}
	wantExprs := []string{
		"LOWER(title) LIKE ?",
		"LOWER(author) LIKE ?",
		"isbn = ANY(?)",
		"price BETWEEN ? AND ?",
	}
	for i, want := range wantExprs {
		if clauses[i].Expr != want {
			t.Fatalf("clause %d: expected %q, got %q", i, want, clauses[i].Expr)
		}
	}
}

func TestBuild_SubsetOfParams(t *testing.T) {
	b := NewBuilder(DefaultRegistry())
	filter, err := b.Build(SearchParams{Author: "Tolkien"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	clauses := filter.Clauses()
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Expr != "LOWER(author) LIKE ?" {
		t.Fatalf("unexpected clause %q", clauses[0].Expr)
	}
	if clauses[0].Args[0] != "%tolkien%" {
		t.Fatalf("unexpected arg %v", clauses[0].Args[0])
	}
}

func TestBuild_EmptyParams_MatchAll(t *testing.T) {
	b := NewBuilder(DefaultRegistry())
	filter, err := b.Build(SearchParams{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !filter.Empty() {
		t.Fatalf("expected match-all filter, got %+v", filter.Clauses())
	}
	where, args := filter.Where(1)
	if where != "" || args != nil {
		t.Fatalf("expected empty where, got %q %v", where, args)
	}
}

func TestBuild_NonPositiveBoundsIgnored(t *testing.T) {
	b := NewBuilder(DefaultRegistry())
	filter, err := b.Build(SearchParams{
		BottomPrice: dec("-1.00"),
		UpperPrice:  dec("-1.00"),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !filter.Empty() {
		t.Fatalf("expected no price clause, got %+v", filter.Clauses())
	}
}

func TestBuild_UpperBoundOnly(t *testing.T) {
	b := NewBuilder(DefaultRegistry())
	filter, err := b.Build(SearchParams{UpperPrice: dec("29.99")})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	clauses := filter.Clauses()
	if len(clauses) != 1 || clauses[0].Expr != "price < ?" {
		t.Fatalf("unexpected clauses %+v", clauses)
	}
	if clauses[0].Args[0] != "29.99" {
		t.Fatalf("unexpected arg %v", clauses[0].Args[0])
	}
}

func TestBuild_BottomBoundOnly(t *testing.T) {
	b := NewBuilder(DefaultRegistry())
	filter, err := b.Build(SearchParams{BottomPrice: dec("10.00")})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	clauses := filter.Clauses()
	if len(clauses) != 1 || clauses[0].Expr != "price > ?" {
		t.Fatalf("unexpected clauses %+v", clauses)
	}
	if clauses[0].Args[0] != "10" {
		t.Fatalf("unexpected arg %v", clauses[0].Args[0])
	}
}

func TestBuild_MixedSignBounds_SentinelSubstituted(t *testing.T) {
	b := NewBuilder(DefaultRegistry())
	filter, err := b.Build(SearchParams{
		BottomPrice: dec("-5.00"),
		UpperPrice:  dec("29.99"),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	clauses := filter.Clauses()
	if len(clauses) != 1 || clauses[0].Expr != "price < ?" {
		t.Fatalf("unexpected clauses %+v", clauses)
	}
}

func TestBuild_MisconfiguredRegistry(t *testing.T) {
	b := NewBuilder(NewRegistry(TitleProvider{}))
	_, err := b.Build(SearchParams{Author: "Herbert"})
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestWhere_RendersPositionalParams(t *testing.T) {
	b := NewBuilder(DefaultRegistry())
	filter, err := b.Build(SearchParams{
		Title:       "go",
		BottomPrice: dec("10.00"),
		UpperPrice:  dec("29.99"),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	where, args := filter.Where(3)
	want := "LOWER(title) LIKE $3 AND price BETWEEN $4 AND $5"
	if where != want {
		t.Fatalf("expected %q, got %q", want, where)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
}
