package spec

import "strings"

// Filter keys and the encoding used by the price provider.
const (
	KeyTitle  = "title"
	KeyAuthor = "author"
	KeyISBN   = "isbn"
	KeyPrice  = "price"

	// NoValue marks an absent bound inside an encoded price range.
	NoValue   = "no_value"
	Delimiter = "-"
)

// Provider turns one raw criterion value into a SQL clause.
type Provider interface {
	Key() string
	Clause(value string) Clause
}

type TitleProvider struct{}

func (TitleProvider) Key() string { return KeyTitle }

func (TitleProvider) Clause(value string) Clause {
	return Clause{
		Expr: "LOWER(title) LIKE ?",
		Args: []any{"%" + strings.ToLower(value) + "%"},
	}
}

type AuthorProvider struct{}

func (AuthorProvider) Key() string { return KeyAuthor }

func (AuthorProvider) Clause(value string) Clause {
	return Clause{
		Expr: "LOWER(author) LIKE ?",
		Args: []any{"%" + strings.ToLower(value) + "%"},
	}
}

type ISBNProvider struct{}

func (ISBNProvider) Key() string { return KeyISBN }

// Clause keeps membership semantics even though callers only ever pass a
// single ISBN.
func (ISBNProvider) Clause(value string) Clause {
	return Clause{
		Expr: "isbn = ANY(?)",
		Args: []any{[]string{value}},
	}
}

type PriceProvider struct{}

func (PriceProvider) Key() string { return KeyPrice }

// Clause decodes a `bottom-upper` range where either side may be NoValue.
// The builder never emits a range with both sides absent.
func (PriceProvider) Clause(value string) Clause {
	bottom, upper := splitPriceRange(value)
	if bottom == NoValue {
		return Clause{Expr: "price < ?", Args: []any{upper}}
	}
	if upper == NoValue {
		return Clause{Expr: "price > ?", Args: []any{bottom}}
	}
	return Clause{Expr: "price BETWEEN ? AND ?", Args: []any{bottom, upper}}
}

func splitPriceRange(value string) (string, string) {
	parts := strings.SplitN(value, Delimiter, 2)
	if len(parts) < 2 {
		return parts[0], NoValue
	}
	return parts[0], parts[1]
}
