package spec

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SearchParams are the optional book search criteria. Blank strings and
// non-positive price bounds mean "not specified".
type SearchParams struct {
	Title       string
	Author      string
	ISBN        string
	BottomPrice decimal.Decimal
	UpperPrice  decimal.Decimal
}

// Builder composes a Filter from search params by resolving and applying
// the matching providers, always in title, author, isbn, price order.
type Builder struct {
	registry *Registry
}

func NewBuilder(registry *Registry) *Builder {
	return &Builder{registry: registry}
}

func (b *Builder) Build(params SearchParams) (Filter, error) {
	var filter Filter

	if v := strings.TrimSpace(params.Title); v != "" {
		c, err := b.clauseFor(KeyTitle, v)
		if err != nil {
			return Filter{}, err
		}
		filter = filter.And(c)
	}
	if v := strings.TrimSpace(params.Author); v != "" {
		c, err := b.clauseFor(KeyAuthor, v)
		if err != nil {
			return Filter{}, err
		}
		filter = filter.And(c)
	}
	if v := strings.TrimSpace(params.ISBN); v != "" {
		c, err := b.clauseFor(KeyISBN, v)
		if err != nil {
			return Filter{}, err
		}
		filter = filter.And(c)
	}
	if params.BottomPrice.IsPositive() || params.UpperPrice.IsPositive() {
		c, err := b.clauseFor(KeyPrice, encodePriceRange(params.BottomPrice, params.UpperPrice))
		if err != nil {
			return Filter{}, err
		}
		filter = filter.And(c)
	}

	return filter, nil
}

func (b *Builder) clauseFor(key, value string) (Clause, error) {
	provider, err := b.registry.Get(key)
	if err != nil {
		return Clause{}, err
	}
	return provider.Clause(value), nil
}

// encodePriceRange joins both bounds with the delimiter, substituting the
// sentinel for a bound that is absent or not strictly positive.
func encodePriceRange(bottom, upper decimal.Decimal) string {
	return boundOrSentinel(bottom) + Delimiter + boundOrSentinel(upper)
}

func boundOrSentinel(d decimal.Decimal) string {
	if d.IsPositive() {
		return d.String()
	}
	return NoValue
}
