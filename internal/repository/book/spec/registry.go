package spec

import (
	"errors"
	"fmt"
)

// ErrUnknownKey indicates a lookup for a key no provider was registered
// under. The key set is fixed at startup, so hitting this is a wiring
// defect rather than a user error.
var ErrUnknownKey = errors.New("unknown filter key")

// Registry maps filter keys to their providers. Built once at startup and
// never mutated afterwards, so concurrent lookups need no locking.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	m := make(map[string]Provider, len(providers))
	for _, p := range providers {
		m[p.Key()] = p
	}
	return &Registry{providers: m}
}

// DefaultRegistry holds the full provider set the search endpoint supports.
func DefaultRegistry() *Registry {
	return NewRegistry(TitleProvider{}, AuthorProvider{}, ISBNProvider{}, PriceProvider{})
}

func (r *Registry) Get(key string) (Provider, error) {
	p, ok := r.providers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return p, nil
}
