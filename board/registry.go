package board

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"
)

// Registry maps game keys to Boards. It is safe for concurrent use; each
// Board still serializes its own mutations.
type Registry[E comparable] struct {
	games *xsync.Map[string, *Board[E]]
}

// NewRegistry returns an empty Registry.
func NewRegistry[E comparable]() *Registry[E] {
	return &Registry[E]{games: xsync.NewMap[string, *Board[E]]()}
}

// Open creates a Board for key with WithKey(key) applied after opts, so
// shuffles are seeded per game and round.
//
// Errors: ErrEmptyKey, ErrGameExists, or New's errors.
func (r *Registry[E]) Open(key string, entities []E, opts ...Option) (*Board[E], error) {
	if key == "" {
		return nil, fmt.Errorf("Open: %w", ErrEmptyKey)
	}
	if _, ok := r.games.Load(key); ok {
		return nil, fmt.Errorf("Open: %q: %w", key, ErrGameExists)
	}
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	b, err := New(entities, append(all, WithKey(key))...)
	if err != nil {
		return nil, fmt.Errorf("Open: %q: %w", key, err)
	}
	if _, loaded := r.games.LoadOrStore(key, b); loaded {
		return nil, fmt.Errorf("Open: %q: %w", key, ErrGameExists)
	}

	return b, nil
}

// Get returns the Board for key.
func (r *Registry[E]) Get(key string) (*Board[E], bool) {
	return r.games.Load(key)
}

// Close forgets key and reports whether it was open.
func (r *Registry[E]) Close(key string) bool {
	_, ok := r.games.LoadAndDelete(key)
	return ok
}

// Len returns the number of open games.
func (r *Registry[E]) Len() int {
	return r.games.Size()
}

// Keys returns the open game keys in no particular order.
func (r *Registry[E]) Keys() []string {
	keys := make([]string, 0, r.games.Size())
	r.games.Range(func(key string, _ *Board[E]) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
