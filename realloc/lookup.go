package realloc

// Lookup reports the current targets of an entity, after the caller removed
// every edge touching the eliminated entity. Duplicates are allowed.
type Lookup[E comparable] interface {
	TargetsOf(e E) []E
}

// LookupFunc adapts a plain function to Lookup.
type LookupFunc[E comparable] func(e E) []E

// TargetsOf calls f(e).
func (f LookupFunc[E]) TargetsOf(e E) []E { return f(e) }

// MapLookup is a Lookup backed by a map from entity to its targets.
type MapLookup[E comparable] map[E][]E

// TargetsOf returns m[e].
func (m MapLookup[E]) TargetsOf(e E) []E { return m[e] }
