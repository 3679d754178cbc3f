package board

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/targetring/builder"
	"github.com/katalvlaran/targetring/offsets"
	"github.com/katalvlaran/targetring/realloc"
	"github.com/katalvlaran/targetring/target"
)

// Board is the in-memory assignment state of one game.
type Board[E comparable] struct {
	mu sync.Mutex

	key      string
	rng      *rand.Rand
	logger   Logger
	observer func(Event[E])

	roster      []E
	alive       map[E]bool
	targetCount int
	edges       []target.Edge[E]
	offsets     offsets.Set
	optimality  float64
	round       uint64
}

// New returns a Board over entities, all alive and without edges. The roster
// order is kept and is the order alive entities are handed to the builder.
//
// Errors: ErrDuplicateEntity, ErrObserverType.
func New[E comparable](entities []E, opts ...Option) (*Board[E], error) {
	cfg := newConfig(opts...)

	b := &Board[E]{
		key:         cfg.key,
		rng:         cfg.rng,
		logger:      cfg.logger,
		roster:      make([]E, 0, len(entities)),
		alive:       make(map[E]bool, len(entities)),
		targetCount: cfg.targetCount,
	}
	if cfg.observer != nil {
		fn, ok := cfg.observer.(func(Event[E]))
		if !ok {
			return nil, fmt.Errorf("New: %T: %w", cfg.observer, ErrObserverType)
		}
		b.observer = fn
	}
	for _, e := range entities {
		if _, dup := b.alive[e]; dup {
			return nil, fmt.Errorf("New: %v: %w", e, ErrDuplicateEntity)
		}
		b.alive[e] = true
		b.roster = append(b.roster, e)
	}

	return b, nil
}

// Shuffle replaces every edge with a fresh balanced assignment over the alive
// entities and starts a new round. On error the Board is unchanged.
//
// Errors: ErrTooFewEntities, or the builder's errors (e.g.
// builder.ErrNoValidAssignment for target counts no offset set can satisfy).
func (b *Board[E]) Shuffle() error {
	b.mu.Lock()
	alive := b.aliveLocked()
	if len(alive) < 2 {
		b.mu.Unlock()
		return fmt.Errorf("Shuffle: %d alive: %w", len(alive), ErrTooFewEntities)
	}

	round := b.round + 1
	var opt builder.BuilderOption
	if b.key != "" {
		opt = builder.WithKeyedSeed(b.key, round)
	} else {
		opt = builder.WithRand(b.rng)
	}
	a, err := builder.Shuffle(alive, b.targetCount, opt)
	if err != nil {
		b.mu.Unlock()
		b.logger.Error("shuffle failed", "key", b.key, "alive", len(alive), "targets", b.targetCount, "error", err)
		return fmt.Errorf("Shuffle: %w", err)
	}

	b.edges = a.Edges
	b.offsets = a.Offsets
	b.optimality = a.Optimality
	b.round = round
	ev := Event[E]{
		Kind:  EventNewTargets,
		Round: round,
		Edges: cloneEdges(a.Edges),
		Count: len(a.Offsets),
	}
	b.mu.Unlock()

	b.logger.Info("targets shuffled",
		"key", b.key, "round", round, "alive", len(alive),
		"offsets", a.Offsets, "optimality", a.Optimality)
	b.emit(ev)

	return nil
}

// Eliminate marks e as eliminated, removes every edge touching it and hands
// its targets to its targeters. It returns the edges that were added. On error
// the Board is unchanged.
//
// Errors: ErrUnknownEntity, ErrAlreadyEliminated, realloc.ErrTooManyTargets.
func (b *Board[E]) Eliminate(e E) ([]target.Edge[E], error) {
	b.mu.Lock()
	if err := b.checkAliveLocked("Eliminate", e); err != nil {
		b.mu.Unlock()
		return nil, err
	}

	targets := target.TargetsOf(b.edges, e)
	targeters := target.TargetersOf(b.edges, e)
	rest := make([]target.Edge[E], 0, len(b.edges))
	for _, edge := range b.edges {
		if !edge.Touches(e) {
			rest = append(rest, edge)
		}
	}
	lookup := realloc.LookupFunc[E](func(x E) []E {
		return target.TargetsOf(rest, x)
	})

	added, err := realloc.Reallocate(e, targets, targeters, lookup)
	if err != nil {
		b.mu.Unlock()
		b.logger.Error("reallocation failed", "key", b.key, "entity", e, "targets", len(targets), "error", err)
		return nil, fmt.Errorf("Eliminate: %v: %w", e, err)
	}

	b.alive[e] = false
	b.edges = append(rest, added...)
	ev := Event[E]{
		Kind:   EventEliminate,
		Round:  b.round,
		Entity: e,
		Edges:  cloneEdges(added),
	}
	b.mu.Unlock()

	b.logger.Info("entity eliminated",
		"key", b.key, "entity", e, "targets", len(targets),
		"targeters", len(targeters), "reallocated", len(added))
	b.emit(ev)

	return cloneEdges(added), nil
}

// AddTarget adds the edge from→to. A self-target is allowed; it is stored but
// hidden from TargetsOf. The edge is refused once from holds as many targets
// as a shuffle would give it now, duplicates included: the target count
// clamped to [1, alive-1].
//
// Errors: ErrUnknownEntity, ErrAlreadyEliminated, ErrTargetCapReached.
func (b *Board[E]) AddTarget(from, to E) error {
	b.mu.Lock()
	if err := b.checkAliveLocked("AddTarget", from); err != nil {
		b.mu.Unlock()
		return err
	}
	if err := b.checkAliveLocked("AddTarget", to); err != nil {
		b.mu.Unlock()
		return err
	}
	limit := offsets.ClampTargets(len(b.aliveLocked()), b.targetCount)
	if have := len(target.TargetsOf(b.edges, from)); have >= limit {
		b.mu.Unlock()
		return fmt.Errorf("AddTarget: %v holds %d of %d: %w", from, have, limit, ErrTargetCapReached)
	}

	edge := target.Edge[E]{From: from, To: to}
	b.edges = append(b.edges, edge)
	ev := Event[E]{Kind: EventTargetAdded, Round: b.round, Edge: edge}
	b.mu.Unlock()

	b.logger.Debug("target added", "key", b.key, "edge", edge.String())
	b.emit(ev)

	return nil
}

// RemoveTarget removes one from→to edge.
//
// Errors: ErrEdgeNotFound.
func (b *Board[E]) RemoveTarget(from, to E) error {
	edge := target.Edge[E]{From: from, To: to}

	b.mu.Lock()
	idx := -1
	for i, e := range b.edges {
		if e == edge {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return fmt.Errorf("RemoveTarget: %s: %w", edge, ErrEdgeNotFound)
	}
	b.edges = append(b.edges[:idx], b.edges[idx+1:]...)
	ev := Event[E]{Kind: EventTargetRemoved, Round: b.round, Edge: edge}
	b.mu.Unlock()

	b.logger.Debug("target removed", "key", b.key, "edge", edge.String())
	b.emit(ev)

	return nil
}

// SetTargetCount changes the number of targets per entity. Existing edges are
// kept; the count applies to the next Shuffle and to AddTarget's cap.
//
// Errors: ErrInvalidTargetCount.
func (b *Board[E]) SetTargetCount(t int) error {
	if t < 1 {
		return fmt.Errorf("SetTargetCount: %d: %w", t, ErrInvalidTargetCount)
	}

	b.mu.Lock()
	b.targetCount = t
	ev := Event[E]{Kind: EventChangeTargetCount, Round: b.round, Count: t}
	b.mu.Unlock()

	b.logger.Info("target count changed", "key", b.key, "targets", t)
	b.emit(ev)

	return nil
}

// Key returns the game key, or "" when the Board was built without WithKey.
func (b *Board[E]) Key() string { return b.key }

// Edges returns a copy of the current edges.
func (b *Board[E]) Edges() []target.Edge[E] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return cloneEdges(b.edges)
}

// TargetsOf returns the distinct targets of e, without e itself.
func (b *Board[E]) TargetsOf(e E) []E {
	b.mu.Lock()
	defer b.mu.Unlock()
	return target.Distinct(target.TargetsOf(b.edges, e), e)
}

// TargetersOf returns the distinct entities targeting e, without e itself.
func (b *Board[E]) TargetersOf(e E) []E {
	b.mu.Lock()
	defer b.mu.Unlock()
	return target.Distinct(target.TargetersOf(b.edges, e), e)
}

// Alive returns the alive entities in roster order.
func (b *Board[E]) Alive() []E {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.aliveLocked()
}

// IsAlive reports whether e is on the roster and not eliminated.
func (b *Board[E]) IsAlive(e E) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.alive[e]
}

// TargetCount returns the configured number of targets per entity.
func (b *Board[E]) TargetCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.targetCount
}

// Offsets returns the offset set of the last shuffle, or nil before the first.
func (b *Board[E]) Offsets() offsets.Set {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append(offsets.Set(nil), b.offsets...)
}

// Optimality returns the optimality diagnostic of the last shuffle.
func (b *Board[E]) Optimality() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.optimality
}

// Round returns the number of shuffles applied so far.
func (b *Board[E]) Round() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.round
}

func (b *Board[E]) aliveLocked() []E {
	out := make([]E, 0, len(b.roster))
	for _, e := range b.roster {
		if b.alive[e] {
			out = append(out, e)
		}
	}
	return out
}

func (b *Board[E]) checkAliveLocked(method string, e E) error {
	alive, known := b.alive[e]
	if !known {
		return fmt.Errorf("%s: %v: %w", method, e, ErrUnknownEntity)
	}
	if !alive {
		return fmt.Errorf("%s: %v: %w", method, e, ErrAlreadyEliminated)
	}
	return nil
}

func (b *Board[E]) emit(ev Event[E]) {
	if b.observer != nil {
		b.observer(ev)
	}
}

func cloneEdges[E comparable](edges []target.Edge[E]) []target.Edge[E] {
	if edges == nil {
		return nil
	}
	return append(make([]target.Edge[E], 0, len(edges)), edges...)
}
