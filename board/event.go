package board

import (
	"fmt"

	"github.com/katalvlaran/targetring/target"
)

// EventKind classifies a Board mutation.
type EventKind uint8

const (
	// EventNone is the zero value; no Board emits it.
	EventNone EventKind = iota
	// EventNewTargets follows a Shuffle.
	EventNewTargets
	// EventEliminate follows an Eliminate.
	EventEliminate
	// EventTargetAdded follows an AddTarget.
	EventTargetAdded
	// EventTargetRemoved follows a RemoveTarget.
	EventTargetRemoved
	// EventChangeTargetCount follows a SetTargetCount.
	EventChangeTargetCount
)

var kindNames = map[EventKind]string{
	EventNone:              "NONE",
	EventNewTargets:        "NEW_TARGETS",
	EventEliminate:         "ELIMINATE",
	EventTargetAdded:       "TARGET_ADDED",
	EventTargetRemoved:     "TARGET_REMOVED",
	EventChangeTargetCount: "CHANGE_NUM_TARGETS",
}

var kindsByName = func() map[string]EventKind {
	m := make(map[string]EventKind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the upper snake case name of k.
func (k EventKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, error) {
	if k, ok := kindsByName[s]; ok {
		return k, nil
	}
	return EventNone, fmt.Errorf("board: unknown event kind %q", s)
}

// Event describes one applied mutation. Fields that do not apply to Kind are
// zero.
type Event[E comparable] struct {
	Kind EventKind

	// Round is the shuffle round the Board was in after the mutation.
	Round uint64

	// Entity is the eliminated entity (EventEliminate).
	Entity E

	// Edge is the added or removed edge (EventTargetAdded, EventTargetRemoved).
	Edge target.Edge[E]

	// Edges are the new edges: the full assignment for EventNewTargets, the
	// reallocated edges for EventEliminate.
	Edges []target.Edge[E]

	// Count is the new target count (EventChangeTargetCount) or the shuffled
	// target count (EventNewTargets).
	Count int
}
