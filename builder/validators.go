// validators.go: checks that enforce Build's preconditions before any edge
// is emitted.

package builder

import "fmt"

// minEntities is the smallest ring that supports an assignment.
const minEntities = 2

// validateEntities ensures at least minEntities distinct entities.
// Complexity: O(n) time and space.
func validateEntities[E comparable](method string, entities []E) error {
	if len(entities) < minEntities {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, len(entities), minEntities, ErrTooFewEntities)
	}
	seen := make(map[E]struct{}, len(entities))
	for i, e := range entities {
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%s: entity %v repeated at index %d: %w", method, e, i, ErrDuplicateEntity)
		}
		seen[e] = struct{}{}
	}

	return nil
}
