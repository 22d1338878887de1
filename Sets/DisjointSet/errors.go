package DisjointSet

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// InvalidElementError is returned when an element isn't in [0,N).
// Nothing is modified when it's returned.
type InvalidElementError[E constraints.Integer] struct {
	Value E
	N     int
}

func (e *InvalidElementError[E]) Error() string {
	return fmt.Sprintf("%d is not in [0,%d)", e.Value, e.N)
}

// DuplicateMakeSetError is returned by MakeSet when the new element isn't
// exactly the current size; elements are only ever appended.
type DuplicateMakeSetError[E constraints.Integer] struct {
	Value E
	Want  int
}

func (e *DuplicateMakeSetError[E]) Error() string {
	return fmt.Sprintf("a new element must have index %d, got %d", e.Want, e.Value)
}
