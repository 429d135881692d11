package parse

import "fmt"

// ShapeError reports input that does not conform to the supported export
// shape: a missing container, or a boundary without its author/date
// sub-structure. It is fatal; the parser never repairs input.
type ShapeError struct {
	What string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected document shape: %s", e.What)
}
