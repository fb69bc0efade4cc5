// Package geom provides lightweight 2D geometric value types: points,
// segments, axis-aligned rectangles and squares, and polygons with hole
// contours, plus containment, intersection, translation, and bounding-box
// operations over them.
//
// All types are generic over their coordinate type and are plain values
// with no hidden sharing. Predicates never mutate their operands; the
// Move methods are the only mutating operations, and they translate the
// receiver in place.
package geom

import "golang.org/x/exp/constraints"

// Scalar constrains the coordinate types the geometry types can carry:
// any integer or floating-point type.
type Scalar interface {
	constraints.Integer | constraints.Float
}
