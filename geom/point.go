package geom

import (
	"cmp"
	"fmt"
)

// Point is a 2D coordinate pair. It is comparable, so == is structural
// equality.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Move translates the point by (dx, dy) in place.
func (p *Point[T]) Move(dx, dy T) {
	p.X += dx
	p.Y += dy
}

// Compare orders points by X first, then Y. It returns -1 when p sorts
// before q, +1 when after, and 0 when the points are equal. For floating
// point instantiations the order is total: a NaN coordinate sorts before
// any other value.
func (p Point[T]) Compare(q Point[T]) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// Less reports whether p sorts before q in the order defined by Compare.
func (p Point[T]) Less(q Point[T]) bool {
	return p.Compare(q) < 0
}

// String renders the point as "(x, y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
