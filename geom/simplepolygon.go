package geom

import (
	"errors"
	"slices"
	"strings"
)

// ErrEmptyPolygon reports access to the boundary of an empty polygon.
// The accessor forms return it; the Must forms panic with it.
var ErrEmptyPolygon = errors.New("geom: empty polygon")

// SimplePolygon is one closed boundary described by an ordered point
// sequence (a piecewise-linear curve), conventionally clockwise.
// Orientation is neither verified nor enforced. The zero value is the
// empty polygon.
type SimplePolygon[T Scalar] struct {
	curve []Point[T]
}

// NewSimplePolygon returns the polygon bounded by curve. The slice is
// retained, not copied; use Clone for an independent polygon.
func NewSimplePolygon[T Scalar](curve []Point[T]) SimplePolygon[T] {
	return SimplePolygon[T]{curve: curve}
}

// Empty reports whether the polygon has no boundary points.
func (sp SimplePolygon[T]) Empty() bool {
	return len(sp.curve) == 0
}

// Len returns the number of boundary points.
func (sp SimplePolygon[T]) Len() int {
	return len(sp.curve)
}

// BoundaryCurve returns the boundary point sequence, or ErrEmptyPolygon
// when the polygon is empty. The returned slice aliases the polygon's
// storage: writing through it moves the boundary.
func (sp SimplePolygon[T]) BoundaryCurve() ([]Point[T], error) {
	if sp.Empty() {
		return nil, ErrEmptyPolygon
	}
	return sp.curve, nil
}

// MustBoundaryCurve is like BoundaryCurve but panics with
// ErrEmptyPolygon when the polygon is empty. Meant for callers that have
// already checked Empty.
func (sp SimplePolygon[T]) MustBoundaryCurve() []Point[T] {
	if sp.Empty() {
		panic(ErrEmptyPolygon)
	}
	return sp.curve
}

// Equal reports whether both polygons carry the same boundary sequence,
// point for point.
func (sp SimplePolygon[T]) Equal(o SimplePolygon[T]) bool {
	return slices.Equal(sp.curve, o.curve)
}

// Compare orders polygons lexicographically by their boundary sequences,
// points ordered as by Point.Compare.
func (sp SimplePolygon[T]) Compare(o SimplePolygon[T]) int {
	return slices.CompareFunc(sp.curve, o.curve, Point[T].Compare)
}

// Clone returns a polygon with its own copy of the boundary.
func (sp SimplePolygon[T]) Clone() SimplePolygon[T] {
	return SimplePolygon[T]{curve: slices.Clone(sp.curve)}
}

// Move translates every boundary point by (dx, dy) in place. Moving an
// empty polygon is a no-op.
func (sp *SimplePolygon[T]) Move(dx, dy T) {
	for i := range sp.curve {
		sp.curve[i].Move(dx, dy)
	}
}

// BoundingBox returns the smallest axis-aligned rect covering every
// boundary point, or ErrEmptyPolygon when the polygon is empty. Each
// axis is reduced independently in a single pass, so the result is
// correct even when no single boundary point holds both extremes.
func (sp SimplePolygon[T]) BoundingBox() (Rect[T], error) {
	if sp.Empty() {
		return Rect[T]{}, ErrEmptyPolygon
	}
	bl, tr := sp.curve[0], sp.curve[0]
	for _, p := range sp.curve[1:] {
		bl.X = min(bl.X, p.X)
		bl.Y = min(bl.Y, p.Y)
		tr.X = max(tr.X, p.X)
		tr.Y = max(tr.Y, p.Y)
	}
	return RectFromCorners(bl, tr), nil
}

// String renders the boundary as "[(x, y) (x, y) ...]".
func (sp SimplePolygon[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range sp.curve {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}
