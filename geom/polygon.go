package geom

import (
	"slices"
	"strings"
)

// Polygon is a polygon with optional holes, stored as a contour
// sequence: the first contour is the outer boundary and every following
// contour is a hole. The zero value is the empty polygon.
type Polygon[T Scalar] struct {
	contours []SimplePolygon[T]
}

// NewPolygon returns the polygon with the given boundary and holes. The
// boundary always occupies a contour slot, so even a polygon built from
// an empty boundary is not Empty.
func NewPolygon[T Scalar](boundary SimplePolygon[T], holes ...SimplePolygon[T]) Polygon[T] {
	contours := make([]SimplePolygon[T], 0, len(holes)+1)
	contours = append(contours, boundary)
	contours = append(contours, holes...)
	return Polygon[T]{contours: contours}
}

// Empty reports whether the polygon has no contours at all.
func (p Polygon[T]) Empty() bool {
	return len(p.contours) == 0
}

// Len returns the number of contours, boundary included.
func (p Polygon[T]) Len() int {
	return len(p.contours)
}

// HasHoles reports whether any hole contours are present.
func (p Polygon[T]) HasHoles() bool {
	return len(p.contours) > 1
}

// Boundary returns the outer boundary contour, or ErrEmptyPolygon when
// the polygon is empty. The pointer aliases the polygon's storage, so
// moving the returned contour moves the polygon's boundary.
func (p Polygon[T]) Boundary() (*SimplePolygon[T], error) {
	if p.Empty() {
		return nil, ErrEmptyPolygon
	}
	return &p.contours[0], nil
}

// MustBoundary is like Boundary but panics with ErrEmptyPolygon when the
// polygon is empty. Meant for callers that have already checked Empty.
func (p Polygon[T]) MustBoundary() *SimplePolygon[T] {
	if p.Empty() {
		panic(ErrEmptyPolygon)
	}
	return &p.contours[0]
}

// Holes returns the hole contours in insertion order as a view into the
// polygon's own contour storage, nil when there are none. The view is
// not a copy: mutations through it, such as moving a hole, are visible
// in the polygon.
func (p Polygon[T]) Holes() []SimplePolygon[T] {
	if len(p.contours) < 2 {
		return nil
	}
	return p.contours[1:]
}

// Equal reports whether both polygons carry the same contour sequences.
func (p Polygon[T]) Equal(o Polygon[T]) bool {
	return slices.EqualFunc(p.contours, o.contours, SimplePolygon[T].Equal)
}

// Clone returns a polygon with its own copy of every contour.
func (p Polygon[T]) Clone() Polygon[T] {
	contours := make([]SimplePolygon[T], len(p.contours))
	for i, c := range p.contours {
		contours[i] = c.Clone()
	}
	return Polygon[T]{contours: contours}
}

// Move translates the boundary and every hole by (dx, dy) in place.
func (p *Polygon[T]) Move(dx, dy T) {
	for i := range p.contours {
		p.contours[i].Move(dx, dy)
	}
}

// BoundingBox returns the bounding box of the outer boundary, or
// ErrEmptyPolygon when the polygon is empty. Holes are interior to the
// boundary and do not contribute.
func (p Polygon[T]) BoundingBox() (Rect[T], error) {
	if p.Empty() {
		return Rect[T]{}, ErrEmptyPolygon
	}
	return p.contours[0].BoundingBox()
}

// String renders the boundary contour followed by any holes, e.g.
// "[(0, 0) (4, 0) (4, 4)] holes [[(1, 1) (2, 1) (2, 2)]]". An empty
// polygon renders as "[]".
func (p Polygon[T]) String() string {
	if p.Empty() {
		return "[]"
	}
	if !p.HasHoles() {
		return p.contours[0].String()
	}
	var b strings.Builder
	b.WriteString(p.contours[0].String())
	b.WriteString(" holes [")
	for i, h := range p.contours[1:] {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(h.String())
	}
	b.WriteByte(']')
	return b.String()
}
