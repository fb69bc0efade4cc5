package geom

import "fmt"

// Segment is a line segment between two endpoints. The endpoints are
// kept in order: segments compare equal only when their endpoints match
// pairwise, so Seg(p, q) != Seg(q, p) unless p == q. A == B is a valid
// zero-length segment.
type Segment[T Scalar] struct {
	A, B Point[T]
}

// Seg is shorthand for Segment[T]{a, b}.
func Seg[T Scalar](a, b Point[T]) Segment[T] {
	return Segment[T]{A: a, B: b}
}

// Move translates both endpoints by (dx, dy) in place.
func (s *Segment[T]) Move(dx, dy T) {
	s.A.Move(dx, dy)
	s.B.Move(dx, dy)
}

// Intersects reports whether s and o share at least one point, whether a
// proper crossing, a shared endpoint, or a collinear overlap. Zero-length
// segments reduce to point-on-segment checks. The test uses only
// comparisons and cross products, so it is exact as long as the products
// stay within T's range; keeping coordinates there is the caller's
// concern.
func (s Segment[T]) Intersects(o Segment[T]) bool {
	o1 := orientation(s.A, s.B, o.A)
	o2 := orientation(s.A, s.B, o.B)
	o3 := orientation(o.A, o.B, s.A)
	o4 := orientation(o.A, o.B, s.B)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear triples: intersection iff the third point lands within
	// the segment's extent.
	switch {
	case o1 == 0 && onSegment(s.A, o.A, s.B):
		return true
	case o2 == 0 && onSegment(s.A, o.B, s.B):
		return true
	case o3 == 0 && onSegment(o.A, s.A, o.B):
		return true
	case o4 == 0 && onSegment(o.A, s.B, o.B):
		return true
	}
	return false
}

// String renders the segment as "(x1, y1)-(x2, y2)".
func (s Segment[T]) String() string {
	return fmt.Sprintf("%v-%v", s.A, s.B)
}

// orientation returns the turn direction of the ordered point triple
// (p, q, r): +1 clockwise, -1 counterclockwise, 0 collinear. It is the
// sign of the cross product (q-p) x (r-q), with the Y axis pointing up.
func orientation[T Scalar](p, q, r Point[T]) int {
	cross := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}

// onSegment reports whether q lies within the axis-aligned extent of the
// segment pr. Callers must have established that p, q, r are collinear;
// under that premise it is an exact point-on-segment test.
func onSegment[T Scalar](p, q, r Point[T]) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}
