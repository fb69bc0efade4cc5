package geom

import "fmt"

// Square is an axis-aligned square anchored at its bottom-left corner.
// It carries the same Box capability as Rect, so squares and rects mix
// freely in containment and intersection checks.
type Square[T Scalar] struct {
	Pos  Point[T] // bottom-left corner
	Side T
}

// NewSquare returns the square with bottom-left corner pos and the given
// side. A negative side is folded back around pos on both axes.
func NewSquare[T Scalar](pos Point[T], side T) Square[T] {
	if side < 0 {
		pos.X += side
		pos.Y += side
		side = -side
	}
	return Square[T]{Pos: pos, Side: side}
}

// Rect returns the equivalent Rect.
func (s Square[T]) Rect() Rect[T] {
	return Rect[T]{Pos: s.Pos, Width: s.Side, Height: s.Side}
}

// BottomLeft returns the bottom-left corner.
func (s Square[T]) BottomLeft() Point[T] {
	return s.Pos
}

// TopRight returns the top-right corner.
func (s Square[T]) TopRight() Point[T] {
	return Pt(s.Pos.X+s.Side, s.Pos.Y+s.Side)
}

// Move translates the square by (dx, dy) in place; the side is unchanged.
func (s *Square[T]) Move(dx, dy T) {
	s.Pos.Move(dx, dy)
}

// Contains reports whether inner lies entirely within s, boundaries
// included.
func (s Square[T]) Contains(inner Box[T]) bool {
	return boxContains(s.BottomLeft(), s.TopRight(), inner.BottomLeft(), inner.TopRight())
}

// ContainsPoint reports whether p lies within s, boundary included.
func (s Square[T]) ContainsPoint(p Point[T]) bool {
	return boxContainsPoint(s.BottomLeft(), s.TopRight(), p)
}

// Intersects reports whether s and b share at least one point. Touching
// extents count.
func (s Square[T]) Intersects(b Box[T]) bool {
	return boxesOverlap(s.BottomLeft(), s.TopRight(), b.BottomLeft(), b.TopRight())
}

// String renders the square as "(x, y)+side".
func (s Square[T]) String() string {
	return fmt.Sprintf("%v+%v", s.Pos, s.Side)
}
