package geom

import "fmt"

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
// Width and Height are never negative; zero-area rects are valid and act
// as segments or points under the predicates.
type Rect[T Scalar] struct {
	Pos    Point[T] // bottom-left corner
	Width  T
	Height T
}

// NewRect returns the rect with bottom-left corner pos and the given
// extents. A negative extent is folded back around pos, so the stored
// dimensions are never negative.
func NewRect[T Scalar](pos Point[T], width, height T) Rect[T] {
	if width < 0 {
		pos.X += width
		width = -width
	}
	if height < 0 {
		pos.Y += height
		height = -height
	}
	return Rect[T]{Pos: pos, Width: width, Height: height}
}

// RectFromCorners returns the rect spanning two opposite corners, given
// in any order.
func RectFromCorners[T Scalar](a, b Point[T]) Rect[T] {
	bl := Pt(min(a.X, b.X), min(a.Y, b.Y))
	return Rect[T]{
		Pos:    bl,
		Width:  max(a.X, b.X) - bl.X,
		Height: max(a.Y, b.Y) - bl.Y,
	}
}

// BottomLeft returns the bottom-left corner.
func (r Rect[T]) BottomLeft() Point[T] {
	return r.Pos
}

// TopRight returns the top-right corner.
func (r Rect[T]) TopRight() Point[T] {
	return Pt(r.Pos.X+r.Width, r.Pos.Y+r.Height)
}

// Move translates the rect by (dx, dy) in place; the extents are
// unchanged.
func (r *Rect[T]) Move(dx, dy T) {
	r.Pos.Move(dx, dy)
}

// Contains reports whether inner lies entirely within r, boundaries
// included.
func (r Rect[T]) Contains(inner Box[T]) bool {
	return boxContains(r.BottomLeft(), r.TopRight(), inner.BottomLeft(), inner.TopRight())
}

// ContainsPoint reports whether p lies within r, boundary included.
func (r Rect[T]) ContainsPoint(p Point[T]) bool {
	return boxContainsPoint(r.BottomLeft(), r.TopRight(), p)
}

// Intersects reports whether r and b share at least one point. Touching
// extents count, and the test is symmetric for any mix of Rect and
// Square operands.
func (r Rect[T]) Intersects(b Box[T]) bool {
	return boxesOverlap(r.BottomLeft(), r.TopRight(), b.BottomLeft(), b.TopRight())
}

// ExpandTo returns the smallest rect covering both r and p.
func (r Rect[T]) ExpandTo(p Point[T]) Rect[T] {
	bl, tr := r.BottomLeft(), r.TopRight()
	return RectFromCorners(
		Pt(min(bl.X, p.X), min(bl.Y, p.Y)),
		Pt(max(tr.X, p.X), max(tr.Y, p.Y)),
	)
}

// String renders the rect corner to corner as "(x1, y1)-(x2, y2)".
func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.BottomLeft(), r.TopRight())
}
