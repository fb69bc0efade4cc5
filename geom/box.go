package geom

// Box is the capability shared by Rect and Square: an axis-aligned region
// described by its bottom-left and top-right corners. The containment and
// intersection predicates accept any mix of Box implementations.
type Box[T Scalar] interface {
	BottomLeft() Point[T]
	TopRight() Point[T]
}

// The shared predicate bodies work on corner points directly so that
// Rect and Square methods stay thin. All comparisons are closed:
// touching boundaries count as contained and as intersecting.

func boxContains[T Scalar](obl, otr, ibl, itr Point[T]) bool {
	return obl.X <= ibl.X && obl.Y <= ibl.Y &&
		itr.X <= otr.X && itr.Y <= otr.Y
}

func boxContainsPoint[T Scalar](bl, tr, p Point[T]) bool {
	return bl.X <= p.X && p.X <= tr.X &&
		bl.Y <= p.Y && p.Y <= tr.Y
}

func boxesOverlap[T Scalar](abl, atr, bbl, btr Point[T]) bool {
	return abl.X <= btr.X && bbl.X <= atr.X &&
		abl.Y <= btr.Y && bbl.Y <= atr.Y
}
