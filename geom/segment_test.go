package geom_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "gospace/geom"
)

func TestSegmentEndpoints(t *testing.T) {
	p1 := Pt(1, 1)
	p2 := Pt(4, 4)
	s := Seg(p1, p2)

	assert.Equal(t, p1, s.A)
	assert.Equal(t, p2, s.B)
}

func TestSegmentEqualityIsOrderSensitive(t *testing.T) {
	p := Pt(1, 1)
	q := Pt(4, 4)

	assert.True(t, Seg(p, q) == Seg(p, q))
	assert.True(t, Seg(p, q) != Seg(q, p))
	assert.True(t, Seg(p, p) == Seg(p, p))
}

func TestSegmentMove(t *testing.T) {
	s := Seg(Pt(1, 2), Pt(3, 4))
	s.Move(10, -10)
	assert.Equal(t, Seg(Pt(11, -8), Pt(13, -6)), s)
}

func TestSegmentIntersectsCrossingDiagonals(t *testing.T) {
	s1 := Seg(Pt(1, 1), Pt(4, 4))
	s2 := Seg(Pt(1, 4), Pt(4, 1))

	assert.True(t, s1.Intersects(s2))
	assert.True(t, s2.Intersects(s1))
}

func TestSegmentIntersectsSelf(t *testing.T) {
	for _, s := range []Segment[int]{
		Seg(Pt(1, 1), Pt(4, 4)),
		Seg(Pt(-3, 7), Pt(2, -9)),
		Seg(Pt(5, 5), Pt(5, 5)), // zero length
	} {
		assert.True(t, s.Intersects(s), "segment %v", s)
	}
}

func TestSegmentIntersects(t *testing.T) {
	for _, tc := range []struct {
		name   string
		s1, s2 Segment[int]
		want   bool
	}{
		{
			name: "proper crossing",
			s1:   Seg(Pt(0, 0), Pt(4, 4)),
			s2:   Seg(Pt(0, 4), Pt(4, 0)),
			want: true,
		},
		{
			name: "touch at interior point",
			s1:   Seg(Pt(0, 0), Pt(4, 0)),
			s2:   Seg(Pt(2, 0), Pt(2, 3)),
			want: true,
		},
		{
			name: "shared endpoint",
			s1:   Seg(Pt(0, 0), Pt(2, 2)),
			s2:   Seg(Pt(2, 2), Pt(5, 0)),
			want: true,
		},
		{
			name: "collinear overlap",
			s1:   Seg(Pt(0, 0), Pt(4, 4)),
			s2:   Seg(Pt(2, 2), Pt(6, 6)),
			want: true,
		},
		{
			name: "collinear containment",
			s1:   Seg(Pt(0, 0), Pt(6, 6)),
			s2:   Seg(Pt(2, 2), Pt(3, 3)),
			want: true,
		},
		{
			name: "collinear touching endpoints",
			s1:   Seg(Pt(0, 0), Pt(2, 2)),
			s2:   Seg(Pt(2, 2), Pt(5, 5)),
			want: true,
		},
		{
			name: "collinear disjoint",
			s1:   Seg(Pt(0, 0), Pt(1, 1)),
			s2:   Seg(Pt(2, 2), Pt(3, 3)),
			want: false,
		},
		{
			name: "parallel",
			s1:   Seg(Pt(0, 0), Pt(4, 0)),
			s2:   Seg(Pt(0, 1), Pt(4, 1)),
			want: false,
		},
		{
			name: "same side within shared extent",
			s1:   Seg(Pt(0, 0), Pt(10, 10)),
			s2:   Seg(Pt(0, 1), Pt(5, 9)),
			want: false,
		},
		{
			name: "zero length on segment",
			s1:   Seg(Pt(2, 2), Pt(2, 2)),
			s2:   Seg(Pt(0, 0), Pt(4, 4)),
			want: true,
		},
		{
			name: "zero length off segment",
			s1:   Seg(Pt(5, 0), Pt(5, 0)),
			s2:   Seg(Pt(0, 0), Pt(4, 4)),
			want: false,
		},
		{
			name: "two equal zero length",
			s1:   Seg(Pt(3, 3), Pt(3, 3)),
			s2:   Seg(Pt(3, 3), Pt(3, 3)),
			want: true,
		},
		{
			name: "two distinct zero length",
			s1:   Seg(Pt(3, 3), Pt(3, 3)),
			s2:   Seg(Pt(4, 4), Pt(4, 4)),
			want: false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s1.Intersects(tc.s2))
			assert.Equal(t, tc.want, tc.s2.Intersects(tc.s1), "must be symmetric")
		})
	}
}

func TestSegmentIntersectsSymmetryRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randPt := func() Point[int] {
		return Pt(rng.Intn(100), rng.Intn(100))
	}

	for i := 0; i < 100000; i++ {
		s1 := Seg(randPt(), randPt())
		s2 := Seg(randPt(), randPt())
		require.Equal(t, s1.Intersects(s2), s2.Intersects(s1),
			"s1=%v s2=%v", s1, s2)
	}
}

func TestSegmentString(t *testing.T) {
	assert.Equal(t, "(1, 1)-(4, 4)", Seg(Pt(1, 1), Pt(4, 4)).String())
}
