package geomio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gospace/geom"
	"gospace/internal/geomio"
)

func TestDatasetBoundsSeededByFirstVertex(t *testing.T) {
	var d geomio.Dataset
	assert.True(t, d.Empty())
	assert.False(t, d.HasBounds())

	// a dataset that starts with a segment far from the origin must not
	// fold (0, 0) into its bounds
	d.AddSegment(geom.Seg(geom.Pt(30.0, 10.0), geom.Pt(40.0, 40.0)))
	require.True(t, d.HasBounds())
	assert.Equal(t, geom.RectFromCorners(geom.Pt(30.0, 10.0), geom.Pt(40.0, 40.0)), d.Bounds)
	assert.False(t, d.Bounds.ContainsPoint(geom.Pt(0.0, 0.0)))

	d.AddPoint(geom.Pt(-5.0, 25.0))
	assert.Equal(t, geom.RectFromCorners(geom.Pt(-5.0, 10.0), geom.Pt(40.0, 40.0)), d.Bounds)
}

func TestDatasetAddPolyline(t *testing.T) {
	var d geomio.Dataset
	d.AddPolyline([]geom.Point[float64]{geom.Pt(0.0, 0.0), geom.Pt(1.0, 0.0), geom.Pt(1.0, 1.0)})
	require.Len(t, d.Segments, 2)
	assert.Equal(t, geom.Seg(geom.Pt(0.0, 0.0), geom.Pt(1.0, 0.0)), d.Segments[0])
	assert.Equal(t, geom.Seg(geom.Pt(1.0, 0.0), geom.Pt(1.0, 1.0)), d.Segments[1])

	// a single stray vertex degrades to a point
	d.AddPolyline([]geom.Point[float64]{geom.Pt(7.0, 7.0)})
	require.Len(t, d.Points, 1)
	assert.Equal(t, geom.Pt(7.0, 7.0), d.Points[0])
	assert.Len(t, d.Segments, 2)
}

func TestDatasetAddPolygonGrowsBounds(t *testing.T) {
	var d geomio.Dataset
	boundary := geom.NewSimplePolygon([]geom.Point[float64]{geom.Pt(2.0, 2.0), geom.Pt(8.0, 2.0), geom.Pt(8.0, 9.0), geom.Pt(2.0, 9.0)})
	hole := geom.NewSimplePolygon([]geom.Point[float64]{geom.Pt(4.0, 4.0), geom.Pt(5.0, 4.0), geom.Pt(5.0, 5.0)})
	d.AddPolygon(geom.NewPolygon(boundary, hole))
	require.Len(t, d.Polygons, 1)
	assert.Equal(t, geom.RectFromCorners(geom.Pt(2.0, 2.0), geom.Pt(8.0, 9.0)), d.Bounds)
}

func TestRings(t *testing.T) {
	boundary := geom.NewSimplePolygon([]geom.Point[float64]{geom.Pt(0.0, 0.0), geom.Pt(4.0, 0.0), geom.Pt(4.0, 4.0)})
	hole := geom.NewSimplePolygon([]geom.Point[float64]{geom.Pt(1.0, 1.0), geom.Pt(2.0, 1.0), geom.Pt(2.0, 2.0)})
	rings := geomio.Rings(geom.NewPolygon(boundary, hole))
	require.Len(t, rings, 2)
	assert.Equal(t, geom.Pt(0.0, 0.0), rings[0][0])
	assert.Equal(t, geom.Pt(1.0, 1.0), rings[1][0])

	assert.Nil(t, geomio.Rings(geom.Polygon[float64]{}))
}
