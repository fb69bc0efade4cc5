package geomio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gospace/geom"
	"gospace/internal/geomio"
)

func TestParseWKTPoint(t *testing.T) {
	var d geomio.Dataset
	require.NoError(t, geomio.ParseWKT("POINT (30 10)", &d))
	require.Len(t, d.Points, 1)
	assert.Equal(t, geom.Pt(30.0, 10.0), d.Points[0])
	assert.Equal(t, geom.NewRect(geom.Pt(30.0, 10.0), 0, 0), d.Bounds)
}

func TestParseWKTMultiPoint(t *testing.T) {
	for _, src := range []string{
		"MULTIPOINT (10 40, 40 30, 20 20, 30 10)",
		"MULTIPOINT ((10 40), (40 30), (20 20), (30 10))",
		"multipoint (10 40, 40 30, 20 20, 30 10)",
	} {
		var d geomio.Dataset
		require.NoError(t, geomio.ParseWKT(src, &d), src)
		assert.Len(t, d.Points, 4, src)
		assert.Equal(t, geom.Pt(10.0, 40.0), d.Points[0], src)
	}
}

func TestParseWKTLineString(t *testing.T) {
	var d geomio.Dataset
	require.NoError(t, geomio.ParseWKT("LINESTRING (30 10, 10 30, 40 40)", &d))
	require.Len(t, d.Segments, 2)
	assert.Equal(t, geom.Seg(geom.Pt(30.0, 10.0), geom.Pt(10.0, 30.0)), d.Segments[0])
	assert.Equal(t, geom.Seg(geom.Pt(10.0, 30.0), geom.Pt(40.0, 40.0)), d.Segments[1])
	assert.Equal(t, geom.RectFromCorners(geom.Pt(10.0, 10.0), geom.Pt(40.0, 40.0)), d.Bounds)
}

func TestParseWKTPolygonWithHole(t *testing.T) {
	src := "POLYGON ((0 0, 8 0, 8 8, 0 8, 0 0), (2 2, 5 2, 5 5, 2 5, 2 2))"
	var d geomio.Dataset
	require.NoError(t, geomio.ParseWKT(src, &d))
	require.Len(t, d.Polygons, 1)
	poly := d.Polygons[0]
	assert.True(t, poly.HasHoles())

	boundary, err := poly.Boundary()
	require.NoError(t, err)
	// the explicit ring-closing vertex is dropped
	assert.Equal(t, 4, boundary.Len())
	require.Len(t, poly.Holes(), 1)
	assert.Equal(t, 4, poly.Holes()[0].Len())

	assert.Equal(t, geom.RectFromCorners(geom.Pt(0.0, 0.0), geom.Pt(8.0, 8.0)), d.Bounds)
}

func TestParseWKTMultipleLines(t *testing.T) {
	src := "POINT (1 2)\nLINESTRING (0 0, 3 3)\n\nPOLYGON ((0 0, 2 0, 2 2))"
	var d geomio.Dataset
	require.NoError(t, geomio.ParseWKT(src, &d))
	assert.Len(t, d.Points, 1)
	assert.Len(t, d.Segments, 1)
	assert.Len(t, d.Polygons, 1)
}

func TestParseWKTEmptyGeometry(t *testing.T) {
	var d geomio.Dataset
	require.NoError(t, geomio.ParseWKT("POINT EMPTY", &d))
	assert.True(t, d.Empty())
}

func TestParseWKTErrors(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want string
	}{
		{"", "empty wkt"},
		{"   \n  ", "empty wkt"},
		{"TRIANGLE (0 0, 1 1, 2 0)", "unsupported wkt type"},
		{"POINT 30 10", "wkt point: invalid"},
		{"POLYGON (0 0, 1 1)", "wkt polygon: invalid"},
	} {
		var d geomio.Dataset
		err := geomio.ParseWKT(tc.src, &d)
		require.Error(t, err, tc.src)
		assert.EqualError(t, err, tc.want, tc.src)
	}
}

func TestPointWKT(t *testing.T) {
	assert.Equal(t, "POINT (30 10.5)", geomio.PointWKT(geom.Pt(30.0, 10.5)))
}

func TestSegmentWKT(t *testing.T) {
	assert.Equal(t, "LINESTRING (1 1, 4 4)", geomio.SegmentWKT(geom.Seg(geom.Pt(1.0, 1.0), geom.Pt(4.0, 4.0))))
}

func TestPolygonWKT(t *testing.T) {
	boundary := geom.NewSimplePolygon([]geom.Point[float64]{geom.Pt(0.0, 0.0), geom.Pt(8.0, 0.0), geom.Pt(8.0, 8.0)})
	hole := geom.NewSimplePolygon([]geom.Point[float64]{geom.Pt(2.0, 2.0), geom.Pt(3.0, 2.0), geom.Pt(3.0, 3.0)})
	assert.Equal(t,
		"POLYGON ((0 0, 8 0, 8 8, 0 0), (2 2, 3 2, 3 3, 2 2))",
		geomio.PolygonWKT(geom.NewPolygon(boundary, hole)))

	assert.Equal(t, "POLYGON EMPTY", geomio.PolygonWKT(geom.Polygon[float64]{}))
}

func TestPolygonWKTRoundTrip(t *testing.T) {
	boundary := geom.NewSimplePolygon([]geom.Point[float64]{geom.Pt(0.0, 0.0), geom.Pt(8.0, 0.0), geom.Pt(8.0, 8.0), geom.Pt(0.0, 8.0)})
	hole := geom.NewSimplePolygon([]geom.Point[float64]{geom.Pt(2.0, 2.0), geom.Pt(5.0, 2.0), geom.Pt(5.0, 5.0), geom.Pt(2.0, 5.0)})
	orig := geom.NewPolygon(boundary, hole)

	var d geomio.Dataset
	require.NoError(t, geomio.ParseWKT(geomio.PolygonWKT(orig), &d))
	require.Len(t, d.Polygons, 1)
	assert.True(t, orig.Equal(d.Polygons[0]))
}
