// Package geomio loads and writes shape data in text formats (WKT,
// GeoJSON, CSV, KML), collecting everything into datasets of geom values.
package geomio

import "gospace/geom"

// Dataset aggregates every shape a source yields, in core geometry types.
// Bounds covers every vertex added so far and is only meaningful once
// HasBounds reports true.
type Dataset struct {
	Points   []geom.Point[float64]
	Segments []geom.Segment[float64]
	Polygons []geom.Polygon[float64]

	Bounds geom.Rect[float64]

	verts int
}

// Attrs is one feature's attribute set with values flattened to strings.
type Attrs map[string]string

// Empty reports whether the dataset holds no shapes.
func (d Dataset) Empty() bool {
	return len(d.Points) == 0 && len(d.Segments) == 0 && len(d.Polygons) == 0
}

// HasBounds reports whether Bounds has been seeded by at least one vertex.
func (d Dataset) HasBounds() bool {
	return d.verts > 0
}

// grow widens Bounds to cover p. The first vertex seeds the bounds, so a
// dataset that starts with a segment or polygon does not fold the origin
// into its bounds.
func (d *Dataset) grow(p geom.Point[float64]) {
	if d.verts == 0 {
		d.Bounds = geom.NewRect(p, 0, 0)
	} else {
		d.Bounds = d.Bounds.ExpandTo(p)
	}
	d.verts++
}

// AddPoint appends a bare point shape.
func (d *Dataset) AddPoint(p geom.Point[float64]) {
	d.Points = append(d.Points, p)
	d.grow(p)
}

// AddSegment appends a segment shape.
func (d *Dataset) AddSegment(s geom.Segment[float64]) {
	d.Segments = append(d.Segments, s)
	d.grow(s.A)
	d.grow(s.B)
}

// AddPolyline appends a vertex chain as consecutive segments. A single
// vertex degrades to a point; an empty chain is a no-op.
func (d *Dataset) AddPolyline(pts []geom.Point[float64]) {
	if len(pts) == 1 {
		d.AddPoint(pts[0])
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		d.AddSegment(geom.Seg(pts[i], pts[i+1]))
	}
}

// AddPolygon appends a polygon shape, holes included.
func (d *Dataset) AddPolygon(p geom.Polygon[float64]) {
	d.Polygons = append(d.Polygons, p)
	for _, ring := range Rings(p) {
		for _, pt := range ring {
			d.grow(pt)
		}
	}
}

// Rings returns the vertex curves of every contour of p, outer boundary
// first, then holes in order. Empty polygons and empty contours yield
// nothing. The curves alias the polygon's storage.
func Rings(p geom.Polygon[float64]) [][]geom.Point[float64] {
	b, err := p.Boundary()
	if err != nil {
		return nil
	}
	out := make([][]geom.Point[float64], 0, p.Len())
	if c, err := b.BoundaryCurve(); err == nil {
		out = append(out, c)
	}
	for _, h := range p.Holes() {
		if c, err := h.BoundaryCurve(); err == nil {
			out = append(out, c)
		}
	}
	return out
}
