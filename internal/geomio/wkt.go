package geomio

import (
	"errors"
	"strconv"
	"strings"

	"gospace/geom"
)

// ParseWKT parses well-known text and appends every shape it finds to d,
// one geometry per line. Supported: POINT, MULTIPOINT, LINESTRING (split
// into consecutive segments), POLYGON (first ring boundary, later rings
// holes). Tags are case-insensitive; EMPTY geometries parse as nothing.
func ParseWKT(src string, d *Dataset) error {
	if strings.TrimSpace(src) == "" {
		return errors.New("empty wkt")
	}
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := parseWKTLine(line, d); err != nil {
			return err
		}
	}
	return nil
}

func parseWKTLine(line string, d *Dataset) error {
	up := strings.ToUpper(line)
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		body, ok := parens(line)
		if !ok {
			if wktEmpty(up) {
				return nil
			}
			return errors.New("wkt multipoint: invalid")
		}
		for _, p := range parseTuples(body) {
			d.AddPoint(p)
		}
	case strings.HasPrefix(up, "POINT"):
		body, ok := parens(line)
		if !ok {
			if wktEmpty(up) {
				return nil
			}
			return errors.New("wkt point: invalid")
		}
		for _, p := range parseTuples(body) {
			d.AddPoint(p)
		}
	case strings.HasPrefix(up, "LINESTRING"):
		body, ok := parens(line)
		if !ok {
			if wktEmpty(up) {
				return nil
			}
			return errors.New("wkt linestring: invalid")
		}
		d.AddPolyline(parseTuples(body))
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(line, "((")
		j := strings.LastIndex(line, "))")
		if i < 0 || j <= i {
			if wktEmpty(up) {
				return nil
			}
			return errors.New("wkt polygon: invalid")
		}
		// normalize spaces around ring separators
		ringsStr := strings.ReplaceAll(line[i+2:j], "), (", "),(")
		ringsStr = strings.ReplaceAll(ringsStr, ") , (", "),(")
		ringParts := strings.Split(ringsStr, "),(")
		rings := make([]geom.SimplePolygon[float64], 0, len(ringParts))
		for _, rp := range ringParts {
			rings = append(rings, geom.NewSimplePolygon(dropClosingVertex(parseTuples(rp))))
		}
		d.AddPolygon(geom.NewPolygon(rings[0], rings[1:]...))
	default:
		return errors.New("unsupported wkt type")
	}
	return nil
}

// parens returns the text between the first "(" and the last ")".
func parens(s string) (string, bool) {
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return "", false
	}
	return s[i+1 : j], true
}

func wktEmpty(up string) bool {
	return strings.Contains(up, "EMPTY")
}

// parseTuples splits a coordinate block into points. Tuples are comma
// separated "x y" pairs, optionally parenthesized; malformed tuples are
// skipped.
func parseTuples(block string) []geom.Point[float64] {
	var out []geom.Point[float64]
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.Trim(strings.TrimSpace(tup), "()"))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, geom.Pt(x, y))
	}
	return out
}

// dropClosingVertex removes an explicit ring-closing vertex; boundary
// curves close implicitly.
func dropClosingVertex(pts []geom.Point[float64]) []geom.Point[float64] {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		return pts[:len(pts)-1]
	}
	return pts
}

// PointWKT renders p as a WKT POINT.
func PointWKT(p geom.Point[float64]) string {
	return "POINT (" + coord(p) + ")"
}

// SegmentWKT renders s as a two-vertex WKT LINESTRING.
func SegmentWKT(s geom.Segment[float64]) string {
	return "LINESTRING (" + coord(s.A) + ", " + coord(s.B) + ")"
}

// PolygonWKT renders p as a WKT POLYGON, re-closing every ring on output.
// An empty polygon renders as POLYGON EMPTY.
func PolygonWKT(p geom.Polygon[float64]) string {
	rings := Rings(p)
	if len(rings) == 0 {
		return "POLYGON EMPTY"
	}
	var sb strings.Builder
	sb.WriteString("POLYGON (")
	for i, ring := range rings {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j, pt := range ring {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(coord(pt))
		}
		if len(ring) > 1 {
			sb.WriteString(", ")
			sb.WriteString(coord(ring[0]))
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

func coord(p geom.Point[float64]) string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + " " + strconv.FormatFloat(p.Y, 'g', -1, 64)
}
