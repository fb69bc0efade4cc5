package geomio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gospace/geom"
)

// LoadGeoJSON reads a GeoJSON file into a dataset. Geometry support:
// Point, MultiPoint, LineString, MultiLineString (split into consecutive
// segments), Polygon, MultiPolygon (later rings become holes). Feature
// properties come back as one Attrs per feature, in feature order; bare
// geometries yield no attributes.
func LoadGeoJSON(path string) (*Dataset, []Attrs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("geojson: %w", err)
	}

	d := &Dataset{}
	var attrs []Attrs

	parsePoint := func(v any) (geom.Point[float64], bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return geom.Pt(x, y), true
			}
		}
		return geom.Point[float64]{}, false
	}
	parseCurve := func(v any) ([]geom.Point[float64], bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var pts []geom.Point[float64]
		for _, el := range arr {
			if p, ok := parsePoint(el); ok {
				pts = append(pts, p)
			}
		}
		return pts, true
	}
	parsePolygon := func(v any) (geom.Polygon[float64], bool) {
		arr, ok := v.([]any)
		if !ok || len(arr) == 0 {
			return geom.Polygon[float64]{}, false
		}
		rings := make([]geom.SimplePolygon[float64], 0, len(arr))
		for _, el := range arr {
			if curve, ok := parseCurve(el); ok {
				rings = append(rings, geom.NewSimplePolygon(dropClosingVertex(curve)))
			}
		}
		if len(rings) == 0 {
			return geom.Polygon[float64]{}, false
		}
		return geom.NewPolygon(rings[0], rings[1:]...), true
	}
	walkGeom := func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if p, ok := parsePoint(g["coordinates"]); ok {
				d.AddPoint(p)
			}
		case "MultiPoint":
			if pts, ok := parseCurve(g["coordinates"]); ok {
				for _, p := range pts {
					d.AddPoint(p)
				}
			}
		case "LineString":
			if curve, ok := parseCurve(g["coordinates"]); ok {
				d.AddPolyline(curve)
			}
		case "MultiLineString":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if curve, ok := parseCurve(el); ok {
						d.AddPolyline(curve)
					}
				}
			}
		case "Polygon":
			if poly, ok := parsePolygon(g["coordinates"]); ok {
				d.AddPolygon(poly)
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if poly, ok := parsePolygon(el); ok {
						d.AddPolygon(poly)
					}
				}
			}
		}
	}
	walkFeature := func(fm map[string]any) {
		if g, ok := fm["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
		attrs = append(attrs, flattenProps(fm["properties"]))
	}

	t, _ := doc["type"].(string)
	switch t {
	case "Feature":
		walkFeature(doc)
	case "FeatureCollection":
		if fs, ok := doc["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					walkFeature(fm)
				}
			}
		}
	default:
		if len(doc) > 0 {
			walkGeom(doc)
		}
	}
	if d.Empty() {
		return nil, nil, errors.New("geojson: no geometries found")
	}
	return d, attrs, nil
}

// flattenProps renders a GeoJSON properties object as flat strings.
// Nested values fall back to their JSON encoding.
func flattenProps(v any) Attrs {
	pm, _ := v.(map[string]any)
	out := make(Attrs, len(pm))
	for k, pv := range pm {
		switch t := pv.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'g', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			b, _ := json.Marshal(t)
			out[k] = string(b)
		}
	}
	return out
}
