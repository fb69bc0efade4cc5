package geomio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gospace/geom"
)

// LoadKML extracts Placemark point coordinates from a KML file, whether
// the placemarks sit directly under the root or inside a Document.
// KML coordinate tuples are "x,y[,alt]"; altitude is ignored.
func LoadKML(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Point *kmlPoint `xml:"Point"`
	}
	type kmlDoc struct {
		Placemarks    []kmlPlacemark `xml:"Placemark"`
		DocPlacemarks []kmlPlacemark `xml:"Document>Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("kml: %w", err)
	}
	d := &Dataset{}
	for _, pm := range append(doc.Placemarks, doc.DocPlacemarks...) {
		if pm.Point == nil {
			continue
		}
		// coordinates may hold several tuples separated by whitespace
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			x, e1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			y, e2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if e1 != nil || e2 != nil {
				continue
			}
			d.AddPoint(geom.Pt(x, y))
		}
	}
	if d.Empty() {
		return nil, errors.New("kml: no points found")
	}
	return d, nil
}
