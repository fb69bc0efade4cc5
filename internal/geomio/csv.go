package geomio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gospace/geom"
)

// LoadCSV reads a CSV with coordinate columns into a dataset of points.
// Column detection is case-insensitive: x|lon|lng|long|longitude and
// y|lat|latitude. Rows with unparsable coordinates are skipped; the
// remaining columns of each kept row become its attributes.
func LoadCSV(path string) (*Dataset, []Attrs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, nil, errors.New("empty csv")
	}
	header := recs[0]
	idxX, idxY := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, nil, errors.New("csv: x/y columns not found")
	}
	d := &Dataset{}
	var attrs []Attrs
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, e1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, e2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if e1 != nil || e2 != nil {
			continue
		}
		d.AddPoint(geom.Pt(x, y))
		a := make(Attrs)
		for i, h := range header {
			if i == idxX || i == idxY || i >= len(row) {
				continue
			}
			a[h] = row[i]
		}
		attrs = append(attrs, a)
	}
	if d.Empty() {
		return nil, nil, errors.New("csv: no valid points parsed")
	}
	return d, attrs, nil
}
