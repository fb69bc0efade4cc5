package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"gospace/geom"
	"gospace/internal/geomio"
)

// refreshAttrsFromCurrent rebuilds the table from the attributes that were
// loaded alongside the current dataset.
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	if len(cols) == 0 || len(rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	m.setTable(cols, rows)
}

// buildAttributes flattens the per-feature attribute maps into a sorted
// column union and one row per feature. Datasets without attributes get a
// one-row summary instead.
func (m *Model) buildAttributes() ([]string, [][]string) {
	if len(m.attrs) == 0 {
		if m.data.Empty() {
			return nil, nil
		}
		name := "<unsaved>"
		if m.selPath != "" {
			name = filepath.Base(m.selPath)
		}
		bounds := ""
		if m.data.HasBounds() {
			bounds = m.data.Bounds.String()
		}
		cols := []string{"name", "path", "bounds", "points", "segments", "polygons"}
		vals := []string{name, m.selPath, bounds,
			strconv.Itoa(len(m.data.Points)), strconv.Itoa(len(m.data.Segments)), strconv.Itoa(len(m.data.Polygons))}
		return cols, [][]string{vals}
	}
	seen := map[string]bool{}
	var cols []string
	for _, a := range m.attrs {
		for k := range a {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	rows := make([][]string, 0, len(m.attrs))
	for _, a := range m.attrs {
		vals := make([]string, 0, len(cols))
		for _, k := range cols {
			vals = append(vals, a[k])
		}
		rows = append(rows, vals)
	}
	return cols, rows
}

// refreshShapesTable rebuilds the table with one row per loaded shape:
// kind, vertex count, holes, bounds, and a WKT excerpt.
func (m *Model) refreshShapesTable() {
	if m.data.Empty() {
		m.showShapes = false
		m.status = "no shapes loaded"
		return
	}
	cols := []string{"kind", "verts", "holes", "bounds", "wkt"}
	var rows [][]string
	add := func(kind string, verts, holes int, bounds geom.Rect[float64], wkt string) {
		rows = append(rows, []string{kind, strconv.Itoa(verts), strconv.Itoa(holes), bounds.String(), excerpt(wkt, 40)})
	}
	for _, p := range m.data.Points {
		add("point", 1, 0, geom.NewRect(p, 0, 0), geomio.PointWKT(p))
	}
	for _, s := range m.data.Segments {
		add("segment", 2, 0, geom.RectFromCorners(s.A, s.B), geomio.SegmentWKT(s))
	}
	for _, poly := range m.data.Polygons {
		bb, err := poly.BoundingBox()
		if err != nil {
			continue
		}
		verts := 0
		for _, ring := range geomio.Rings(poly) {
			verts += len(ring)
		}
		add("polygon", verts, len(poly.Holes()), bb, geomio.PolygonWKT(poly))
	}
	m.setTable(cols, rows)
}

// setTable maps columns and rows into the shared bubbles table, numbering
// rows and sizing columns to their widest cell.
func (m *Model) setTable(cols []string, rows [][]string) {
	const maxColW = 24
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	for ci, c := range cols {
		w := len(c) + 2
		for _, r := range rows {
			if ci < len(r) && len(r[ci])+2 > w {
				w = len(r[ci]) + 2
			}
		}
		if w > maxColW {
			w = maxColW
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// normalize each row to the column count
	colCount := len(tcols)
	for i := range trows {
		cells := []string(trows[i])
		if len(cells) < colCount {
			pad := make([]string, colCount-len(cells))
			cells = append(cells, pad...)
		} else if len(cells) > colCount {
			cells = cells[:colCount]
		}
		trows[i] = table.Row(cells)
	}
	// avoid a transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// excerpt truncates s for table display.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
