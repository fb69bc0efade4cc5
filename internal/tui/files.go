package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"gospace/internal/geomio"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".geojson" || ext == ".json" || ext == ".csv" || ext == ".kml" || ext == ".wkt" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads supported formats into the model.
func (m *Model) loadPath(p string) {
	m.selPath = p
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".geojson", ".json":
		d, attrs, err := geomio.LoadGeoJSON(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.setData(*d, attrs, p)
	case ".csv":
		d, attrs, err := geomio.LoadCSV(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.setData(*d, attrs, p)
	case ".kml":
		d, err := geomio.LoadKML(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.setData(*d, nil, p)
	case ".wkt":
		raw, err := os.ReadFile(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		var d geomio.Dataset
		if err := geomio.ParseWKT(string(raw), &d); err != nil {
			m.status = "wkt error: " + err.Error()
			return
		}
		m.setData(d, nil, p)
	default:
		m.status = "unsupported file: " + ext
	}
}

// setData replaces the loaded dataset and resets layer visibility so the
// richest shape kind present renders first.
func (m *Model) setData(d geomio.Dataset, attrs []geomio.Attrs, path string) {
	m.data = d
	m.attrs = attrs
	// prefer polygons > segments > points for visibility
	m.showPolys = len(d.Polygons) > 0
	m.showSegs = len(d.Segments) > 0 && !m.showPolys
	m.showPoints = len(d.Points) > 0 && !m.showPolys
	m.status = "loaded: " + filepath.Base(path) +
		fmt.Sprintf("  counts: pts=%d segs=%d polys=%d", len(d.Points), len(d.Segments), len(d.Polygons))
	// any open table overlay must follow the new dataset
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
	if m.showShapes {
		m.refreshShapesTable()
	}
}
