package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"os"

	"gospace/geom"
	"gospace/internal/geomio"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Loaded shapes
	data  geomio.Dataset
	attrs []geomio.Attrs

	// canvas size tracked by Update (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showSegs   bool
	showPolys  bool
	fillPolys  bool
	showBoxes  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasPos bool
	hoverPos    geom.Point[float64]
	hoverBoxes  int

	// attribute / shape table overlay
	showAttrs  bool
	showShapes bool
	tbl        table.Model
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "gospace ready",
		showPoints:  true,
		showSegs:    true,
		showPolys:   true,
		fillPolys:   true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON; one per line). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// one table widget shared by the attributes and shapes views
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a shape file at launch; a directory argument opens
// the file browser there instead.
func NewWithPath(path string) Model {
	m := New()
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		m.cwd = path
		m.showSidebar = true
		m.refreshDir()
		return m
	}
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
