package tui

import (
	"fmt"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"path/filepath"
	"strings"

	"gospace/geom"
	"gospace/internal/geomio"
)

// canvasSize returns the canvas cell dimensions for the current window,
// matching the layout arithmetic in View.
func (m Model) canvasSize() (int, int) {
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	mapWidth := max(10, m.width) - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	return mapWidth, contentHeight
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.mapW, m.mapH = m.canvasSize()
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				var d geomio.Dataset
				if err := geomio.ParseWKT(w, &d); err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				if d.Empty() {
					m.status = "wkt: no shapes"
					return m, nil
				}
				m.data = d
				m.attrs = nil
				m.selPath = ""
				// reset viewport and focus layers for immediate visibility
				m.zoom = 1.0
				m.offsetX, m.offsetY = 0, 0
				m.showPolys = len(d.Polygons) > 0
				m.showSegs = len(d.Segments) > 0 && !m.showPolys
				m.showPoints = len(d.Points) > 0 && !m.showPolys
				m.status = fmt.Sprintf("rendered WKT  counts: pts=%d segs=%d polys=%d", len(d.Points), len(d.Segments), len(d.Polygons))
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("points: %v", m.showPoints)
		case "2":
			m.showSegs = !m.showSegs
			m.status = fmt.Sprintf("segments: %v", m.showSegs)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polygons: %v", m.showPolys)
		case "4":
			m.showBoxes = !m.showBoxes
			m.status = fmt.Sprintf("bounding boxes: %v", m.showBoxes)
		case "f":
			m.fillPolys = !m.fillPolys
			m.status = fmt.Sprintf("fill: %v", m.fillPolys)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.showShapes = false
				m.refreshAttrsFromCurrent()
			}
		case "s":
			m.showShapes = !m.showShapes
			if m.showShapes {
				m.showAttrs = false
				m.refreshShapesTable()
			}
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				m.status = "view mode"
				break
			}
			p, ok := m.inspectNearest()
			if ok {
				name := "<unsaved>"
				if m.selPath != "" {
					name = filepath.Base(m.selPath)
				}
				meta := []string{
					fmt.Sprintf("name: %s", name),
					fmt.Sprintf("path: %s", m.selPath),
					fmt.Sprintf("bounds: %v", m.data.Bounds),
					fmt.Sprintf("counts: pts=%d segs=%d polys=%d", len(m.data.Points), len(m.data.Segments), len(m.data.Polygons)),
					fmt.Sprintf("nearest vertex: %v", p),
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no shape nearby"
				m.status = m.inspectPopup
			}
		case "l":
			// toggle the shape layers together
			all := m.showPoints && m.showSegs && m.showPolys
			m.showPoints = !all
			m.showSegs = !all
			m.showPolys = !all
			m.status = fmt.Sprintf("layers: pts=%v segs=%v polys=%v", m.showPoints, m.showSegs, m.showPolys)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over the canvas area
		mapWidth, mapHeight := m.canvasSize()
		m.mapW, m.mapH = mapWidth, mapHeight
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
			m.l.SetSize(28-2, mapHeight-2)
		}
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := 1 // header row
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			// world position under the cursor, plus the polygons whose
			// bounding boxes cover it
			if wp, ok := m.cellToWorld(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
				m.hoverHasPos = true
				m.hoverPos = wp
				n := 0
				for _, poly := range m.data.Polygons {
					bb, err := poly.BoundingBox()
					if err != nil {
						continue
					}
					if bb.ContainsPoint(wp) {
						n++
					}
				}
				m.hoverBoxes = n
			} else {
				m.hoverHasPos = false
				m.hoverBoxes = 0
			}
			// find the nearest vertex in micro coords
			hxMic := m.hoverCellX * 2
			hyMic := m.hoverCellY * 4
			best := 1<<31 - 1
			bx, by := hxMic, hyMic
			m.eachVertex(func(p geom.Point[float64]) {
				mx, my, ok := m.screenXYMicro(p, mapWidth, mapHeight)
				if !ok {
					return
				}
				dx := mx - hxMic
				dy := my - hyMic
				d := dx*dx + dy*dy
				if d < best {
					best = d
					bx, by = mx, my
				}
			})
			m.hoverMicX, m.hoverMicY = bx, by
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
