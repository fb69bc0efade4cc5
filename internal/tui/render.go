package tui

import (
	"sort"
	"strings"

	"gospace/geom"
	"gospace/internal/geomio"
)

// worldSpan returns the projectable extent of the dataset bounds. A
// degenerate axis gets a unit span centered on the data, so single points
// and axis-parallel segments still land on the canvas.
func (m Model) worldSpan() (bl geom.Point[float64], spanX, spanY float64, ok bool) {
	if !m.data.HasBounds() {
		return geom.Point[float64]{}, 0, 0, false
	}
	bl = m.data.Bounds.BottomLeft()
	tr := m.data.Bounds.TopRight()
	spanX = tr.X - bl.X
	spanY = tr.Y - bl.Y
	if spanX <= 0 {
		bl.X -= 0.5
		spanX = 1
	}
	if spanY <= 0 {
		bl.Y -= 0.5
		spanY = 1
	}
	return bl, spanX, spanY, true
}

// cellToWorld converts a canvas cell back to dataset coordinates using the
// bounds, zoom, and pan.
func (m Model) cellToWorld(cx, cy, w, h int) (geom.Point[float64], bool) {
	bl, spanX, spanY, ok := m.worldSpan()
	if !ok || w <= 1 || h <= 1 {
		return geom.Point[float64]{}, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return geom.Pt(bl.X+nx*spanX, bl.Y+ny*spanY), true
}

func (m Model) renderCanvas(w, h int) string {
	// every shape rasterizes into one braille buffer; unset cells read
	// back as plain spaces
	br := newBrailleBuf(w, h)

	// Polygons: optional even-odd fill, then ring outlines
	if m.showPolys && len(m.data.Polygons) > 0 {
		for _, poly := range m.data.Polygons {
			// project every ring to the microgrid
			var ringsMic [][][2]int
			for _, ring := range geomio.Rings(poly) {
				var sm [][2]int
				for _, p := range ring {
					mx, my, ok := m.screenXYMicro(p, w, h)
					if !ok {
						continue
					}
					sm = append(sm, [2]int{mx, my})
				}
				if len(sm) >= 3 {
					ringsMic = append(ringsMic, sm)
				}
			}
			if len(ringsMic) == 0 {
				continue
			}
			if m.fillPolys {
				fillEvenOdd(br, ringsMic, h*4)
			}
			// outline boundary and holes
			for _, r := range ringsMic {
				for i := 0; i < len(r); i++ {
					a := r[i]
					b := r[(i+1)%len(r)]
					br.drawLineMicro(a[0], a[1], b[0], b[1])
				}
			}
		}
	}

	// Bounding-box overlays, one per polygon
	if m.showBoxes {
		for _, poly := range m.data.Polygons {
			bb, err := poly.BoundingBox()
			if err != nil {
				continue
			}
			m.drawBoxMicro(br, bb, w, h)
		}
	}

	// Points
	if m.showPoints && len(m.data.Points) > 0 {
		for _, p := range m.data.Points {
			mx, my, ok := m.screenXYMicro(p, w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
	}

	// Segments
	if m.showSegs && len(m.data.Segments) > 0 {
		for _, s := range m.data.Segments {
			ax, ay, ok := m.screenXYMicro(s.A, w, h)
			if !ok {
				continue
			}
			bx, by, ok := m.screenXYMicro(s.B, w, h)
			if !ok {
				continue
			}
			br.drawLineMicro(ax, ay, bx, by)
		}
	}

	lines := br.toLines()

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				circle := hoverStyle.Render("◯")
				pre := string(r[:cx])
				post := string(r[cx+1:])
				lines[cy] = pre + circle + post
			}
		}
	}
	return strings.Join(lines, "\n")
}

// fillEvenOdd rasterizes the even-odd interior of a ring set onto the
// braille buffer. Scanline crossings come from every ring, so hole rings
// flip coverage off and stay unfilled.
func fillEvenOdd(br *brailleBuf, rings [][][2]int, hMic int) {
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for _, ring := range rings {
			for i := 0; i < len(ring); i++ {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				x0, x1 := a[0], b[0]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
				}
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				br.setPixel(xMic, yMic)
			}
		}
	}
}

// drawBoxMicro outlines an axis-aligned rect on the microgrid.
func (m Model) drawBoxMicro(br *brailleBuf, r geom.Rect[float64], w, h int) {
	x0, y0, ok := m.screenXYMicro(r.BottomLeft(), w, h)
	if !ok {
		return
	}
	x1, y1, ok := m.screenXYMicro(r.TopRight(), w, h)
	if !ok {
		return
	}
	br.drawLineMicro(x0, y0, x1, y0)
	br.drawLineMicro(x1, y0, x1, y1)
	br.drawLineMicro(x1, y1, x0, y1)
	br.drawLineMicro(x0, y1, x0, y0)
}

// screenXYMicro maps a dataset point into a 2x4 microgrid per cell for
// braille rendering.
func (m Model) screenXYMicro(p geom.Point[float64], w, h int) (int, int, bool) {
	bl, spanX, spanY, ok := m.worldSpan()
	if !ok {
		return 0, 0, false
	}
	nx := (p.X - bl.X) / spanX
	ny := (p.Y - bl.Y) / spanY
	// zoom around the center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps a dataset point to cell coordinates considering zoom and
// pan.
func (m Model) screenXY(p geom.Point[float64], w, h int) (int, int, bool) {
	bl, spanX, spanY, ok := m.worldSpan()
	if !ok {
		return 0, 0, false
	}
	nx := (p.X - bl.X) / spanX
	ny := (p.Y - bl.Y) / spanY
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// inspectNearest finds the dataset vertex closest to the viewport center.
func (m Model) inspectNearest() (geom.Point[float64], bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	var best geom.Point[float64]
	found := false
	m.eachVertex(func(p geom.Point[float64]) {
		sx, sy, ok := m.screenXY(p, w, h)
		if !ok {
			return
		}
		dx := sx - cx
		dy := sy - cy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = p
			found = true
		}
	})
	return best, found
}

// eachVertex visits every vertex in the dataset: bare points, segment
// endpoints, then polygon ring vertices.
func (m Model) eachVertex(fn func(geom.Point[float64])) {
	for _, p := range m.data.Points {
		fn(p)
	}
	for _, s := range m.data.Segments {
		fn(s.A)
		fn(s.B)
	}
	for _, poly := range m.data.Polygons {
		for _, ring := range geomio.Rings(poly) {
			for _, p := range ring {
				fn(p)
			}
		}
	}
}
