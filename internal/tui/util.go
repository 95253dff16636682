package tui

import "image"

const sidebarWidth = 28

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// layout is the screen placement of the canvas area, in cells.
type layout struct {
	originX, originY int
	w, h             int
	contentW         int
	contentH         int
}

// layout must match what View draws.
func (m Model) layout() layout {
	headerHeight := 1
	footerHeight := 2
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	lo := layout{originY: headerHeight}
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	lo.w = max(10, lo.contentW-sw-1)
	lo.h = lo.contentH
	if m.showSidebar {
		lo.originX = sw + 1
	}
	return lo
}

// cellToMicro maps a screen cell to the canvas micro-pixel at its
// centre. ok is false outside the canvas area; the returned point is
// still usable for drags, which clamp.
func (lo layout) cellToMicro(x, y int) (image.Point, bool) {
	cx, cy := x-lo.originX, y-lo.originY
	in := cx >= 0 && cx < lo.w && cy >= 0 && cy < lo.h
	return image.Pt(cx*2+1, cy*4+2), in
}
