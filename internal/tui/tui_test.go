package tui

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/spatial/r2"

	"zonedrawer/internal/config"
	"zonedrawer/internal/editor"
)

// newModel returns a 100x40 terminal: the map area is 99x37 cells at
// (0, 1), so cell (x, y) is micro-pixel (2x+1, 4y-2).
func newModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.ScenarioDir = t.TempDir()
	cfg.ExportPath = filepath.Join(cfg.ScenarioDir, "zones.png")
	return send(t, New(cfg, nil), tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(x, y int, a tea.MouseAction, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: a, Button: b}
}

func click(x, y int) []tea.Msg {
	return []tea.Msg{
		mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft),
	}
}

func drawZone(t *testing.T, m Model) Model {
	t.Helper()
	var msgs []tea.Msg
	msgs = append(msgs, click(10, 6)...)
	msgs = append(msgs, click(30, 6)...)
	msgs = append(msgs, click(30, 16)...)
	return send(t, m, msgs...)
}

func TestLayoutCellToMicro(t *testing.T) {
	m := newModel(t)
	lo := m.layout()
	if lo.originX != 0 || lo.originY != 1 || lo.w != 99 || lo.h != 37 {
		t.Fatalf("layout %+v", lo)
	}
	at, in := lo.cellToMicro(10, 6)
	if !in || at != image.Pt(21, 22) {
		t.Errorf("cell (10,6) = %v in=%v", at, in)
	}
	if _, in := lo.cellToMicro(10, 0); in {
		t.Error("header row reported inside the canvas")
	}

	m = send(t, m, key("tab"))
	lo = m.layout()
	if lo.originX != sidebarWidth+1 || lo.w != 100-sidebarWidth-1 {
		t.Errorf("sidebar layout %+v", lo)
	}
	w, h := m.ed.Mapper.Size()
	if w > 2*lo.w-1 || h > 4*lo.h-1 {
		t.Errorf("mapper %dx%d overflows %dx%d cells", w, h, lo.w, lo.h)
	}
}

func TestMouseDrawsZone(t *testing.T) {
	m := drawZone(t, newModel(t))
	if m.ed.Store.Len() != 1 {
		t.Fatalf("zones = %d", m.ed.Store.Len())
	}
	if m.status != "zone 1 added" {
		t.Errorf("status %q", m.status)
	}
	// clicks outside the canvas are ignored
	m = send(t, m, click(10, 0)...)
	if len(m.ed.State.Pending) != 0 {
		t.Errorf("header click started a zone: %v", m.ed.State.Pending)
	}
}

func TestMouseDragKeepsRectangle(t *testing.T) {
	m := drawZone(t, newModel(t))
	before, _ := m.ed.Store.Zone(0)
	m = send(t, m,
		mouse(10, 6, tea.MouseActionPress, tea.MouseButtonLeft),
		mouse(8, 4, tea.MouseActionMotion, tea.MouseButtonLeft),
	)
	if m.ed.State.Drag == nil {
		t.Fatal("press on a vertex did not start a drag")
	}
	m = send(t, m, mouse(8, 4, tea.MouseActionRelease, tea.MouseButtonLeft))
	if m.ed.State.Drag != nil || m.buttonDown {
		t.Error("release did not end the drag")
	}
	z, _ := m.ed.Store.Zone(0)
	if z[0] == before[0] {
		t.Error("vertex did not move")
	}
	if z[2] != before[2] {
		t.Errorf("opposite vertex moved: %v -> %v", before[2], z[2])
	}
	a, b := r2.Sub(z[1], z[0]), r2.Sub(z[3], z[0])
	if d := r2.Dot(a, b); math.Abs(d) > 1e-6*r2.Norm(a)*r2.Norm(b) {
		t.Errorf("corner not square after drag: dot=%g", d)
	}
}

func TestRightClickDeletes(t *testing.T) {
	m := drawZone(t, newModel(t))
	m = send(t, m, mouse(50, 30, tea.MouseActionPress, tea.MouseButtonRight))
	if m.ed.Store.Len() != 1 || m.status != "no zone here" {
		t.Fatalf("miss: zones=%d status=%q", m.ed.Store.Len(), m.status)
	}
	m = send(t, m, mouse(20, 10, tea.MouseActionPress, tea.MouseButtonRight))
	if m.ed.Store.Len() != 0 {
		t.Errorf("zone not deleted")
	}
}

func TestModeKeys(t *testing.T) {
	m := newModel(t)
	m = send(t, m, click(10, 6)...)
	m = send(t, m, key("s"))
	if m.ed.State.Mode != editor.ModeStart || len(m.ed.State.Pending) != 0 {
		t.Fatalf("mode %v pending %v", m.ed.State.Mode, m.ed.State.Pending)
	}
	m = send(t, m, click(20, 20)...)
	if _, ok := m.ed.Store.Start(); !ok {
		t.Error("start not placed")
	}
	if !strings.HasPrefix(m.status, "start at x=") {
		t.Errorf("status %q", m.status)
	}
	m = send(t, m, key("z"), key("a"))
	if m.ed.State.Mode != editor.ModeZone || !m.snapLatched {
		t.Errorf("mode %v snap %v", m.ed.State.Mode, m.snapLatched)
	}
	m = send(t, m, key("c"))
	if _, ok := m.ed.Store.Start(); ok {
		t.Error("clear kept the start point")
	}
}

func TestSaveNeedsAnchors(t *testing.T) {
	m := drawZone(t, newModel(t))
	m = send(t, m, key("w"))
	if !m.saveMode {
		t.Fatal("w did not open the save prompt")
	}
	m = send(t, m, key("enter"))
	if !m.statusErr || !strings.Contains(m.status, "start point is not set") {
		t.Fatalf("status %q err=%v", m.status, m.statusErr)
	}

	m = send(t, m, key("s"))
	m = send(t, m, click(50, 30)...)
	m = send(t, m, key("f"))
	m = send(t, m, click(60, 30)...)
	m = send(t, m, key("w"), key("enter"))
	if m.statusErr {
		t.Fatalf("save failed: %s", m.status)
	}
	path := filepath.Join(m.cwd, "zones.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(string(data), "\n"); len(lines) != 4 || lines[2] != "1" {
		t.Errorf("saved %q", data)
	}
	if len(m.items) != 1 {
		t.Errorf("file list not refreshed: %d items", len(m.items))
	}

	// the saved file loads back into a fresh editor
	fresh := newModel(t)
	fresh.loadPath(path)
	if fresh.ed.Store.Len() != 1 || fresh.selPath != path {
		t.Errorf("reload: zones=%d path=%q status=%q", fresh.ed.Store.Len(), fresh.selPath, fresh.status)
	}
}

func TestLoadBadFileKeepsScenario(t *testing.T) {
	m := drawZone(t, newModel(t))
	bad := filepath.Join(m.cwd, "bad.txt")
	if err := os.WriteFile(bad, []byte("0 0\n1 1\nzwei\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m.loadPath(bad)
	if m.ed.Store.Len() != 1 || !m.statusErr {
		t.Errorf("zones=%d status=%q", m.ed.Store.Len(), m.status)
	}
}

func TestPaste(t *testing.T) {
	m := newModel(t)
	m = send(t, m, key("p"))
	if !m.pasteMode {
		t.Fatal("p did not open paste mode")
	}
	text := "0.00 0.00\n10.00 0.00\n1\n1.00 0.00 2.00 0.00 2.00 1.00 1.00 1.00"
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Paste: true}, key("ctrl+s"))
	if m.pasteMode {
		t.Fatalf("paste mode still open: %s", m.status)
	}
	if m.ed.Store.Len() != 1 {
		t.Errorf("zones = %d", m.ed.Store.Len())
	}
}

func TestZoneTable(t *testing.T) {
	m := drawZone(t, newModel(t))
	m = send(t, m, key("t"))
	if !m.showTable {
		t.Fatal("t did not open the table")
	}
	rows := m.tbl.Rows()
	if len(rows) != 1 || len(rows[0]) != 7 || rows[0][0] != "1" {
		t.Fatalf("rows %v", rows)
	}
	// mouse input is ignored while the table is open
	m = send(t, m, mouse(20, 10, tea.MouseActionPress, tea.MouseButtonRight))
	if m.ed.Store.Len() != 1 {
		t.Error("click went through the table")
	}
	m = send(t, m, key("esc"))
	if m.showTable {
		t.Error("esc did not close the table")
	}
}

func TestExport(t *testing.T) {
	m := drawZone(t, newModel(t))
	m = send(t, m, key("e"))
	if m.statusErr {
		t.Fatal(m.status)
	}
	if _, err := os.Stat(m.cfg.ExportPath); err != nil {
		t.Error(err)
	}
}

func TestView(t *testing.T) {
	m := drawZone(t, newModel(t))
	m = send(t, m, mouse(20, 10, tea.MouseActionMotion, tea.MouseButtonNone))
	out := m.View()
	if !strings.Contains(out, "zonedrawer") || !strings.Contains(out, "zones: 1") {
		t.Errorf("header missing from view")
	}
	if !strings.Contains(out, "x=") {
		t.Errorf("pointer coordinates missing from view")
	}
}

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(4, 2)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	if g, ok := b.glyph(0, 0); !ok || g != rune(0x2800+0x01+0x80) {
		t.Errorf("glyph %U", g)
	}
	if _, ok := b.glyph(3, 1); ok {
		t.Error("empty cell reported set")
	}
	b.setPixel(-1, 0)
	b.setPixel(8, 0)

	b = newBrailleBuf(4, 2)
	b.dashLineMicro(0, 0, 7, 0, 2, 2)
	for x, want := range []bool{true, true, false, false, true, true, false, false} {
		if b.pixel(x, 0) != want {
			t.Errorf("dash pixel %d = %v", x, !want)
		}
	}

	b = newBrailleBuf(4, 2)
	b.fillPolygon([]image.Point{{1, 1}, {6, 1}, {6, 6}, {1, 6}})
	if !b.pixel(3, 3) || b.pixel(0, 0) || b.pixel(7, 7) {
		t.Error("fill covers the wrong pixels")
	}
}

func TestComposeCanvas(t *testing.T) {
	top := newBrailleBuf(3, 1)
	under := newBrailleBuf(3, 1)
	top.setPixel(0, 0)
	under.setPixel(0, 0)
	under.setPixel(4, 0)
	out := composeCanvas(3, 1, []canvasLayer{{buf: top}, {buf: under}}, map[image.Point]string{{1, 0}: "S"})
	if want := "⠁S⠁"; out != want {
		t.Errorf("compose = %q, want %q", out, want)
	}
}
