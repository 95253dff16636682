package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	list "github.com/charmbracelet/bubbles/list"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zonedrawer/internal/editor"
	"zonedrawer/internal/geom"
	"zonedrawer/internal/render"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize refits the canvas to the map area. Zones are stored in world
// units so nothing else changes.
func (m *Model) resize() {
	lo := m.layout()
	m.ed.SetMapper(geom.FitMapper(m.cfg.Bounds, 2*lo.w-1, 4*lo.h-1))
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		case "ctrl+s":
			if m.pasteText(m.ta.Value()) {
				m.pasteMode = false
				m.ta.Blur()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	if m.saveMode {
		switch msg.String() {
		case "esc":
			m.saveMode = false
			m.ti.Blur()
			m.setStatus("save cancelled")
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.ti.Value())
			if name == "" {
				m.setStatus("save: empty file name")
				return m, nil
			}
			m.saveMode = false
			m.ti.Blur()
			m.savePath(name)
			return m, nil
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	if m.showTable {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, m.quit()
		case "esc", "t":
			m.showTable = false
			m.tbl.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, m.quit()
	case "z":
		m.apply(m.ed.Handle(editor.SetMode{Mode: editor.ModeZone}))
	case "s":
		m.apply(m.ed.Handle(editor.SetMode{Mode: editor.ModeStart}))
	case "f":
		m.apply(m.ed.Handle(editor.SetMode{Mode: editor.ModeFinish}))
	case "a":
		m.snapLatched = !m.snapLatched
		m.setStatus(fmt.Sprintf("snap: %v", m.snapLatched))
	case "esc":
		m.apply(m.ed.Handle(editor.Cancel{}))
	case "c":
		m.apply(m.ed.Handle(editor.Clear{}))
	case "w":
		name := m.selPath
		if name == "" {
			name = "zones" + scenarioExt
		}
		m.saveMode = true
		m.ti.SetValue(name)
		m.ti.CursorEnd()
		cmd := m.ti.Focus()
		return m, tea.Batch(cmd, textinput.Blink)
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
		}
		m.resize()
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.setStatus("paste mode")
		cmd := m.ta.Focus()
		return m, cmd
	case "t":
		m.showTable = true
		m.refreshZoneTable()
		m.tbl.Focus()
	case "e":
		m.export()
	case "y":
		m.copyScenario()
	case "h":
		m.helpVisible = !m.helpVisible
	default:
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	if m.pasteMode || m.saveMode || m.showTable {
		return
	}
	lo := m.layout()
	at, in := lo.cellToMicro(msg.X, msg.Y)
	snap := msg.Shift || msg.Alt || m.snapLatched

	m.hovering = in
	if in {
		m.hoverMic = at
		m.hoverWorld = m.ed.Mapper.ToWorld(m.ed.Mapper.Clamp(at))
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !in {
			return
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.buttonDown = true
			m.apply(m.ed.Handle(editor.Press{At: at, Snap: snap}))
		case tea.MouseButtonRight:
			m.apply(m.ed.Handle(editor.SecondaryClick{At: at}))
		}
	case tea.MouseActionMotion:
		if m.buttonDown && msg.Button == tea.MouseButtonLeft {
			m.apply(m.ed.Handle(editor.DragTo{At: at}))
		} else if in {
			m.apply(m.ed.Handle(editor.Move{At: at, Snap: snap}))
		}
	case tea.MouseActionRelease:
		m.buttonDown = false
		m.apply(m.ed.Handle(editor.Release{}))
	}
}

// apply turns editor effects into status text and log lines.
func (m *Model) apply(fx []editor.Effect) {
	for _, f := range fx {
		switch f := f.(type) {
		case editor.Status:
			m.setStatus(f.Text)
		case editor.ZoneAdded:
			m.lg.Info("zone added", slog.Int("index", f.Index), slog.Int("zones", m.ed.Store.Len()))
			m.setStatus(fmt.Sprintf("zone %d added", f.Index+1))
		case editor.ZoneRemoved:
			m.lg.Info("zone removed", slog.Int("index", f.Index), slog.Int("zones", m.ed.Store.Len()))
			m.setStatus(fmt.Sprintf("zone %d removed", f.Index+1))
		case editor.AnchorMoved:
			p := m.ed.Store.Finish
			if f.Anchor == editor.AnchorStart {
				p = m.ed.Store.Start
			}
			w, _ := p()
			m.setStatus(fmt.Sprintf("%s at %s", f.Anchor, m.fileCoords(w)))
		}
	}
	if m.showTable {
		m.refreshZoneTable()
	}
}

func (m *Model) export() {
	opts := render.Options{Height: m.cfg.ExportHeight, FontSize: m.cfg.FontSize}
	if err := render.WritePNG(m.cfg.ExportPath, m.ed.Store, m.cfg.Bounds, opts); err != nil {
		m.lg.Error("export failed", slog.String("path", m.cfg.ExportPath), slog.Any("error", err))
		m.fail("export", err)
		return
	}
	m.lg.Info("png exported", slog.String("path", m.cfg.ExportPath))
	m.setStatus("exported: " + m.cfg.ExportPath)
}

// copyScenario puts the encoded scenario on the system clipboard.
func (m *Model) copyScenario() {
	data, err := m.codec.Encode(m.ed.Store)
	if err != nil {
		m.fail("not copied", err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.lg.Warn("clipboard unavailable", slog.Any("error", err))
		m.fail("clipboard", err)
		return
	}
	m.setStatus(fmt.Sprintf("copied scenario  zones=%d", m.ed.Store.Len()))
}

func (m *Model) quit() tea.Cmd {
	m.lg.Info("quit", slog.Int("zones", m.ed.Store.Len()))
	return tea.Quit
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) fail(what string, err error) {
	m.status = what + ": " + err.Error()
	m.statusErr = true
}

// fileCoords formats a world point the way the scenario file stores it.
func (m Model) fileCoords(p geom.Point) string {
	k := m.codec.Scale
	return fmt.Sprintf("x=%.2f y=%.2f", p.X*k, p.Y*k)
}
