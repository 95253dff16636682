package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"zonedrawer/internal/editor"
	"zonedrawer/internal/scenario"
)

const scenarioExt = ".txt"

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
		m.fail("read dir", err)
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.ToLower(filepath.Ext(name)) != scenarioExt {
			continue
		}
		items = append(items, fileItem{title: name, desc: scenarioExt, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.setStatus("no scenario files in " + m.cwd)
	}
}

// loadPath replaces the scenario with the file at p. A file that fails
// to decode leaves the current scenario untouched.
func (m *Model) loadPath(p string) {
	s, err := m.codec.ReadFile(p)
	if err != nil {
		m.lg.Warn("load failed", slog.String("path", p), slog.Any("error", err))
		m.fail("load "+filepath.Base(p), err)
		return
	}
	m.selPath = p
	m.apply(m.ed.Handle(editor.Load{Store: s}))
	m.lg.Info("scenario loaded", slog.String("path", p), slog.Int("zones", s.Len()))
	m.setStatus(fmt.Sprintf("loaded: %s  zones=%d", filepath.Base(p), m.ed.Store.Len()))
}

// savePath writes the scenario to p, relative to the browsed
// directory. Both anchors must be placed first.
func (m *Model) savePath(p string) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(m.cwd, p)
	}
	if err := m.codec.WriteFile(p, m.ed.Store); err != nil {
		if errors.Is(err, scenario.ErrNoStart) || errors.Is(err, scenario.ErrNoFinish) {
			m.fail("not saved", err)
			return
		}
		m.lg.Error("save failed", slog.String("path", p), slog.Any("error", err))
		m.fail("save", err)
		return
	}
	m.selPath = p
	m.lg.Info("scenario saved", slog.String("path", p), slog.Int("zones", m.ed.Store.Len()))
	m.refreshDir()
	m.setStatus("saved: " + p)
}

// pasteText decodes scenario text typed or pasted into the textarea.
func (m *Model) pasteText(text string) bool {
	if strings.TrimSpace(text) == "" {
		m.setStatus("paste: empty")
		return false
	}
	s, err := m.codec.Decode(strings.NewReader(text))
	if err != nil {
		m.fail("paste", err)
		return false
	}
	m.apply(m.ed.Handle(editor.Load{Store: s}))
	m.setStatus(fmt.Sprintf("pasted scenario  zones=%d", m.ed.Store.Len()))
	return true
}
