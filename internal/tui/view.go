package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	snap := "off"
	if m.snapLatched {
		snap = "on"
	}
	header := titleStyle.Render(" zonedrawer ") +
		dimStyle.Render(fmt.Sprintf("─ mode: %s  snap: %s  zones: %d", m.ed.State.Mode, snap, m.ed.Store.Len()))
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.w, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.h-2, 20))
		body := m.tbl.View()
		if len(m.tbl.Rows()) == 0 {
			body = dimStyle.Render("no zones yet")
		}
		mapView = lipgloss.Place(lo.w, lo.h, lipgloss.Center, lipgloss.Center, boxStyle.Width(maxW).Render(body))
	case m.pasteMode:
		// size textarea to map area
		m.ta.SetWidth(lo.w)
		m.ta.SetHeight(min(lo.h, 12))
		mapView = lipgloss.NewStyle().Width(lo.w).Height(lo.h).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(lo.w).Height(lo.h).Render(m.renderCanvas(lo.w, lo.h))
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer: status or save prompt, help, pointer coordinates
	var status string
	switch {
	case m.saveMode:
		status = " " + m.ti.View()
	case m.statusErr:
		status = errStyle.Render(" " + m.status + " ")
	default:
		status = dimStyle.Render(" " + m.status + " ")
	}
	coords := ""
	if m.hovering {
		coords = dimStyle.Render("  " + m.fileCoords(m.hoverWorld) + "  ")
	}
	spacerW := max(0, lo.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, right)),
		m.renderHelp(),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"z zone",
		"s start",
		"f finish",
		"a snap",
		"Esc cancel",
		"w save",
		"Tab files",
		"p paste",
		"t table",
		"e png",
		"y copy",
		"c clear",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
