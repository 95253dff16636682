package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	"gonum.org/v1/gonum/spatial/r2"

	"zonedrawer/internal/geom"
)

// refreshZoneTable rebuilds the zones table from the store. Values are
// in file units, as they would be saved.
func (m *Model) refreshZoneTable() {
	cols := []table.Column{{Title: "#", Width: 4}}
	for i := 1; i <= 4; i++ {
		cols = append(cols, table.Column{Title: fmt.Sprintf("v%d", i), Width: 17})
	}
	cols = append(cols, table.Column{Title: "len", Width: 9}, table.Column{Title: "wid", Width: 9})

	rows := make([]table.Row, 0, m.ed.Store.Len())
	for i, z := range m.ed.Store.Zones() {
		rows = append(rows, m.zoneRow(i, z))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func (m *Model) zoneRow(i int, z geom.Zone) table.Row {
	k := m.codec.Scale
	row := table.Row{fmt.Sprintf("%d", i+1)}
	for _, p := range z {
		row = append(row, fmt.Sprintf("%.2f %.2f", p.X*k, p.Y*k))
	}
	return append(row,
		fmt.Sprintf("%.2f", r2.Norm(r2.Sub(z[1], z[0]))*k),
		fmt.Sprintf("%.2f", r2.Norm(r2.Sub(z[3], z[0]))*k),
	)
}
