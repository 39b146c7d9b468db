package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// WindowsTableColumns returns columns for the window catalog table.
func WindowsTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 18},
		{Title: "Path", Width: 28},
		{Title: "Category", Width: 10},
		{Title: "Open policy", Width: 22},
		{Title: "Backdrop", Width: 12},
		{Title: "Script", Width: 16},
	}
}

// DescriptorRow converts a descriptor to a table row.
func DescriptorRow(d *entity.Descriptor) table.Row {
	script := d.Script
	if script == "" {
		script = "-"
	}
	return table.Row{
		string(d.ID),
		d.Path,
		d.Category.String(),
		d.OpenPolicy.String(),
		d.Backdrop.String(),
		script,
	}
}

// DescriptorRows converts descriptors to table rows, keeping their order.
func DescriptorRows(ds []*entity.Descriptor) []table.Row {
	rows := make([]table.Row, 0, len(ds))
	for _, d := range ds {
		rows = append(rows, DescriptorRow(d))
	}
	return rows
}
