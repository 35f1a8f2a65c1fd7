package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static tabular data (financial breakdowns, analytics
// rows) as aligned text columns.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a table with the given title and headers.
func NewSimpleTable(title string, headers ...string) *SimpleTable {
	return &SimpleTable{Title: title, Headers: headers}
}

// AddRow appends one row of cells.
func (t *SimpleTable) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table. An empty table renders nothing.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	// Column widths from headers and cells. lipgloss.Width handles wide
	// runes (Korean labels) correctly where len() would not.
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		widths[i] += 2 // cell padding
	}

	headerStyle := styles.Bold.Padding(0, 1)
	cellStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("│"))
		}
	}
	sb.WriteString("\n")

	total := len(t.Headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(cellStyle.Width(widths[i]).Render(cell))
			if i < len(row)-1 && i < len(widths)-1 {
				sb.WriteString(sepStyle.Render("│"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
