package render

import (
	"fmt"
	"sort"
	"strconv"

	"lattice/internal/ui"
)

// analyticsTable builds a table from loosely-typed aggregate rows. Columns
// are the sorted union of all row keys so ragged rows still line up.
func analyticsTable(data []map[string]any) *ui.SimpleTable {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range data {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)

	tbl := ui.NewSimpleTable("", columns...)
	for _, row := range data {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = formatCell(row[col])
		}
		tbl.AddRow(cells...)
	}
	return tbl
}

// formatCell renders an arbitrary JSON value for a table cell. JSON
// numbers decode as float64; integral values print without a fraction.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		if x == "" {
			return "-"
		}
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
}
