// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"strings"
)

// Row is one line of a Table. Values are pre-formatted.
type Row struct {
	Label  string
	Values []string
}

// Table formats aligned columns: a left-aligned label followed by
// right-aligned values, one per header. Missing values print as "-".
type Table struct {
	Headers []string
	Rows    []Row
}

// String renders the table as plain text.
func (t *Table) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, row := range t.Rows {
		labelWidth = max(labelWidth, len(row.Label))
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, v := range row.Values {
			if i < len(widths) {
				widths[i] = max(widths[i], len(v))
			}
		}
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth))
	for i, h := range t.Headers {
		fmt.Fprintf(&sb, "  %*s", widths[i], h)
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		fmt.Fprintf(&sb, "%-*s", labelWidth, row.Label)
		for i := range t.Headers {
			v := "-"
			if i < len(row.Values) && row.Values[i] != "" {
				v = row.Values[i]
			}
			fmt.Fprintf(&sb, "  %*s", widths[i], v)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
