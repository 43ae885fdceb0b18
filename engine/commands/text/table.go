package text

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// tablePadding separates the columns of a Table.
const tablePadding = "  "

// Table renders rows as borderless left-aligned columns, each line prefixed
// with Indentation. The header is skipped when empty. The result has no
// trailing newline.
func Table(header []string, rows [][]string) string {
	var sb strings.Builder

	tw := tablewriter.NewWriter(&sb)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetRowLine(false)
	tw.SetColumnSeparator("")
	tw.SetCenterSeparator("")
	tw.SetNoWhiteSpace(true)
	tw.SetTablePadding(tablePadding)
	if len(header) > 0 {
		tw.SetHeader(header)
	}
	tw.AppendBulk(rows)
	tw.Render()

	out := strings.TrimRight(sb.String(), "\n")
	if out == "" {
		return ""
	}

	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = Indentation + strings.TrimRight(l, " ")
	}

	return strings.Join(lines, "\n")
}
