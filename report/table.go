package report

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// columnGap separates the columns of an ANSI table.
const columnGap = "  "

// table is a header plus rows of pre-formatted cells.
type table struct {
	Header []string
	Rows   [][]string
}

func (t *table) append(row ...string) {
	t.Rows = append(t.Rows, row)
}

// ansiTable lays the table out in left aligned columns separated by two
// spaces. Column widths come from the visible width of every cell; SGR
// sequences do not count.
func ansiTable(t table) string {
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
	tw.SetTablePadding(columnGap)
	tw.SetHeader(t.Header)
	tw.AppendBulk(t.Rows)
	tw.Render()

	return trimTrailingSpace(sb.String())
}

// markdownTable renders the table as a GitHub flavoured Markdown table.
func markdownTable(t table) string {
	var sb strings.Builder

	tw := tablewriter.NewWriter(&sb)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")
	tw.SetHeader(t.Header)
	tw.AppendBulk(t.Rows)
	tw.Render()

	return sb.String()
}

// trimTrailingSpace drops the padding emitted after the last column of each line.
func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}

	return strings.Join(lines, "\n")
}
