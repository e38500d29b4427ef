package output

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvtbl/internal/query"
)

// Table style names accepted by RenderTable.
const (
	StyleGrid   = "grid"
	StyleSimple = "simple"
	StyleGitHub = "github"
	StylePipe   = "pipe"
	StylePSQL   = "psql"
	StylePlain  = "plain"
)

// RenderTable writes headers and rows to w as a text table in the named
// style. Unknown styles render as simple. Rows shorter than the widest row
// are padded with empty cells; columns whose every non-empty cell is a
// number are right-aligned.
func RenderTable(w io.Writer, headers []string, rows [][]string, style string) {
	width := tableWidth(headers, rows)

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(pad(headers, width))
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnAlignment(columnAlignment(rows, width))

	applyStyle(tw, style)

	for _, row := range rows {
		tw.Append(pad(row, width))
	}
	tw.Render()
}

// TableStyles lists the recognised style names.
func TableStyles() []string {
	return []string{StyleGrid, StyleSimple, StyleGitHub, StylePipe, StylePSQL, StylePlain}
}

func applyStyle(tw *tablewriter.Table, style string) {
	switch strings.ToLower(style) {
	case StyleGrid:
		tw.SetRowLine(true)
	case StylePSQL:
		// tablewriter defaults: boxed, header line, no row lines.
	case StyleGitHub, StylePipe:
		tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
		tw.SetCenterSeparator("|")
	case StylePlain:
		tw.SetBorder(false)
		tw.SetHeaderLine(false)
		tw.SetCenterSeparator("")
		tw.SetColumnSeparator("")
		tw.SetRowSeparator("")
		tw.SetNoWhiteSpace(true)
		tw.SetTablePadding("  ")
	default:
		tw.SetBorder(false)
		tw.SetCenterSeparator(" ")
		tw.SetColumnSeparator(" ")
	}
}

func columnAlignment(rows [][]string, width int) []int {
	align := make([]int, width)
	for col := 0; col < width; col++ {
		numeric := false
		for _, row := range rows {
			if col >= len(row) || row[col] == "" {
				continue
			}
			if !query.Typeify(row[col]).IsNumber() {
				numeric = false
				break
			}
			numeric = true
		}
		if numeric {
			align[col] = tablewriter.ALIGN_RIGHT
		} else {
			align[col] = tablewriter.ALIGN_LEFT
		}
	}
	return align
}

// pad returns row extended with empty cells to width.
func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
