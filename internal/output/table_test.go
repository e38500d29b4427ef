package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/stretchr/testify/assert"
)

var (
	phoneHeaders = []string{"name", "brand", "price"}
	phoneRows    = [][]string{
		{"iphone", "apple", "999"},
		{"galaxy", "samsung", "1199"},
	}
)

func render(style string, headers []string, rows [][]string) string {
	var buf bytes.Buffer
	RenderTable(&buf, headers, rows, style)
	return buf.String()
}

func TestRenderTable_Styles(t *testing.T) {
	tests := []struct {
		style   string
		has     []string
		hasNot  []string
		checkFn func(t *testing.T, lines []string)
	}{
		{
			style: StyleGrid,
			has:   []string{"+", "|", "name", "iphone", "samsung", "1199"},
		},
		{
			style: StylePSQL,
			has:   []string{"+", "|", "galaxy"},
		},
		{
			style:  StyleSimple,
			has:    []string{"-", "name", "iphone"},
			hasNot: []string{"|", "+"},
		},
		{
			style:  StyleGitHub,
			has:    []string{"|", "-", "apple"},
			hasNot: []string{"+"},
			checkFn: func(t *testing.T, lines []string) {
				for _, line := range lines {
					assert.True(t, strings.HasPrefix(line, "|"), line)
				}
			},
		},
		{
			style:  StylePlain,
			has:    []string{"name", "iphone"},
			hasNot: []string{"|", "+", "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			out := render(tt.style, phoneHeaders, phoneRows)

			for _, s := range tt.has {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.hasNot {
				assert.NotContains(t, out, s)
			}
			if tt.checkFn != nil {
				tt.checkFn(t, strings.Split(strings.TrimRight(out, "\n"), "\n"))
			}
		})
	}
}

func TestRenderTable_GridHasRowLines(t *testing.T) {
	grid := render(StyleGrid, phoneHeaders, phoneRows)
	psql := render(StylePSQL, phoneHeaders, phoneRows)

	assert.Greater(t, strings.Count(grid, "+-"), strings.Count(psql, "+-"))
}

func TestRenderTable_HeadersKeepCase(t *testing.T) {
	out := render(StyleGrid, []string{"unit_price"}, [][]string{{"5"}})
	assert.Contains(t, out, "unit_price")
	assert.NotContains(t, out, "UNIT PRICE")
}

func TestRenderTable_PipeMatchesGitHub(t *testing.T) {
	assert.Equal(t, render(StyleGitHub, phoneHeaders, phoneRows), render(StylePipe, phoneHeaders, phoneRows))
}

func TestRenderTable_UnknownStyleIsSimple(t *testing.T) {
	assert.Equal(t, render(StyleSimple, phoneHeaders, phoneRows), render("fancy_grid", phoneHeaders, phoneRows))
}

func TestRenderTable_RaggedRows(t *testing.T) {
	out := render(StyleGrid, []string{"a"}, [][]string{{"1", "extra"}, {}})
	assert.Contains(t, out, "extra")
}

func TestColumnAlignment(t *testing.T) {
	rows := [][]string{
		{"iphone", "999", "", "4.5"},
		{"galaxy", "n/a", "", "4.8"},
		{"pixel", "599"},
	}

	got := columnAlignment(rows, 5)
	assert.Equal(t, []int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	}, got)
}

func TestPad(t *testing.T) {
	assert.Equal(t, []string{"a", "", ""}, pad([]string{"a"}, 3))
	assert.Equal(t, []string{"a", "b"}, pad([]string{"a", "b"}, 1))
}
