package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFormatter_Format(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		want    [][]string
	}{
		{
			name:    "header only",
			headers: []string{"id", "name"},
			rows:    [][]string{},
			want:    [][]string{{"id", "name"}},
		},
		{
			name:    "multiple rows",
			headers: []string{"id", "name"},
			rows:    [][]string{{"1", "alice"}, {"2", "bob"}},
			want:    [][]string{{"id", "name"}, {"1", "alice"}, {"2", "bob"}},
		},
		{
			name:    "quoting",
			headers: []string{"name", "note"},
			rows:    [][]string{{"Smith, J", `said "hi"`}},
			want:    [][]string{{"name", "note"}, {"Smith, J", `said "hi"`}},
		},
		{
			name:    "ragged rows keep their length",
			headers: []string{"a", "b"},
			rows:    [][]string{{"1"}, {"1", "2", "3"}},
			want:    [][]string{{"a", "b"}, {"1"}, {"1", "2", "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewCSVFormatter(&buf).Format(tt.headers, tt.rows))

			reader := csv.NewReader(strings.NewReader(buf.String()))
			reader.FieldsPerRecord = -1
			records, err := reader.ReadAll()
			require.NoError(t, err)
			assert.Equal(t, tt.want, records)
		})
	}
}

func TestCSVFormatter_TabDelimiter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter(FormatTSV, &buf)
	require.NoError(t, err)

	require.NoError(t, f.Format([]string{"a", "b"}, [][]string{{"1", "2"}}))
	assert.Equal(t, "a\tb\n1\t2\n", buf.String())
}

func TestCSVFormatter_Sanitize(t *testing.T) {
	rows := [][]string{{"=SUM(A1:A2)", "-5", "plain", "@cmd", "it's"}}

	var raw bytes.Buffer
	require.NoError(t, NewCSVFormatter(&raw).Format([]string{"a", "b", "c", "d", "e"}, rows))
	assert.Contains(t, raw.String(), "=SUM(A1:A2),-5,plain,@cmd,it's")

	var safe bytes.Buffer
	f := NewCSVFormatter(&safe)
	f.Sanitize = true
	require.NoError(t, f.Format([]string{"a", "b", "c", "d", "e"}, rows))
	assert.Contains(t, safe.String(), "'=SUM(A1:A2),'-5,plain,'@cmd,it's")
	assert.True(t, strings.HasPrefix(safe.String(), "a,b,c,d,e\n"), "headers are not sanitized")
}

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"=1+1", "'=1+1"},
		{"+1", "'+1"},
		{"|pipe", "'|pipe"},
		{"=a'b", "'=a''b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeCell(tt.in), tt.in)
	}
}

func TestCSVFormatter_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	f := NewCSVFormatter(&first)
	f.SetOutput(&second)

	require.NoError(t, f.Format([]string{"x"}, [][]string{{"1"}}))
	assert.Empty(t, first.String())
	assert.Equal(t, "x\n1\n", second.String())
}
