package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/vegasq/csvtbl/internal/query"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row, keys in header order. A cell is a
// JSON number when it reads back as the same text (see exactNumber), a
// string otherwise; missing cells are null.
func (j *JSONFormatter) Format(headers []string, rows [][]string) error {
	names := columnNames(headers, rows)
	bw := bufio.NewWriter(j.writer)

	for _, row := range rows {
		if err := bw.WriteByte('{'); err != nil {
			return err
		}
		for i, name := range names {
			if i > 0 {
				_ = bw.WriteByte(',')
			}
			key, err := json.Marshal(name)
			if err != nil {
				return err
			}
			_, _ = bw.Write(key)
			_ = bw.WriteByte(':')

			val, err := jsonCell(row, i)
			if err != nil {
				return err
			}
			_, _ = bw.Write(val)
		}
		if _, err := bw.WriteString("}\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func jsonCell(row []string, i int) ([]byte, error) {
	if i >= len(row) {
		return []byte("null"), nil
	}

	v, ok := exactNumber(row[i])
	switch {
	case ok && v.Kind() == query.KindInt:
		return json.Marshal(v.Int64())
	case ok:
		return json.Marshal(v.Float64())
	default:
		return json.Marshal(row[i])
	}
}
