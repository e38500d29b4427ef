package output

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// ParquetFormatter writes rows as a parquet file with one optional string
// column per header. Missing cells are stored as nulls.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new Parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes the whole table as a single parquet file. Columns keep
// header order.
func (p *ParquetFormatter) Format(headers []string, rows [][]string) error {
	names := parquetNames(headers, rows)
	schema := parquet.SchemaOf(reflect.Zero(rowType(names)).Interface())

	pqRows := make([]parquet.Row, 0, len(rows))
	for _, row := range rows {
		pqRow := make(parquet.Row, len(names))
		for col := range names {
			if col < len(row) {
				pqRow[col] = parquet.ByteArrayValue([]byte(row[col])).Level(0, 1, col)
			} else {
				pqRow[col] = parquet.NullValue().Level(0, 0, col)
			}
		}
		pqRows = append(pqRows, pqRow)
	}

	writer := parquet.NewWriter(p.writer, schema)
	if _, err := writer.WriteRows(pqRows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// parquetNames is columnNames with commas replaced, since a comma ends the
// column name inside a parquet struct tag.
func parquetNames(headers []string, rows [][]string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = strings.ReplaceAll(h, ",", "_")
	}
	return columnNames(cleaned, rows)
}

// rowType builds a struct with one optional string field per name, in order.
// Struct schemas keep field order, where a parquet.Group sorts by name.
func rowType(names []string) reflect.Type {
	fields := make([]reflect.StructField, len(names))
	for i, name := range names {
		fields[i] = reflect.StructField{
			Name: "C" + strconv.Itoa(i),
			Type: reflect.TypeOf(""),
			Tag:  reflect.StructTag("parquet:" + strconv.Quote(name+",optional")),
		}
	}
	return reflect.StructOf(fields)
}
