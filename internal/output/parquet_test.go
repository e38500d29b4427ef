package output

import (
	"bytes"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type writtenRow struct {
	Name  *string `parquet:"name,optional"`
	Price *string `parquet:"price,optional"`
	Name2 *string `parquet:"name_2,optional"`
}

func columnsOf(t *testing.T, data []byte) []string {
	t.Helper()

	pqFile, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, field := range pqFile.Schema().Fields() {
		names = append(names, field.Name())
	}
	return names
}

func TestParquetFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"name", "price", "name"}
	rows := [][]string{
		{"iphone", "999", "x"},
		{"pixel"},
	}

	require.NoError(t, NewParquetFormatter(&buf).Format(headers, rows))
	assert.Equal(t, []string{"name", "price", "name_2"}, columnsOf(t, buf.Bytes()))

	got, err := parquet.Read[writtenRow](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Name)
	require.NotNil(t, got[0].Price)
	require.NotNil(t, got[0].Name2)
	assert.Equal(t, "iphone", *got[0].Name)
	assert.Equal(t, "999", *got[0].Price)
	assert.Equal(t, "x", *got[0].Name2)

	require.NotNil(t, got[1].Name)
	assert.Equal(t, "pixel", *got[1].Name)
	assert.Nil(t, got[1].Price)
	assert.Nil(t, got[1].Name2)
}

func TestParquetFormatter_NoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewParquetFormatter(&buf).Format([]string{"id"}, nil))

	pqFile, err := parquet.OpenFile(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, int64(0), pqFile.NumRows())
	assert.Equal(t, []string{"id"}, columnsOf(t, buf.Bytes()))
}

func TestParquetFormatter_KeepsHeaderOrder(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"zeta", "alpha", "mid,dle"}
	require.NoError(t, NewParquetFormatter(&buf).Format(headers, [][]string{{"1", "2", "3"}}))

	assert.Equal(t, []string{"zeta", "alpha", "mid_dle"}, columnsOf(t, buf.Bytes()))
}
