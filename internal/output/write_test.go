package output

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/csvtbl/internal/reader"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteFile(t *testing.T) {
	headers := []string{"name", "price"}
	rows := [][]string{{"iphone", "999"}, {"pixel", "599"}}

	tests := []struct {
		name string
		file string
		opts WriteOptions
		want string
	}{
		{
			name: "csv by extension",
			file: "out.csv",
			want: "name,price\niphone,999\npixel,599\n",
		},
		{
			name: "unknown extension falls back to csv",
			file: "out.txt",
			want: "name,price\niphone,999\npixel,599\n",
		},
		{
			name: "tsv by extension",
			file: "out.tsv",
			want: "name\tprice\niphone\t999\npixel\t599\n",
		},
		{
			name: "jsonl by extension",
			file: "out.jsonl",
			want: "{\"name\":\"iphone\",\"price\":999}\n{\"name\":\"pixel\",\"price\":599}\n",
		},
		{
			name: "explicit format wins over extension",
			file: "out.csv",
			opts: WriteOptions{Format: "jsonl"},
			want: "{\"name\":\"iphone\",\"price\":999}\n{\"name\":\"pixel\",\"price\":599}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, WriteFile(context.Background(), path, headers, rows, tt.opts))
			assert.Equal(t, tt.want, readFile(t, path))
		})
	}
}

func TestWriteFile_EmptyResultWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(context.Background(), path, []string{"a", "b"}, [][]string{}, WriteOptions{}))
	assert.Equal(t, "a,b\n", readFile(t, path))
}

func TestWriteFile_Sanitize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(context.Background(), path, []string{"f"}, [][]string{{"=1+1"}}, WriteOptions{Sanitize: true}))
	assert.Equal(t, "f\n'=1+1\n", readFile(t, path))
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("old\n", 100)), 0o644))

	require.NoError(t, WriteFile(context.Background(), path, []string{"a"}, [][]string{{"1"}}, WriteOptions{}))
	assert.Equal(t, "a\n1\n", readFile(t, path))
}

func TestWriteFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := WriteFile(context.Background(), path, []string{"a"}, nil, WriteOptions{Format: "yaml"})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NoFileExists(t, path)
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := WriteFile(context.Background(), path, []string{"a"}, nil, WriteOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteFile(ctx, path, []string{"a"}, nil, WriteOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")
	require.NoError(t, WriteText(path, "Aggregation result: 6020"))
	assert.Equal(t, "Aggregation result: 6020\n", readFile(t, path))
}

func TestWriteFile_ParquetRoundTripKeepsColumnOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	headers := []string{"price", "brand", "name"}
	rows := [][]string{{"999", "apple", "iphone"}, {"599", "google", "pixel"}}

	require.NoError(t, WriteFile(context.Background(), path, headers, rows, WriteOptions{}))

	tbl, err := reader.Load(context.Background(), path, reader.Options{})
	require.NoError(t, err)
	assert.Equal(t, headers, tbl.Headers())
	assert.Equal(t, rows, tbl.Rows())
}
