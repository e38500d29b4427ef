package reader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vegasq/csvtbl/internal/table"
)

var (
	// ErrNoFiles is returned when a glob pattern matches nothing.
	ErrNoFiles = errors.New("no files match pattern")

	// ErrHeaderMismatch is returned when globbed files have different headers.
	ErrHeaderMismatch = errors.New("header mismatch")

	// ErrTooManyFiles is returned when a glob matches more than maxFiles files.
	ErrTooManyFiles = errors.New("glob pattern matched too many files")
)

// maxFiles limits glob expansion to prevent resource exhaustion.
const maxFiles = 1000

// Options control how files are parsed.
type Options struct {
	// Delimiter separates CSV fields. Zero means ',' (or '\t' for .tsv).
	Delimiter rune

	// Sheet selects the worksheet of an .xlsx file. Empty means the first.
	Sheet string
}

// Load reads path, or every file matching it when it is a glob pattern,
// into a single table. An existing file is read as-is even if its name
// contains glob characters.
func Load(ctx context.Context, path string, opts Options) (*table.Table, error) {
	if !isGlob(path) || fileExists(path) {
		headers, rows, err := readFile(ctx, path, opts)
		if err != nil {
			return nil, err
		}
		return table.New(headers, rows)
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, path)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("%w (%d), maximum is %d", ErrTooManyFiles, len(matches), maxFiles)
	}

	var headers []string
	var allRows [][]string
	for _, filePath := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h, rows, err := readFile(ctx, filePath, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		if headers == nil {
			headers = h
		} else if !slices.Equal(headers, h) {
			return nil, fmt.Errorf("%w: %s has [%s], expected [%s]",
				ErrHeaderMismatch, filePath, strings.Join(h, ","), strings.Join(headers, ","))
		}

		slog.Debug("loaded file", "path", filePath, "rows", len(rows))
		allRows = append(allRows, rows...)
	}

	return table.New(headers, allRows)
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// readFile dispatches on the file extension.
func readFile(ctx context.Context, path string, opts Options) ([]string, [][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		r, err := NewParquetReader(path)
		if err != nil {
			return nil, nil, err
		}
		defer func() { _ = r.Close() }()
		return r.ReadAll(ctx)
	case ".xlsx":
		return readXLSX(path, opts.Sheet)
	case ".tsv":
		if opts.Delimiter == 0 {
			opts.Delimiter = '\t'
		}
		return readCSVFile(ctx, path, opts.Delimiter)
	default:
		return readCSVFile(ctx, path, opts.Delimiter)
	}
}
