package output

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
)

// WriteOptions tunes file output.
type WriteOptions struct {
	// Format overrides the extension-based choice when non-empty.
	Format string

	// Sanitize enables formula sanitizing for CSV and TSV output.
	Sanitize bool
}

// WriteFile writes headers and rows to path. The format comes from
// opts.Format, or from the file extension when that is empty. On failure
// the partially written file is removed.
func WriteFile(ctx context.Context, path string, headers []string, rows [][]string, opts WriteOptions) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := opts.Format
	if name == "" {
		name = FormatForPath(path)
	}

	formatter, err := NewFormatter(name, nil)
	if err != nil {
		return err
	}
	if csvf, ok := formatter.(*CSVFormatter); ok {
		csvf.Sanitize = opts.Sanitize
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(file)
	formatter.SetOutput(bw)

	if err := formatter.Format(headers, rows); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	slog.Debug("wrote output file", "path", path, "format", name, "rows", len(rows))
	return nil
}

// WriteText writes content followed by a newline to path, replacing any
// existing file.
func WriteText(path, content string) error {
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
