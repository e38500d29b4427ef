// Package reader loads tabular files into a table.Table.
//
// The file format is chosen by extension:
//
//   - .parquet: Apache Parquet, read with github.com/parquet-go/parquet-go
//   - .xlsx: Excel workbooks, read with github.com/xuri/excelize/v2
//   - anything else: delimited text (CSV), comma-separated unless a
//     delimiter is configured; .tsv files default to tabs
//
// Every cell is converted to its string form; typing happens later, at
// comparison time.
//
// # Basic Usage
//
//	tbl, err := reader.Load(ctx, "products.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tbl.Headers(), tbl.Len())
//
// # Multi-file Operations
//
// A path containing glob wildcards (* ? [) loads every match in lexical
// order and concatenates their rows. All files must have the same header:
//
//	tbl, err := reader.Load(ctx, "exports/2024-*.csv", reader.Options{})
//
// # Errors
//
// An empty or header-only input fails with table.ErrEmptyInput. Globs that
// match nothing fail with ErrNoFiles; files whose headers differ fail with
// ErrHeaderMismatch. Missing files keep their *fs.PathError so callers can
// test them with errors.Is(err, fs.ErrNotExist).
package reader
