package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvtbl/internal/config"
	"github.com/vegasq/csvtbl/internal/logging"
	"github.com/vegasq/csvtbl/internal/output"
	"github.com/vegasq/csvtbl/internal/query"
	"github.com/vegasq/csvtbl/internal/reader"
	"github.com/vegasq/csvtbl/internal/table"
)

// ErrMutuallyExclusiveFlags is returned when more than one of --where,
// --aggregate and --schema is given.
var ErrMutuallyExclusiveFlags = errors.New("mutually exclusive flags")

const (
	msgFilterResults = "Filter results:"
	msgNoRows        = "No rows match the condition"
	msgAggregate     = "Aggregation result: "
	msgSaved         = "Results saved to "
)

type options struct {
	file         string
	where        string
	aggregate    string
	output       string
	outputFormat string
	sheet        string
	configFile   string
	schema       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "csvtbl --file PATH [--where EXPR | --aggregate EXPR] [--output PATH]",
		Short: "Filter, aggregate and print tabular files",
		Long: `Load a CSV file (or TSV, Parquet, XLSX, or a glob of them) and either filter
rows by one condition, compute one aggregate over a numeric column, or print
the data as a table.

Conditions are written without spaces:
  --where "price>500"      operators: = > <
  --aggregate "price=avg"  functions: min max avg sum

Numbers compare numerically; text supports only =.`,
		Example: `  csvtbl --file products.csv
  csvtbl --file products.csv --where "brand=apple" --tablefmt github
  csvtbl --file products.csv --aggregate "price=sum"
  csvtbl --file "data/*.csv" --where "rating<4.5" --output low.jsonl`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Checked before config or input are touched.
			if err := checkModes(opts); err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Flags(), opts.configFile)
			if err != nil {
				return err
			}
			logging.Setup(cfg.Log.Level, cfg.Log.Format)

			return run(cmd.Context(), cmd.OutOrStdout(), opts, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.file, "file", "", "Input file or glob pattern (.csv, .tsv, .parquet, .xlsx)")
	flags.StringVar(&opts.where, "where", "", `Filter condition, e.g. "price>500"`)
	flags.StringVar(&opts.aggregate, "aggregate", "", `Aggregate condition, e.g. "price=avg"`)
	flags.StringVar(&opts.output, "output", "", "Write results to this file instead of stdout")
	flags.StringVar(&opts.outputFormat, "output-format", "", "Output file format: csv, tsv, jsonl, parquet, xlsx (default: from extension)")
	flags.StringVar(&opts.sheet, "sheet", "", "Worksheet to read from .xlsx input (default: first sheet)")
	flags.BoolVar(&opts.schema, "schema", false, "Show each column's inferred type instead of the data")
	flags.StringVar(&opts.configFile, "config", "", "Config file (default: $HOME/"+config.DefaultFileName+")")
	flags.String("tablefmt", config.DefaultTableFormat, "Table style: "+strings.Join(output.TableStyles(), ", "))
	flags.String("delimiter", "", `Input field delimiter (default: "," or tab for .tsv)`)
	flags.Bool("sanitize", false, "Quote cells that spreadsheets would run as formulas in CSV output")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.String("log-format", config.DefaultLogFormat, "Log format: text, json")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(ctx context.Context, stdout io.Writer, opts options, cfg *config.Config) error {
	// Parse before loading so a bad expression fails fast.
	var (
		filterCond *query.FilterCondition
		aggCond    *query.AggregateCondition
	)
	switch {
	case opts.where != "":
		cond, err := query.ParseFilter(opts.where)
		if err != nil {
			return err
		}
		filterCond = &cond
	case opts.aggregate != "":
		cond, err := query.ParseAggregate(opts.aggregate)
		if err != nil {
			return err
		}
		aggCond = &cond
	}

	delimiter, err := cfg.DelimiterRune()
	if err != nil {
		return err
	}

	tbl, err := reader.Load(ctx, opts.file, reader.Options{Delimiter: delimiter, Sheet: opts.sheet})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file '%s' not found: %w", opts.file, err)
		}
		return err
	}
	slog.Debug("loaded input", "path", opts.file, "rows", tbl.Len(), "columns", len(tbl.Headers()))

	switch {
	case opts.schema:
		return runSchema(ctx, stdout, tbl, opts, cfg)
	case filterCond != nil:
		return runFilter(ctx, stdout, tbl, *filterCond, opts, cfg)
	case aggCond != nil:
		return runAggregate(stdout, tbl, *aggCond, opts)
	default:
		if opts.output != "" {
			return save(ctx, stdout, tbl.Headers(), tbl.Rows(), opts, cfg)
		}
		output.RenderTable(stdout, tbl.Headers(), tbl.Rows(), cfg.TableFormat)
		return nil
	}
}

func checkModes(opts options) error {
	var set []string
	if opts.where != "" {
		set = append(set, "--where")
	}
	if opts.aggregate != "" {
		set = append(set, "--aggregate")
	}
	if opts.schema {
		set = append(set, "--schema")
	}
	if len(set) > 1 {
		return fmt.Errorf("%w: %s cannot be used together", ErrMutuallyExclusiveFlags, strings.Join(set, " and "))
	}
	return nil
}

func runSchema(ctx context.Context, stdout io.Writer, tbl *table.Table, opts options, cfg *config.Config) error {
	infos := query.Describe(tbl)
	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = info.Row()
	}

	if opts.output != "" {
		return save(ctx, stdout, query.ColumnInfoHeaders(), rows, opts, cfg)
	}
	output.RenderTable(stdout, query.ColumnInfoHeaders(), rows, cfg.TableFormat)
	return nil
}

func runFilter(ctx context.Context, stdout io.Writer, tbl *table.Table, cond query.FilterCondition, opts options, cfg *config.Config) error {
	rows, stats, err := query.FilterWithStats(tbl, cond)
	if err != nil {
		return withColumns(err, tbl)
	}
	slog.Debug("filter finished",
		"condition", cond.String(),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"short_rows", stats.ShortRows,
		"non_numeric", stats.NonNumeric,
	)

	if opts.output != "" {
		return save(ctx, stdout, tbl.Headers(), rows, opts, cfg)
	}

	if len(rows) == 0 {
		fmt.Fprintln(stdout, msgNoRows)
		return nil
	}
	fmt.Fprintln(stdout, msgFilterResults)
	output.RenderTable(stdout, tbl.Headers(), rows, cfg.TableFormat)
	return nil
}

func runAggregate(stdout io.Writer, tbl *table.Table, cond query.AggregateCondition, opts options) error {
	result, stats, err := query.AggregateWithStats(tbl, cond)
	if err != nil {
		return withColumns(err, tbl)
	}
	slog.Debug("aggregate finished",
		"condition", cond.String(),
		"scanned", stats.Scanned,
		"collected", stats.Matched,
		"short_rows", stats.ShortRows,
		"non_numeric", stats.NonNumeric,
	)

	content := msgAggregate + result.String()
	if opts.output != "" {
		if err := output.WriteText(opts.output, content); err != nil {
			return err
		}
		fmt.Fprintln(stdout, msgSaved+opts.output)
		return nil
	}

	fmt.Fprintln(stdout, content)
	return nil
}

func save(ctx context.Context, stdout io.Writer, headers []string, rows [][]string, opts options, cfg *config.Config) error {
	err := output.WriteFile(ctx, opts.output, headers, rows, output.WriteOptions{
		Format:   opts.outputFormat,
		Sanitize: cfg.Sanitize,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, msgSaved+opts.output)
	return nil
}

// withColumns appends the available column names to an unknown-field error.
func withColumns(err error, tbl *table.Table) error {
	if errors.Is(err, query.ErrUnknownField) {
		return fmt.Errorf("%w\navailable columns: %s", err, strings.Join(tbl.Headers(), ", "))
	}
	return err
}
