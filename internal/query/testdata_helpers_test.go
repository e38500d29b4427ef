package query

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vegasq/csvtbl/internal/table"
)

// loadProducts loads testdata/products.csv: 10 phones with
// name, brand, price, rating columns.
func loadProducts(t *testing.T) *table.Table {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", "products.csv"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	tbl, err := table.New(records[0], records[1:])
	require.NoError(t, err)
	return tbl
}

// newTable builds a table from literal rows.
func newTable(t *testing.T, headers []string, rows ...[]string) *table.Table {
	t.Helper()
	tbl, err := table.New(headers, rows)
	require.NoError(t, err)
	return tbl
}
