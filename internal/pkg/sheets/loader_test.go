package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad_XLSX(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"name", "birthdate", "city"},
		{"Alice", "1990-04-15", "Paris"},
		{"Bob", "1985-12-01", "London"},
	})

	table, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "birthdate", "city"}, table.Columns)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, "Alice", table.Cell(0, "name"))
	assert.Equal(t, "London", table.Cell(1, "city"))
}

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "name,city\nAlice,Paris\nBob,London\nCarol,Madrid\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "city"}, table.Columns)
	assert.Equal(t, 3, table.NumRows())
	assert.Equal(t, "Madrid", table.Cell(2, "city"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}

func TestLoad_EmptyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoad_URLCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("name,city\nAlice,Paris\n"))
	}))
	defer srv.Close()

	table, err := Load(context.Background(), srv.URL+"/export.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "city"}, table.Columns)
	assert.Equal(t, 1, table.NumRows())
}

func TestLoad_URLNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=403")
}

func TestExportURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"edit url with fragment gid",
			"https://docs.google.com/spreadsheets/d/1VEZc5l9bwDv-KN4SAMRo5w3FWNYlAlPTnmzJfJ8Fjuw/edit?gid=1444130644#gid=1444130644",
			"https://docs.google.com/spreadsheets/d/1VEZc5l9bwDv-KN4SAMRo5w3FWNYlAlPTnmzJfJ8Fjuw/export?format=xlsx&gid=1444130644",
		},
		{
			"edit url without gid",
			"https://docs.google.com/spreadsheets/d/abc-123_XY/edit",
			"https://docs.google.com/spreadsheets/d/abc-123_XY/export?format=xlsx",
		},
		{
			"fragment-only gid",
			"https://docs.google.com/spreadsheets/d/abc/edit#gid=7",
			"https://docs.google.com/spreadsheets/d/abc/export?format=xlsx&gid=7",
		},
		{
			"non-google url untouched",
			"https://example.com/report.xlsx",
			"https://example.com/report.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExportURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
