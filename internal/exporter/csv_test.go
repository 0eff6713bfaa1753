package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darahcli/internal/config"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	return &config.Paths{ReportsDir: t.TempDir()}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestWriteSimpleCSV(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	headers := []string{"Entity", "Total"}
	records := [][]string{
		{"Hospital A", "120"},
		{"Hospital B", "45"},
	}

	require.NoError(t, writer.WriteSimpleCSV("totals.csv", headers, records))

	data := readFile(t, filepath.Join(paths.ReportsDir, "totals.csv"))

	t.Run("BOM prefix present", func(t *testing.T) {
		require.True(t, len(data) >= 3)
		assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	})

	t.Run("content parses back", func(t *testing.T) {
		rows, err := csv.NewReader(strings.NewReader(string(data[3:]))).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, headers, rows[0])
		assert.Equal(t, records[0], rows[1])
	})
}

func TestAppendToCSV(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	require.NoError(t, writer.WriteCSV("log.csv", WriteOptions{
		Headers: []string{"Date", "Total"},
		Records: [][]string{{"2024-01-01", "10"}},
	}))
	require.NoError(t, writer.AppendToCSV("log.csv", [][]string{{"2024-01-02", "20"}}))

	data := readFile(t, filepath.Join(paths.ReportsDir, "log.csv"))
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2024-01-02", "20"}, rows[2])
}

func TestWriteCSVCreatesDirectories(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	require.NoError(t, writer.WriteCSV(filepath.Join("nested", "dir", "out.csv"), WriteOptions{
		Headers: []string{"A"},
		Records: [][]string{{"1"}},
	}))

	_, err := os.Stat(filepath.Join(paths.ReportsDir, "nested", "dir", "out.csv"))
	assert.NoError(t, err)
}

func TestWriteCSVAbsolutePathBypassesReportsDir(t *testing.T) {
	writer := NewCSVWriter(testPaths(t))
	target := filepath.Join(t.TempDir(), "abs.csv")

	require.NoError(t, writer.WriteCSV(target, WriteOptions{
		Headers: []string{"A"},
		Records: [][]string{{"1"}},
	}))

	_, err := os.Stat(target)
	assert.NoError(t, err)
}
