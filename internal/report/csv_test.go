package report_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"taevo/internal/objective"
	"taevo/internal/report"
)

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	rows := []report.Row{
		{GroupName: "g1", Eval: objective.Evaluation{1, 0, 2, 0, 3}},
		{GroupName: "g1", Eval: objective.Evaluation{0, 0, 0, 0, 0}},
	}
	require.NoError(t, report.WriteCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"groupname", "overallocation", "conflicts", "undersupport", "unwilling", "unpreferred"}, records[0])
	require.Equal(t, []string{"g1", "1", "0", "2", "0", "3"}, records[1])
	require.Equal(t, []string{"g1", "0", "0", "0", "0", "0"}, records[2])
	require.Len(t, records, 3)
}

func TestWriteCSV_CreatesParentDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "out.csv")

	require.NoError(t, report.WriteCSV(path, nil))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestWriteCSV_EmptyRowsStillWritesHeader(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	require.NoError(t, report.WriteCSV(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "groupname,overallocation,conflicts,undersupport,unwilling,unpreferred\n", string(data))
}
