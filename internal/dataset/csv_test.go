package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"taevo/internal/dataset"
)

func writeFixture(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const validTAsCSV = `ta_id,name,max_assigned,s0,s1
0,Alice,2,P,W
1,Bob,1,U,P
`

const validSectionsCSV = `section_id,instructor,daytime,min_ta
0,Knuth,MWF 9,1
1,Dijkstra,TT 10,1
`

func TestLoad_OK(t *testing.T) {
	t.Parallel()
	taPath := writeFixture(t, "tas.csv", validTAsCSV)
	secPath := writeFixture(t, "sections.csv", validSectionsCSV)

	tb, err := dataset.Load(taPath, secPath)
	require.NoError(t, err)
	require.Equal(t, 2, tb.NumTAs())
	require.Equal(t, 2, tb.NumSections())
	require.Equal(t, "Alice", tb.TAs[0].Name)
	require.Equal(t, dataset.PrefPreferred, tb.TAs[0].Prefs[0])
	require.Equal(t, "MWF 9", tb.Sections[0].Daytime)
}

func TestLoadTAs_BadPrefCode(t *testing.T) {
	t.Parallel()
	taPath := writeFixture(t, "tas.csv", "ta_id,name,max_assigned,s0\n0,Alice,2,Q\n")
	_, err := dataset.LoadTAs(taPath)
	require.Error(t, err)
}

func TestLoadTAs_RowWidthMismatch(t *testing.T) {
	t.Parallel()
	taPath := writeFixture(t, "tas.csv", "ta_id,name,max_assigned,s0,s1\n0,Alice,2,P\n")
	_, err := dataset.LoadTAs(taPath)
	require.Error(t, err)
}

func TestLoadTAs_NoDataRows(t *testing.T) {
	t.Parallel()
	taPath := writeFixture(t, "tas.csv", "ta_id,name,max_assigned,s0\n")
	_, err := dataset.LoadTAs(taPath)
	require.Error(t, err)
}

func TestLoadSections_NegativeMinTA(t *testing.T) {
	t.Parallel()
	secPath := writeFixture(t, "sections.csv", "section_id,instructor,daytime,min_ta\n0,Knuth,MWF 9,-1\n")
	_, err := dataset.LoadSections(secPath)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := dataset.Load(filepath.Join(t.TempDir(), "missing.csv"), filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
