package population_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"taevo/internal/assign"
	"taevo/internal/dataset"
	"taevo/internal/objective"
	"taevo/internal/population"
)

func twoSectionTables() *dataset.Tables {
	return &dataset.Tables{
		TAs: []dataset.TA{
			{ID: 0, Name: "A", MaxAssigned: 2, Prefs: []dataset.Pref{dataset.PrefPreferred, dataset.PrefWilling}},
		},
		Sections: []dataset.Section{
			{ID: 0, Instructor: "X", Daytime: "MWF 9", MinTA: 0},
			{ID: 1, Instructor: "Y", Daytime: "TT 10", MinTA: 0},
		},
	}
}

func TestStore_InsertAndSize(t *testing.T) {
	t.Parallel()
	sc, err := objective.NewScorer(twoSectionTables())
	require.NoError(t, err)
	st := population.New(sc)

	require.Equal(t, 0, st.Size())
	_, err = st.Insert(assign.New(1, 2))
	require.NoError(t, err)
	require.Equal(t, 1, st.Size())
}

func TestStore_Insert_LastWriterWins(t *testing.T) {
	t.Parallel()
	sc, err := objective.NewScorer(twoSectionTables())
	require.NoError(t, err)
	st := population.New(sc)

	a := assign.New(1, 2)
	b := assign.New(1, 2) // same evaluation as a (all-zero)

	evalA, err := st.Insert(a)
	require.NoError(t, err)
	evalB, err := st.Insert(b)
	require.NoError(t, err)
	require.Equal(t, evalA, evalB)
	require.Equal(t, 1, st.Size())
	st.Each(func(_ objective.Evaluation, sol *assign.Solution) {
		require.Same(t, b, sol, "the later insert should replace the earlier one")
	})
}

func TestStore_RandomSample_EmptyPopulationErrors(t *testing.T) {
	t.Parallel()
	sc, err := objective.NewScorer(twoSectionTables())
	require.NoError(t, err)
	st := population.New(sc)

	rng := rand.New(rand.NewSource(1))
	_, err = st.RandomSample(1, rng)
	require.Error(t, err)
}

func TestStore_RandomSample_ReturnsIndependentClones(t *testing.T) {
	t.Parallel()
	sc, err := objective.NewScorer(twoSectionTables())
	require.NoError(t, err)
	st := population.New(sc)

	orig := assign.New(1, 2)
	orig.Set(0, 0, 1)
	_, err = st.Insert(orig)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	samples, err := st.RandomSample(3, rng)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	samples[0].Set(0, 0, 0)
	require.Equal(t, byte(1), orig.Get(0, 0), "mutating a sample must not affect the stored solution")
}

func TestStore_KeepAndEvaluations(t *testing.T) {
	t.Parallel()
	sc, err := objective.NewScorer(twoSectionTables())
	require.NoError(t, err)
	st := population.New(sc)

	a := assign.New(1, 2)
	b := assign.New(1, 2)
	b.Set(0, 1, 1) // willing section: unpreferred=1, so b's evaluation differs from a's

	evalA, err := st.Insert(a)
	require.NoError(t, err)
	evalB, err := st.Insert(b)
	require.NoError(t, err)
	require.Equal(t, 2, st.Size())

	st.Keep(map[objective.Evaluation]bool{evalA: true})
	require.Equal(t, 1, st.Size())
	require.ElementsMatch(t, []objective.Evaluation{evalA}, st.Evaluations())
	_ = evalB
}

func TestStore_Each(t *testing.T) {
	t.Parallel()
	sc, err := objective.NewScorer(twoSectionTables())
	require.NoError(t, err)
	st := population.New(sc)
	_, err = st.Insert(assign.New(1, 2))
	require.NoError(t, err)

	visited := 0
	st.Each(func(objective.Evaluation, *assign.Solution) { visited++ })
	require.Equal(t, 1, visited)
}
