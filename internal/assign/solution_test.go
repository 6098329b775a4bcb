package assign_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"taevo/internal/assign"
)

func TestNewAndGetSet(t *testing.T) {
	t.Parallel()
	s := assign.New(3, 4)
	require.NoError(t, s.Validate(3, 4))
	require.Equal(t, byte(0), s.Get(1, 2))

	s.Set(1, 2, 1)
	require.Equal(t, byte(1), s.Get(1, 2))
	require.Equal(t, 1, s.AssignedCount(1))
	require.Equal(t, 1, s.StaffedCount(2))

	s.Flip(1, 2)
	require.Equal(t, byte(0), s.Get(1, 2))
}

func TestRandomShapeAndRange(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	s := assign.Random(5, 6, rng)
	require.NoError(t, s.Validate(5, 6))
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()
	s := assign.New(2, 2)
	s.Set(0, 0, 1)
	clone := s.Clone()
	clone.Set(0, 0, 0)
	require.Equal(t, byte(1), s.Get(0, 0))
	require.Equal(t, byte(0), clone.Get(0, 0))
}

func TestValidate_WrongShape(t *testing.T) {
	t.Parallel()
	s := assign.New(2, 2)
	require.Error(t, s.Validate(3, 2))
	require.Error(t, s.Validate(2, 3))
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()
	var s *assign.Solution
	require.Error(t, s.Validate(1, 1))
}

func TestShuffleCells_FlipsExactCount(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	s := assign.New(4, 4)
	s.ShuffleCells(6, rng)

	set := 0
	for ti := 0; ti < 4; ti++ {
		set += s.AssignedCount(ti)
	}
	require.Equal(t, 6, set)
}

func TestShuffleCells_CountClampedToSize(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	s := assign.New(2, 2)
	s.ShuffleCells(100, rng)
	require.NoError(t, s.Validate(2, 2))

	set := 0
	for ti := 0; ti < 2; ti++ {
		set += s.AssignedCount(ti)
	}
	require.Equal(t, 4, set)
}

func TestMutateCells_ZeroRateNoChange(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	s := assign.Random(4, 4, rng)
	before := s.Clone()
	s.MutateCells(0, rng)
	for ti := 0; ti < 4; ti++ {
		require.Equal(t, before.Row(ti), s.Row(ti))
	}
}

func TestMutateCells_FullRateFlipsEverything(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	s := assign.New(3, 3)
	before := s.Clone()
	s.MutateCells(1, rng)
	for ti := 0; ti < 3; ti++ {
		for c := 0; c < 3; c++ {
			require.NotEqual(t, before.Get(ti, c), s.Get(ti, c))
		}
	}
}
