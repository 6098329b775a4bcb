package agent

import (
	"math/rand"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

const (
	shuffleRatioMin = 0.1
	shuffleRatioMax = 0.3
)

// Shuffle выбирает коэффициент r равномерно из [0.1, 0.3] и инвертирует
// ⌊r·T·S⌋ случайных ячеек без повторов.
func Shuffle(tables *dataset.Tables, inputs []*assign.Solution, rng *rand.Rand) *assign.Solution {
	sol := inputs[0]
	ratio := shuffleRatioMin + rng.Float64()*(shuffleRatioMax-shuffleRatioMin)
	count := int(float64(sol.Rows*sol.Cols) * ratio)
	sol.ShuffleCells(count, rng)
	return sol
}
