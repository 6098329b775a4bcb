package agent

import (
	"math/rand"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

const (
	mutateRateMin = 0.1
	mutateRateMax = 0.3
)

// Mutate выбирает частоту мутации r равномерно из [0.1, 0.3] и независимо
// инвертирует каждую ячейку с вероятностью r.
func Mutate(tables *dataset.Tables, inputs []*assign.Solution, rng *rand.Rand) *assign.Solution {
	sol := inputs[0]
	rate := mutateRateMin + rng.Float64()*(mutateRateMax-mutateRateMin)
	sol.MutateCells(rate, rng)
	return sol
}
