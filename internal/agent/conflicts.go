package agent

import (
	"math/rand"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

// ConflictsMinimizer группирует назначения каждого TA по daytime; для
// каждого повторяющегося слота сохраняет ровно одно назначение (первое по
// порядку секций) и снимает остальные.
func ConflictsMinimizer(tables *dataset.Tables, inputs []*assign.Solution, rng *rand.Rand) *assign.Solution {
	sol := inputs[0]
	S := tables.NumSections()

	seen := make(map[string]bool, S)
	for t := 0; t < tables.NumTAs(); t++ {
		for k := range seen {
			delete(seen, k)
		}
		for s, sec := range tables.Sections {
			if sol.Get(t, s) != 1 {
				continue
			}
			if seen[sec.Daytime] {
				sol.Set(t, s, 0)
				continue
			}
			seen[sec.Daytime] = true
		}
	}

	return sol
}
