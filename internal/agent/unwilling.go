package agent

import (
	"math/rand"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

type move struct {
	ta, from, to int
}

// UnwillingMinimizer: для каждого unwilling-назначения перемещает TA на его
// первую (по возрастанию индекса секции) preferred-секцию, если такая есть;
// иначе на первую willing-секцию; иначе оставляет как есть. Целевые секции
// определяются по снимку предпочтений TA, не по изменяющемуся решению —
// несколько unwilling-назначений одного TA могут сойтись в одну и ту же
// целевую секцию.
func UnwillingMinimizer(tables *dataset.Tables, inputs []*assign.Solution, rng *rand.Rand) *assign.Solution {
	sol := inputs[0]
	T, S := tables.NumTAs(), tables.NumSections()

	var moves []move
	for t := 0; t < T; t++ {
		for s := 0; s < S; s++ {
			if sol.Get(t, s) == 1 && tables.TAs[t].Prefs[s] == dataset.PrefUnwilling {
				moves = append(moves, move{ta: t, from: s})
			}
		}
	}

	for i, m := range moves {
		target := -1
		for s := 0; s < S; s++ {
			if tables.TAs[m.ta].Prefs[s] == dataset.PrefPreferred {
				target = s
				break
			}
		}
		if target < 0 {
			for s := 0; s < S; s++ {
				if tables.TAs[m.ta].Prefs[s] == dataset.PrefWilling {
					target = s
					break
				}
			}
		}
		moves[i].to = target
	}

	for _, m := range moves {
		if m.to < 0 {
			continue
		}
		sol.Set(m.ta, m.from, 0)
		sol.Set(m.ta, m.to, 1)
	}

	return sol
}
