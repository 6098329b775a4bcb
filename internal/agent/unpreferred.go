package agent

import (
	"math/rand"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

// UnpreferredMinimizer: для каждого willing (не preferred) назначения
// перемещает TA на первую недоукомплектованную preferred-секцию, если такая
// существует для кого-либо из TA; иначе на первую секцию, которую этот TA
// отметил как preferred; иначе оставляет как есть. Список
// "недоукомплектованных preferred" секций и счётчик TA на секцию
// вычисляются один раз перед проходом и не пересчитываются для списка
// целевых секций (как в original_source), хотя счётчик назначений TA на
// секцию обновляется по ходу перемещений.
func UnpreferredMinimizer(tables *dataset.Tables, inputs []*assign.Solution, rng *rand.Rand) *assign.Solution {
	sol := inputs[0]
	T, S := tables.NumTAs(), tables.NumSections()

	tasPerSection := make([]int, S)
	for s := 0; s < S; s++ {
		tasPerSection[s] = sol.StaffedCount(s)
	}

	preferredBySomeone := make([]bool, S)
	for s := 0; s < S; s++ {
		for t := 0; t < T; t++ {
			if tables.TAs[t].Prefs[s] == dataset.PrefPreferred {
				preferredBySomeone[s] = true
				break
			}
		}
	}

	var undersupportedPreferred []int
	for s := 0; s < S; s++ {
		if preferredBySomeone[s] && tasPerSection[s] < tables.Sections[s].MinTA {
			undersupportedPreferred = append(undersupportedPreferred, s)
		}
	}

	type pair struct{ t, s int }
	var targets []pair
	for t := 0; t < T; t++ {
		for s := 0; s < S; s++ {
			if sol.Get(t, s) == 1 && tables.TAs[t].Prefs[s] == dataset.PrefWilling {
				targets = append(targets, pair{t, s})
			}
		}
	}

	for _, p := range targets {
		target := -1
		if len(undersupportedPreferred) > 0 {
			target = undersupportedPreferred[0]
		} else {
			for s := 0; s < S; s++ {
				if tables.TAs[p.t].Prefs[s] == dataset.PrefPreferred {
					target = s
					break
				}
			}
		}
		if target < 0 {
			continue
		}

		sol.Set(p.t, p.s, 0)
		sol.Set(p.t, target, 1)
		tasPerSection[p.s]--
		tasPerSection[target]++
	}

	return sol
}
