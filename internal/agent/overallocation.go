package agent

import (
	"math/rand"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

// OverallocationMinimizer: для каждого перегруженного TA снимает назначения
// в порядке приоритета — сперва секции, где TA unwilling, затем willing
// (и не preferred), затем секцию с наибольшим текущим числом TA среди
// оставшихся назначенных — пока число назначений TA не опустится до предела.
// При равенстве числа TA в секциях выбирается секция с наименьшим индексом
// (первое найденное при сканировании по возрастанию).
func OverallocationMinimizer(tables *dataset.Tables, inputs []*assign.Solution, rng *rand.Rand) *assign.Solution {
	sol := inputs[0]
	T, S := tables.NumTAs(), tables.NumSections()

	sectionsPerTA := make([]int, T)
	tasPerSection := make([]int, S)
	for t := 0; t < T; t++ {
		sectionsPerTA[t] = sol.AssignedCount(t)
	}
	for s := 0; s < S; s++ {
		tasPerSection[s] = sol.StaffedCount(s)
	}

	for t, ta := range tables.TAs {
		if sectionsPerTA[t] <= ta.MaxAssigned {
			continue
		}

		for s := 0; s < S && sectionsPerTA[t] > ta.MaxAssigned; s++ {
			if sol.Get(t, s) == 1 && ta.Prefs[s] == dataset.PrefUnwilling {
				sol.Set(t, s, 0)
				sectionsPerTA[t]--
				tasPerSection[s]--
			}
		}

		for s := 0; s < S && sectionsPerTA[t] > ta.MaxAssigned; s++ {
			if sol.Get(t, s) == 1 && ta.Prefs[s] == dataset.PrefWilling {
				sol.Set(t, s, 0)
				sectionsPerTA[t]--
				tasPerSection[s]--
			}
		}

		for sectionsPerTA[t] > ta.MaxAssigned {
			best := -1
			bestLoad := -1
			for s := 0; s < S; s++ {
				if sol.Get(t, s) != 1 {
					continue
				}
				if tasPerSection[s] > bestLoad {
					bestLoad = tasPerSection[s]
					best = s
				}
			}
			if best < 0 {
				break // не должно происходить: sectionsPerTA[t] согласован с фактическими назначениями
			}
			sol.Set(t, best, 0)
			sectionsPerTA[t]--
			tasPerSection[best]--
		}
	}

	return sol
}
