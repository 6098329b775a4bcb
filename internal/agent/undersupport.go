package agent

import (
	"math/rand"
	"sort"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

// orderedSet — ascending []int с O(n) удалением, сохраняющим порядок
// оставшихся элементов. Используется для overallocated/underallocated
// списков секций, которые усыхают по ходу работы агента.
type orderedSet struct{ vals []int }

func newOrderedSet(vals []int) *orderedSet {
	cp := make([]int, len(vals))
	copy(cp, vals)
	return &orderedSet{vals: cp}
}

func (o *orderedSet) remove(v int) {
	for i, x := range o.vals {
		if x == v {
			o.vals = append(o.vals[:i], o.vals[i+1:]...)
			return
		}
	}
}

func (o *orderedSet) len() int { return len(o.vals) }

func (o *orderedSet) first() int { return o.vals[0] }

// firstWhere возвращает первый элемент для которого pred(v) истинно, и true;
// иначе 0, false.
func (o *orderedSet) firstWhere(pred func(int) bool) (int, bool) {
	for _, v := range o.vals {
		if pred(v) {
			return v, true
		}
	}
	return 0, false
}

// UndersupportMinimizer перемещает "свободных" TA — незанятых, либо
// назначенных на unwilling-секцию, либо назначенных на переполненную
// секцию, и сами не перегруженные — в недоукомплектованные секции,
// предпочитая секции, которые TA отметил как preferred. За один проход на
// каждую недоукомплектованную целевую секцию перемещается не более одного
// TA.
//
// Поведение сохраняет буквальную семантику original_source: TA, у которого
// вообще нет текущего назначения, попадает в список "свободных", но
// фактическое перемещение происходит только если у него есть хотя бы одно
// текущее назначение для снятия — иначе проход для этого TA не делает
// ничего (см. DESIGN.md, раздел об undersupport_minimizer).
func UndersupportMinimizer(tables *dataset.Tables, inputs []*assign.Solution, rng *rand.Rand) *assign.Solution {
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

	var overVals, underVals []int
	for s := 0; s < S; s++ {
		if tasPerSection[s] > tables.Sections[s].MinTA {
			overVals = append(overVals, s)
		}
		if tasPerSection[s] < tables.Sections[s].MinTA {
			underVals = append(underVals, s)
		}
	}
	overallocatedSections := newOrderedSet(overVals)
	underallocated := newOrderedSet(underVals)

	overallocatedTAs := make(map[int]bool, T)
	for t := 0; t < T; t++ {
		if sectionsPerTA[t] > tables.TAs[t].MaxAssigned {
			overallocatedTAs[t] = true
		}
	}

	availableSet := make(map[int]bool, T)
	for t := 0; t < T; t++ {
		if sectionsPerTA[t] == 0 {
			availableSet[t] = true
			continue
		}
		for s := 0; s < S; s++ {
			if sol.Get(t, s) != 1 {
				continue
			}
			if tables.TAs[t].Prefs[s] == dataset.PrefUnwilling {
				availableSet[t] = true
				break
			}
		}
		if availableSet[t] {
			continue
		}
		for _, s := range overVals {
			if sol.Get(t, s) == 1 {
				availableSet[t] = true
				break
			}
		}
	}

	availableTAs := make([]int, 0, len(availableSet))
	for t := range availableSet {
		availableTAs = append(availableTAs, t)
	}
	sort.Ints(availableTAs)

	for _, t := range availableTAs {
		if overallocatedTAs[t] || underallocated.len() == 0 {
			continue
		}

		preferred := func(s int) bool { return tables.TAs[t].Prefs[s] == dataset.PrefPreferred }
		target, ok := underallocated.firstWhere(preferred)
		if !ok {
			target = underallocated.first()
		}

		assignedSection := -1
		for s := 0; s < S; s++ {
			if sol.Get(t, s) == 1 {
				assignedSection = s
				break
			}
		}
		if assignedSection < 0 {
			continue
		}

		sol.Set(t, assignedSection, 0)
		tasPerSection[assignedSection]--
		if tasPerSection[assignedSection] == tables.Sections[assignedSection].MinTA {
			overallocatedSections.remove(assignedSection)
		}

		sol.Set(t, target, 1)
		tasPerSection[target]++
		underallocated.remove(target)
	}

	return sol
}
