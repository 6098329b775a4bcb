// Package objective реализует пять оценщиков целевой функции и канонический
// тип Evaluation (spec.md § 4.1, § 3).
package objective

import (
	"fmt"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

// Name — каноническое имя одной из пяти целевых функций.
type Name string

const (
	Overallocation Name = "overallocation"
	Conflicts      Name = "conflicts"
	Undersupport   Name = "undersupport"
	Unwilling      Name = "unwilling"
	Unpreferred    Name = "unpreferred"
)

// Order — фиксированный канонический порядок целевых функций
// (spec.md § 3 "Evaluation tuple"). Evaluation-ключи Population Store
// сравниваются по этому порядку и только по нему.
var Order = [5]Name{Overallocation, Conflicts, Undersupport, Unwilling, Unpreferred}

// Evaluation — упорядоченный вектор из пяти целочисленных штрафов, в
// каноническом порядке Order. Сравнимый по значению — подходит как ключ map.
type Evaluation [5]int

// Score возвращает штраф по имени целевой функции.
func (e Evaluation) Score(name Name) int {
	for i, n := range Order {
		if n == name {
			return e[i]
		}
	}
	panic(fmt.Sprintf("неизвестное имя целевой функции %q", name))
}

// Scorer оценивает одно решение относительно заданных таблиц.
type Scorer struct {
	tables *dataset.Tables
}

// NewScorer возвращает Scorer для данных таблиц, предварительно проверив их
// через Tables.Validate.
func NewScorer(t *dataset.Tables) (*Scorer, error) {
	if t == nil {
		return nil, fmt.Errorf("таблицы не инициализированы (nil)")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{tables: t}, nil
}

// Evaluate вычисляет все пять штрафов решения X в каноническом порядке.
// Чистая функция: результат зависит только от X и таблиц (spec.md § 8,
// свойство 9 "Scoring is pure").
func (sc *Scorer) Evaluate(x *assign.Solution) (Evaluation, error) {
	if err := x.Validate(sc.tables.NumTAs(), sc.tables.NumSections()); err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		sc.Overallocation(x),
		sc.Conflicts(x),
		sc.Undersupport(x),
		sc.Unwilling(x),
		sc.Unpreferred(x),
	}, nil
}

// Overallocation: Σ_t max(0, assigned(t) - max_assigned[t]).
// Недогруз TA штрафа не несёт — считается только избыток сверх предела.
func (sc *Scorer) Overallocation(x *assign.Solution) int {
	total := 0
	for t, ta := range sc.tables.TAs {
		excess := x.AssignedCount(t) - ta.MaxAssigned
		if excess > 0 {
			total += excess
		}
	}
	return total
}

// Conflicts: число TA, у которых две или более назначенных секции делят один
// daytime. TA с тройным совпадением по времени считается за один конфликт, а
// не за три; TA с двумя разными парами совпадений — тоже за один. Формально:
// контрибуция TA равна 1, если в мультимножестве назначенных daytime есть
// хотя бы одно повторение, иначе 0.
func (sc *Scorer) Conflicts(x *assign.Solution) int {
	total := 0
	seen := make(map[string]bool, sc.tables.NumSections())
	for t := range sc.tables.TAs {
		for k := range seen {
			delete(seen, k)
		}
		conflicted := false
		for s, sec := range sc.tables.Sections {
			if x.Get(t, s) == 0 {
				continue
			}
			if seen[sec.Daytime] {
				conflicted = true
				continue
			}
			seen[sec.Daytime] = true
		}
		if conflicted {
			total++
		}
	}
	return total
}

// Undersupport: Σ_s max(0, min_ta[s] - staffed(s)). Избыток штрафа не несёт.
func (sc *Scorer) Undersupport(x *assign.Solution) int {
	total := 0
	for s, sec := range sc.tables.Sections {
		deficit := sec.MinTA - x.StaffedCount(s)
		if deficit > 0 {
			total += deficit
		}
	}
	return total
}

// Unwilling: число назначений (t,s) с X[t,s]=1 и pref[t,s]=U.
func (sc *Scorer) Unwilling(x *assign.Solution) int {
	return sc.countByPref(x, dataset.PrefUnwilling)
}

// Unpreferred: число назначений (t,s) с X[t,s]=1 и pref[t,s]=W.
// P-назначения бесплатны; U учитывается в Unwilling, W — здесь; множества не
// пересекаются.
func (sc *Scorer) Unpreferred(x *assign.Solution) int {
	return sc.countByPref(x, dataset.PrefWilling)
}

func (sc *Scorer) countByPref(x *assign.Solution, want dataset.Pref) int {
	total := 0
	for t, ta := range sc.tables.TAs {
		row := x.Row(t)
		for s, v := range row {
			if v == 1 && ta.Prefs[s] == want {
				total++
			}
		}
	}
	return total
}
