// Package pareto реализует движок Pareto-доминирования: predicate Dominates
// и операцию Prune, убирающую из популяции все доминируемые записи
// (spec.md § 4.4).
package pareto

import (
	"taevo/internal/objective"
	"taevo/internal/population"
)

// Dominates сообщает, доминирует ли p над q: p не хуже q по каждому из пяти
// штрафов и строго лучше по хотя бы одному. Эквивалентно: min(q-p) >= 0 и
// max(q-p) > 0.
func Dominates(p, q objective.Evaluation) bool {
	minDiff := q[0] - p[0]
	maxDiff := minDiff
	for i := 1; i < len(p); i++ {
		d := q[i] - p[i]
		if d < minDiff {
			minDiff = d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	return minDiff >= 0 && maxDiff > 0
}

// Prune удаляет из st все записи, доминируемые хотя бы одной другой
// записью, оставляя ровно недоминируемый фронт. Парный перебор O(n²);
// популяция остаётся малой (десятки-сотни записей), поскольку pruning
// вызывается часто, так что квадратичная сложность не является проблемой
// (spec.md § 4.4).
//
// Prune(Prune(st)) == Prune(st): повторный вызов на уже-недоминируемой
// популяции не удаляет ничего, поскольку Dominates иррефлексивна и ни одна
// из оставшихся записей не доминирует другую.
func Prune(st *population.Store) {
	evals := st.Evaluations()
	keep := make(map[objective.Evaluation]bool, len(evals))
	for _, q := range evals {
		dominated := false
		for _, p := range evals {
			if p == q {
				continue
			}
			if Dominates(p, q) {
				dominated = true
				break
			}
		}
		keep[q] = !dominated
	}
	st.Keep(keep)
}
