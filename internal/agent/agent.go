// Package agent реализует семь агентов преобразования решений (spec.md
// § 4.2). Агенты представлены единым контрактом — именованная функция,
// принимающая k решений и возвращающая новое решение — вместо иерархии
// типов на каждого агента (spec.md § 9 "Agent interface as a tagged
// capability set").
package agent

import (
	"math/rand"

	"taevo/internal/assign"
	"taevo/internal/dataset"
)

// Func — контракт агента: чистая функция относительно популяции. Получает
// k глубоких копий текущих решений и возвращает одно новое решение.
// k=1 для всех агентов, определённых в этом пакете.
type Func func(tables *dataset.Tables, inputs []*assign.Solution, rng *rand.Rand) *assign.Solution

// Agent — именованный, зарегистрированный экземпляр Func вместе с числом
// входных решений, которое он ожидает.
type Agent struct {
	Name  string
	K     int
	Apply Func
}

// Registry возвращает все семь агентов в фиксированном порядке. Цикл
// эволюции выбирает из неё один агент равновероятно на каждой итерации
// (spec.md § 4.5 шаг 2); порядок здесь влияет только на тестируемость, не
// на семантику отбора.
func Registry() []Agent {
	return []Agent{
		{Name: "overallocation_minimizer", K: 1, Apply: OverallocationMinimizer},
		{Name: "conflicts_minimizer", K: 1, Apply: ConflictsMinimizer},
		{Name: "undersupport_minimizer", K: 1, Apply: UndersupportMinimizer},
		{Name: "unwilling_minimizer", K: 1, Apply: UnwillingMinimizer},
		{Name: "unpreferred_minimizer", K: 1, Apply: UnpreferredMinimizer},
		{Name: "shuffle", K: 1, Apply: Shuffle},
		{Name: "mutate", K: 1, Apply: Mutate},
	}
}
