// Package population реализует Population Store: отображение вектора оценки
// (objective.Evaluation) на решение, породившее этот вектор (spec.md § 4.3).
package population

import (
	"fmt"
	"math/rand"
	"sort"

	"taevo/internal/assign"
	"taevo/internal/objective"
)

// Store — отображение eval → solution. Вставка решения с уже существующим
// eval заменяет прежнюю запись (last-writer-wins, spec.md § 4.3) — это
// допустимо, поскольку равные оценки неотличимы для движка доминирования.
type Store struct {
	scorer  *objective.Scorer
	entries map[objective.Evaluation]*assign.Solution
}

// New возвращает пустой Store, использующий scorer для оценки вставляемых
// решений.
func New(scorer *objective.Scorer) *Store {
	return &Store{
		scorer:  scorer,
		entries: make(map[objective.Evaluation]*assign.Solution),
	}
}

// Insert оценивает X, формирует канонический ключ и устанавливает
// eval → X, заменяя любую существующую запись с тем же eval. Возвращает
// получившийся eval.
func (st *Store) Insert(x *assign.Solution) (objective.Evaluation, error) {
	eval, err := st.scorer.Evaluate(x)
	if err != nil {
		return objective.Evaluation{}, fmt.Errorf("вставка в популяцию: %w", err)
	}
	st.entries[eval] = x
	return eval, nil
}

// RandomSample возвращает k независимых глубоких копий решений, выбранных
// равновероятно с повторением из текущей популяции. Вызов с пустой
// популяцией — программная ошибка (spec.md § 7 "Empty population"): цикл
// эволюции обязан гарантировать начальное решение до первого вызова агента.
//
// Порядок обхода map в Go не детерминирован между вызовами, поэтому пул
// строится по ключам eval, отсортированным лексикографически — иначе один
// и тот же rng-сид давал бы разные выборки в разных запусках процесса
// (spec.md § 8, свойство детерминированности при фиксированном сиде).
func (st *Store) RandomSample(k int, rng *rand.Rand) ([]*assign.Solution, error) {
	if len(st.entries) == 0 {
		return nil, fmt.Errorf("RandomSample вызван для пустой популяции (программная ошибка)")
	}
	evals := st.Evaluations()
	sort.Slice(evals, func(i, j int) bool { return lessEvaluation(evals[i], evals[j]) })

	pool := make([]*assign.Solution, len(evals))
	for i, e := range evals {
		pool[i] = st.entries[e]
	}

	out := make([]*assign.Solution, k)
	for i := 0; i < k; i++ {
		out[i] = pool[rng.Intn(len(pool))].Clone()
	}
	return out, nil
}

func lessEvaluation(a, b objective.Evaluation) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Size возвращает текущее число записей.
func (st *Store) Size() int { return len(st.entries) }

// Each вызывает f для каждой пары (eval, solution). Порядок не определён.
func (st *Store) Each(f func(eval objective.Evaluation, sol *assign.Solution)) {
	for eval, sol := range st.entries {
		f(eval, sol)
	}
}

// Evaluations возвращает срез всех текущих ключей оценки. Используется
// движком доминирования, которому не нужны сами решения.
func (st *Store) Evaluations() []objective.Evaluation {
	out := make([]objective.Evaluation, 0, len(st.entries))
	for eval := range st.entries {
		out = append(out, eval)
	}
	return out
}

// Keep оставляет в Store только записи с eval из keep, удаляя остальные.
// Используется движком доминирования после вычисления недоминируемого
// фронта.
func (st *Store) Keep(keep map[objective.Evaluation]bool) {
	for eval := range st.entries {
		if !keep[eval] {
			delete(st.entries, eval)
		}
	}
}
