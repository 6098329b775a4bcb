// Package report записывает недоминируемый фронт в CSV (spec.md § 6
// "Output"): одна строка на решение, столбцы — имя группы и пять целевых
// функций в каноническом порядке.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"taevo/internal/objective"
)

// Row — одна строка отчёта: имя группы прогона и вектор оценки решения,
// которое его породило.
type Row struct {
	GroupName string
	Eval      objective.Evaluation
}

// WriteCSV пишет rows в path с заголовком
// groupname,overallocation,conflicts,undersupport,unwilling,unpreferred.
// Создаёт родительский каталог при необходимости.
func WriteCSV(path string, rows []Row) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"groupname", "overallocation", "conflicts", "undersupport", "unwilling", "unpreferred"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			r.GroupName,
			strconv.Itoa(r.Eval.Score(objective.Overallocation)),
			strconv.Itoa(r.Eval.Score(objective.Conflicts)),
			strconv.Itoa(r.Eval.Score(objective.Undersupport)),
			strconv.Itoa(r.Eval.Score(objective.Unwilling)),
			strconv.Itoa(r.Eval.Score(objective.Unpreferred)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
