// Команда taevo запускает многокритериальный эволюционный цикл назначения
// ассистентов преподавателя на секции (spec.md).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taevo",
	Short: "Многокритериальная эволюция назначений TA на секции",
	Long: `taevo подбирает назначения ассистентов преподавателя (TA) на секции
курса методом популяционного локального поиска: агенты преобразования
решений применяются к случайным выборкам из популяции, а решения,
доминируемые по пяти штрафным критериям, отбрасываются.`,
}

func main() {
	rootCmd.AddCommand(runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}
