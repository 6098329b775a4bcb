package evolve

import (
	"time"

	"taevo/internal/objective"
)

// StatusRecord — снимок состояния цикла, эмитится каждые Config.StatusEvery
// итераций (spec.md § 4.5, шаг 6).
type StatusRecord struct {
	Iteration      int
	PopulationSize int
	Elapsed        time.Duration
	Evaluations    []objective.Evaluation
}

// Reporter получает наблюдаемые события цикла эволюции. Реализуется пакетом
// telemetry (логирование, метрики); Run работает корректно и без Reporter.
type Reporter interface {
	Status(rec StatusRecord)
	AgentInvoked(name string, dur time.Duration)
}

type noopReporter struct{}

func (noopReporter) Status(StatusRecord)                {}
func (noopReporter) AgentInvoked(string, time.Duration) {}
