package evolve

import "fmt"

// Config — параметры запуска цикла эволюции (spec.md § 4.5, § 6).
type Config struct {
	// TimeLimitSeconds — бюджет времени стенки на весь прогон.
	TimeLimitSeconds int
	// PruneEvery — период (в итерациях), с которым выполняется Pareto-prune.
	PruneEvery int
	// StatusEvery — период (в итерациях), с которым эмитится статусная
	// запись (итерация, размер популяции, прошедшее время, текущие оценки).
	StatusEvery int
}

// DefaultConfig возвращает значения по умолчанию из spec.md § 4.5:
// prune_every=100, status_every=10000, time_limit_seconds=300.
func DefaultConfig() Config {
	return Config{
		TimeLimitSeconds: 300,
		PruneEvery:       100,
		StatusEvery:      10_000,
	}
}

func (c Config) Validate() error {
	if c.TimeLimitSeconds <= 0 {
		return fmt.Errorf("TimeLimitSeconds должно быть > 0 (получено %d)", c.TimeLimitSeconds)
	}
	if c.PruneEvery <= 0 {
		return fmt.Errorf("PruneEvery должно быть > 0 (получено %d)", c.PruneEvery)
	}
	if c.StatusEvery <= 0 {
		return fmt.Errorf("StatusEvery должно быть > 0 (получено %d)", c.StatusEvery)
	}
	return nil
}
