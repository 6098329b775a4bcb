package evolve

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"taevo/internal/agent"
	"taevo/internal/assign"
	"taevo/internal/dataset"
	"taevo/internal/objective"
	"taevo/internal/pareto"
	"taevo/internal/population"
)

// Solver — цикл эволюции: случайный выбор агента, применение к выборке из
// популяции, вставка результата, периодическая Pareto-чистка и статусные
// записи (spec.md § 4.5).
type Solver struct {
	Cfg      Config
	Rng      *rand.Rand
	Reporter Reporter
}

// New возвращает новый солвер с валидацией конфигурации и инициализированным
// генератором случайных чисел.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: rng, Reporter: noopReporter{}}, nil
}

// Run запускает цикл до истечения TimeLimitSeconds или отмены ctx, начиная с
// populaton из единственного seed-решения. Возвращает итоговый (прочищенный)
// фронт — population.Store, в котором остались только взаимно
// недоминируемые решения.
func (s *Solver) Run(ctx context.Context, tables *dataset.Tables, seed *assign.Solution) (*population.Store, error) {
	start := time.Now()

	if err := tables.Validate(); err != nil {
		return nil, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return nil, err
	}
	if s.Rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	reporter := s.Reporter
	if reporter == nil {
		reporter = noopReporter{}
	}

	scorer, err := objective.NewScorer(tables)
	if err != nil {
		return nil, err
	}

	store := population.New(scorer)
	if _, err := store.Insert(seed); err != nil {
		return nil, err
	}

	agents := agent.Registry()
	deadline := time.Duration(s.Cfg.TimeLimitSeconds) * time.Second

	iteration := 0
	for {
		if err := ctx.Err(); err != nil {
			pareto.Prune(store)
			return store, err
		}
		if time.Since(start) >= deadline {
			break
		}

		a := agents[s.Rng.Intn(len(agents))]
		inputs, err := store.RandomSample(a.K, s.Rng)
		if err != nil {
			return nil, err
		}

		agentStart := time.Now()
		candidate := a.Apply(tables, inputs, s.Rng)
		reporter.AgentInvoked(a.Name, time.Since(agentStart))

		if _, err := store.Insert(candidate); err != nil {
			return nil, err
		}
		iteration++

		if iteration%s.Cfg.PruneEvery == 0 {
			pareto.Prune(store)
		}
		if iteration%s.Cfg.StatusEvery == 0 {
			pareto.Prune(store)
			reporter.Status(StatusRecord{
				Iteration:      iteration,
				PopulationSize: store.Size(),
				Elapsed:        time.Since(start),
				Evaluations:    store.Evaluations(),
			})
		}
	}

	pareto.Prune(store)
	reporter.Status(StatusRecord{
		Iteration:      iteration,
		PopulationSize: store.Size(),
		Elapsed:        time.Since(start),
		Evaluations:    store.Evaluations(),
	})
	return store, nil
}
