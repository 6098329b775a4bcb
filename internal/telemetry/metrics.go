package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"taevo/internal/evolve"
)

// Метрики цикла эволюции. Namespace/subsystem следуют схеме tutu
// (observability.go): <namespace>_<subsystem>_<name>.
var (
	IterationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "taevo",
		Subsystem: "evolve",
		Name:      "iterations_total",
		Help:      "Суммарное число итераций цикла эволюции.",
	})

	PopulationSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "taevo",
		Subsystem: "evolve",
		Name:      "population_size",
		Help:      "Текущий размер Population Store после последней чистки.",
	})

	AgentInvocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taevo",
		Subsystem: "agent",
		Name:      "invocations_total",
		Help:      "Число вызовов каждого агента преобразования решений.",
	}, []string{"agent"})

	AgentDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taevo",
		Subsystem: "agent",
		Name:      "duration_seconds",
		Help:      "Время выполнения одного вызова агента.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"agent"})
)

// Reporter реализует evolve.Reporter через логгер и метрики Prometheus.
type Reporter struct{}

// NewReporter возвращает Reporter, готовый к передаче в evolve.Solver.
func NewReporter() Reporter { return Reporter{} }

func (Reporter) AgentInvoked(name string, dur time.Duration) {
	IterationsTotal.Inc()
	AgentInvocationsTotal.WithLabelValues(name).Inc()
	AgentDurationSeconds.WithLabelValues(name).Observe(dur.Seconds())
}

func (Reporter) Status(rec evolve.StatusRecord) {
	PopulationSize.Set(float64(rec.PopulationSize))
	Logger().WithFields(logrus.Fields{
		"iteration":       rec.Iteration,
		"population_size": rec.PopulationSize,
		"elapsed":         rec.Elapsed.String(),
		"front_size":      len(rec.Evaluations),
		"evaluations":     rec.Evaluations,
	}).Info("evolve: статус")
}
