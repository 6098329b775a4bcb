package telemetry_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"taevo/internal/evolve"
	"taevo/internal/objective"
	"taevo/internal/telemetry"
)

func TestReporter_AgentInvoked_IncrementsCounters(t *testing.T) {
	r := telemetry.NewReporter()

	before := testutil.ToFloat64(telemetry.IterationsTotal)
	r.AgentInvoked("shuffle", 5*time.Millisecond)
	require.Equal(t, before+1, testutil.ToFloat64(telemetry.IterationsTotal))

	count := testutil.ToFloat64(telemetry.AgentInvocationsTotal.WithLabelValues("shuffle"))
	require.GreaterOrEqual(t, count, 1.0)
}

func TestReporter_Status_SetsPopulationGauge(t *testing.T) {
	r := telemetry.NewReporter()
	r.Status(evolve.StatusRecord{
		Iteration:      10,
		PopulationSize: 3,
		Elapsed:        time.Second,
		Evaluations:    []objective.Evaluation{{0, 0, 0, 0, 0}},
	})
	require.Equal(t, 3.0, testutil.ToFloat64(telemetry.PopulationSize))
}
