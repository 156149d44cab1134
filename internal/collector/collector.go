package collector

import (
	"context"

	"github.com/povarna/fac-evaluator/internal/models"
)

// MetricCollector is the plugin lifecycle the evaluation harness drives.
// SetUp starts a fresh run, RegisterMeasurement is called once per
// evaluated query, and ReportResults is read after the run completes.
type MetricCollector interface {
	SetUp()
	PrepareForMeasurement(spec models.QuerySpecification)
	RegisterMeasurement(ctx context.Context, spec models.QuerySpecification, response models.AgentResponse)
	TearDown()
	CollectedMetricNames() []string
	ReportResults() map[string]float64
}
