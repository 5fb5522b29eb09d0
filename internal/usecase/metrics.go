package usecase

import "context"

// MetricsSummary represents aggregated login insights. Fail counts are the
// security-relevant signal; error counts are operational noise.
type MetricsSummary struct {
	TotalAttempts       int64   `json:"total_attempts"`
	SuccessfulLogins    int64   `json:"successful_logins"`
	FailedLogins        int64   `json:"failed_logins"`
	ErroredAttempts     int64   `json:"errored_attempts"`
	SuccessRate         float64 `json:"success_rate"`
	AverageBestDistance float64 `json:"average_best_distance"`
}

// GetMetricsSummary aggregates login metrics from persisted attempts.
func (e *MatchEngine) GetMetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	aggregation, err := e.audit.AggregateMetrics(ctx)
	if err != nil {
		return nil, err
	}

	summary := &MetricsSummary{
		TotalAttempts:       aggregation.TotalCount,
		SuccessfulLogins:    aggregation.SuccessCount,
		FailedLogins:        aggregation.FailCount,
		ErroredAttempts:     aggregation.ErrorCount,
		AverageBestDistance: aggregation.AverageBestDistance,
	}

	if aggregation.TotalCount > 0 {
		summary.SuccessRate = float64(aggregation.SuccessCount) / float64(aggregation.TotalCount)
	}

	return summary, nil
}
