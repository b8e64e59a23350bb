package jobs

import (
	"context"
	"time"

	"skyfare/voyager/internal/db/repositories"
	"skyfare/voyager/internal/metrics"
)

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	flights *repositories.FlightRepository,
	metricsReg *metrics.MetricsRegistry,
) *FlightCompletionJob {
	completionJob := NewFlightCompletionJob(flights, metricsReg)

	// Completion lags departure by at most one interval, which the search
	// core tolerates since it filters on status defensively anyway.
	go completionJob.RunScheduled(ctx, 5*time.Minute)

	return completionJob
}
