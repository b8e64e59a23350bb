package jobs

import (
	"context"
	"time"

	"skyfare/voyager/internal/db/repositories"
	"skyfare/voyager/internal/logging"
	"skyfare/voyager/internal/metrics"
)

// FlightCompletionJob periodically marks scheduled flights whose departure
// has passed as completed. The search core never mutates flight status; this
// job is the only writer and runs outside any search request.
type FlightCompletionJob struct {
	flights *repositories.FlightRepository
	metrics *metrics.MetricsRegistry
}

// NewFlightCompletionJob creates a new flight completion job instance
func NewFlightCompletionJob(flights *repositories.FlightRepository, metricsReg *metrics.MetricsRegistry) *FlightCompletionJob {
	return &FlightCompletionJob{
		flights: flights,
		metrics: metricsReg,
	}
}

// Run executes one completion pass.
func (j *FlightCompletionJob) Run(ctx context.Context) error {
	start := time.Now()

	completed, err := j.flights.MarkDepartedCompleted(ctx, start)
	if err != nil {
		logging.Error("Flight completion pass failed", "error", err.Error())
		return err
	}

	if j.metrics != nil {
		j.metrics.FlightsCompletedTotal.Add(float64(completed))
		j.metrics.CompletionJobDuration.Observe(time.Since(start).Seconds())
	}

	logging.Info("Flight completion pass finished",
		"completed", completed,
		"duration", time.Since(start).Truncate(time.Millisecond).String(),
	)
	return nil
}

// RunScheduled runs the job immediately and then on every tick until the
// context is cancelled.
func (j *FlightCompletionJob) RunScheduled(ctx context.Context, interval time.Duration) {
	if err := j.Run(ctx); err != nil {
		logging.Error("Initial flight completion run failed", "error", err.Error())
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Flight completion job stopped")
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Error("Scheduled flight completion run failed", "error", err.Error())
			}
		}
	}
}
