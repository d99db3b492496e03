package jobs

import (
	"context"
	"log/slog"

	"linenflow/internal/core/application/projections"

	"github.com/robfig/cron/v3"
)

// reconciliationSchedule runs the sweep every five seconds. The change-feed
// consumer usually recomputes sooner; the sweep is the safety net that
// repairs projections after missed events or partial settlement failures.
const reconciliationSchedule = "*/5 * * * * *"

// ReconciliationJob periodically recomputes every pickup projection from the
// order collection.
type ReconciliationJob struct {
	recomputer *projections.Recomputer
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewReconciliationJob creates the periodic reconciliation sweep.
func NewReconciliationJob(recomputer *projections.Recomputer, logger *slog.Logger) *ReconciliationJob {
	return &ReconciliationJob{
		recomputer: recomputer,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "reconciliation_job"),
	}
}

// Start begins the reconciliation sweep.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(reconciliationSchedule, func() {
		ctx := context.Background()

		if err := j.recomputer.Recompute(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Reconciliation sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started (running every five seconds)")
	return nil
}

// Stop stops the reconciliation sweep.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
