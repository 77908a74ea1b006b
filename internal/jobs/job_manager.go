package jobs

import (
	"fmt"
	"log/slog"

	"kurir/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementReconciliationJob *SettlementReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	settlementReportHandler queries.GetSettlementReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementReconciliationJob: NewSettlementReconciliationJob(settlementReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementReconciliationJob.Stop()
}
