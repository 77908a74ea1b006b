package jobs

import (
	"context"
	"log/slog"

	"kurir/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SettlementReconciliationJob periodically snapshots the outstanding money
// position so unremitted COD and unreimbursed floats surface in the logs
// before they surface in an argument with a courier.
type SettlementReconciliationJob struct {
	handler queries.GetSettlementReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSettlementReconciliationJob creates the hourly reconciliation job.
func NewSettlementReconciliationJob(
	handler queries.GetSettlementReportQueryHandler,
	logger *slog.Logger,
) *SettlementReconciliationJob {
	return &SettlementReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "settlement_reconciliation_job"),
	}
}

// Start schedules the job to run at the top of every hour.
func (j *SettlementReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement reconciliation job started (running hourly)")
	return nil
}

// Stop stops the reconciliation job.
func (j *SettlementReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement reconciliation job stopped")
}

func (j *SettlementReconciliationJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetSettlementReportQuery(nil, nil, nil)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement reconciliation query is invalid", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement reconciliation failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Settlement position",
		"totalOngkir", report.TotalOngkir,
		"unpaidNonCodOngkir", report.UnpaidNonCodOngkir,
		"outstandingCod", report.OutstandingCOD,
		"outstandingTalangan", report.OutstandingTalangan,
	)

	if report.OutstandingCOD > 0 || report.OutstandingTalangan > 0 {
		j.logger.WarnContext(ctx, "Outstanding courier liabilities",
			"outstandingCod", report.OutstandingCOD,
			"outstandingTalangan", report.OutstandingTalangan,
		)
	}
}
