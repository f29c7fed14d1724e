package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// ReportRefreshJob periodically recomputes the all-time statistics report
// and publishes it for the live dashboard. The job only reads order data,
// it never changes order state.
type ReportRefreshJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	latest  atomic.Pointer[services.Report]
	system  kernel.Actor
}

// NewReportRefreshJob creates a new job recomputing the dashboard report
// every thirty seconds. The report is computed with full reporting access
// under a synthetic system principal.
func NewReportRefreshJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) (*ReportRefreshJob, error) {
	system, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleDeveloper, "report refresh")
	if err != nil {
		return nil, err
	}

	return &ReportRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "report_refresh_job"),
		system:  system,
	}, nil
}

// Start begins the report refresh job to run every thirty seconds. The
// first report is computed immediately so the dashboard does not wait a
// full interval after startup.
func (j *ReportRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.refresh(context.Background())
	})

	if err != nil {
		return err
	}

	j.refresh(context.Background())
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the report refresh job. The last published report stays
// available.
func (j *ReportRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Report refresh job stopped")
}

// Latest returns the most recently published report, or nil when no
// computation has succeeded yet.
func (j *ReportRefreshJob) Latest() *services.Report {
	return j.latest.Load()
}

func (j *ReportRefreshJob) refresh(ctx context.Context) {
	query, err := queries.NewGetOrderStatsQuery(services.WindowAll, j.system)
	if err != nil {
		j.logger.ErrorContext(ctx, "Report refresh query construction failed", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Report refresh failed", "error", err)
		return
	}

	j.latest.Store(&report)
}
