package jobs_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportRefreshJob(t *testing.T) {
	job, err := jobs.NewReportRefreshJob(queries.GetOrderStatsQueryHandler{}, logging.New())

	require.NoError(t, err)
	assert.Nil(t, job.Latest(), "no report is published before the job runs")
}
