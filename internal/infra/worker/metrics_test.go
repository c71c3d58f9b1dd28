package worker

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWorkerMetrics(t *testing.T) {
	m := NewWorkerMetricsWith(prometheus.NewRegistry())

	m.RecordJobRun("success")
	m.RecordJobRun("success")
	m.RecordJobRun("failure")
	m.RecordJobDuration(0.2)
	m.RecordLastSuccess()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRunsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.JobDurationSeconds))
	assert.Greater(t, testutil.ToFloat64(m.JobLastSuccessTimestamp), 0.0)
}

func TestNewWorkerMetrics_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWorkerMetricsWith(reg)

	assert.Panics(t, func() { NewWorkerMetricsWith(reg) }, "duplicate registration must panic")
}
