package pagination

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPageBucket(t *testing.T) {
	for page, want := range map[int]string{1: "1-10", 10: "1-10", 11: "11-50", 50: "11-50", 51: "51-100", 100: "51-100", 101: "100+"} {
		assert.Equal(t, want, pageBucket(page), "page %d", page)
	}
}

func TestObserveRequest(t *testing.T) {
	listRequests.Reset()

	ObserveRequest(200, 1)
	ObserveRequest(200, 3)
	ObserveRequest(200, 70)

	assert.Equal(t, 2.0, testutil.ToFloat64(listRequests.WithLabelValues("200", "1-10")))
	assert.Equal(t, 1.0, testutil.ToFloat64(listRequests.WithLabelValues("200", "51-100")))
}

func TestObserveDurationAndErrors(t *testing.T) {
	listDuration.Reset()
	listErrors.Reset()

	ObserveDuration("handler", 30*time.Millisecond)
	ObserveDuration("service", 10*time.Millisecond)
	CountError("database")
	SetPublishedTotal(42)

	assert.Equal(t, 2, testutil.CollectAndCount(listDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(listErrors.WithLabelValues("database")))
	assert.Equal(t, 42.0, testutil.ToFloat64(publishedTotal))
}
