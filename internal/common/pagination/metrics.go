package pagination

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_list_requests_total",
			Help: "Paginated article list requests by status and page bucket",
		},
		[]string{"status", "page_range"},
	)

	listDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "article_list_duration_seconds",
			Help:    "Time spent serving a paginated article list, by layer",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"layer"}, // handler, service
	)

	publishedTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "article_list_published_total",
			Help: "Published articles matching the last unfiltered listing",
		},
	)

	listErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_list_errors_total",
			Help: "Paginated article list failures by kind",
		},
		[]string{"kind"},
	)
)

// ObserveRequest counts one served listing.
func ObserveRequest(status, page int) {
	listRequests.WithLabelValues(strconv.Itoa(status), pageBucket(page)).Inc()
}

// ObserveDuration records how long layer took.
func ObserveDuration(layer string, d time.Duration) {
	listDuration.WithLabelValues(layer).Observe(d.Seconds())
}

// SetPublishedTotal updates the published article gauge.
func SetPublishedTotal(n int64) {
	publishedTotal.Set(float64(n))
}

// CountError counts a failed listing; kind is "database" or "timeout".
func CountError(kind string) {
	listErrors.WithLabelValues(kind).Inc()
}

// ページ番号は上限がないためバケットに丸める
func pageBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
