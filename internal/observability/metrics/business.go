package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Inventory gauges are refreshed by the worker; engagement counters are
// incremented by the API as readers view articles and see or click ads.
var (
	ArticlesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Articles by lifecycle status",
		},
		[]string{"status"},
	)

	CategoriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "categories_total",
			Help: "Categories defined",
		},
	)

	ServableAds = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ads_servable",
			Help: "Active ads inside their date window, by position",
		},
		[]string{"position"},
	)

	ArticleViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_views_total",
			Help: "Article views recorded",
		},
	)

	AdClicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ad_clicks_total",
			Help: "Ad clicks recorded",
		},
	)

	AdImpressionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ad_impressions_total",
			Help: "Ad impressions by outcome",
		},
		[]string{"result"}, // recorded, dropped, failed
	)

	ImpressionQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ad_impression_queue_depth",
			Help: "Impression batches waiting to be written",
		},
	)

	SlugConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slug_conflicts_total",
			Help: "Writes rejected because the slug was taken",
		},
		[]string{"entity"},
	)
)

// UpdateArticlesByStatus sets one gauge per status; statuses missing from
// counts are set to zero.
func UpdateArticlesByStatus(counts map[string]int64, statuses []string) {
	for _, st := range statuses {
		ArticlesByStatus.WithLabelValues(st).Set(float64(counts[st]))
	}
}

func UpdateCategoriesTotal(count int64) {
	CategoriesTotal.Set(float64(count))
}

// UpdateServableAds sets one gauge per position, zero when absent.
func UpdateServableAds(counts map[string]int64, positions []string) {
	for _, p := range positions {
		ServableAds.WithLabelValues(p).Set(float64(counts[p]))
	}
}

func RecordArticleView() { ArticleViewsTotal.Inc() }
func RecordAdClick()     { AdClicksTotal.Inc() }

// RecordImpressions adds n impressions under result. n <= 0 is ignored.
func RecordImpressions(result string, n int) {
	if n > 0 {
		AdImpressionsTotal.WithLabelValues(result).Add(float64(n))
	}
}

func SetImpressionQueueDepth(n int) {
	ImpressionQueueDepth.Set(float64(n))
}

// RecordSlugConflict is called with "article" or "category".
func RecordSlugConflict(entity string) {
	SlugConflictsTotal.WithLabelValues(entity).Inc()
}
