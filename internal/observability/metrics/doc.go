// Package metrics holds the Prometheus collectors shared by the API and the
// worker. Everything registers with the default registry on import and is
// served from /metrics.
//
//	metrics.RecordArticleView()
//	metrics.RecordImpressions("recorded", len(batch))
package metrics
