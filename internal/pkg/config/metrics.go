package config

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConfigMetrics tracks how a component's configuration was loaded.
//
//	{component}_config_load_timestamp
//	{component}_config_fallbacks_total{field}
//	{component}_config_fallback_active
//
// NewConfigMetrics registers with the default registry, so call it once
// per component name.
type ConfigMetrics struct {
	LoadTimestamp  prometheus.Gauge
	FallbacksTotal *prometheus.CounterVec
	FallbackActive prometheus.Gauge
}

// NewConfigMetrics creates and registers the metrics for componentName.
func NewConfigMetrics(componentName string) *ConfigMetrics {
	return NewConfigMetricsWith(prometheus.DefaultRegisterer, componentName)
}

// NewConfigMetricsWith registers the metrics with reg. Tests pass a fresh
// prometheus.NewRegistry().
func NewConfigMetricsWith(reg prometheus.Registerer, componentName string) *ConfigMetrics {
	factory := promauto.With(reg)
	return &ConfigMetrics{
		LoadTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_load_timestamp", componentName),
			Help: fmt.Sprintf("Unix timestamp of last %s configuration load", componentName),
		}),
		FallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_config_fallbacks_total", componentName),
			Help: fmt.Sprintf("Total number of %s settings replaced by their default", componentName),
		}, []string{"field"}),
		FallbackActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_fallback_active", componentName),
			Help: fmt.Sprintf("1 if any %s setting currently uses its fallback, 0 otherwise", componentName),
		}),
	}
}

// RecordFallback counts one setting replaced by its default.
func (m *ConfigMetrics) RecordFallback(field string) {
	m.FallbacksTotal.WithLabelValues(field).Inc()
}

// RecordLoad stamps the load time and whether any fallback is in effect.
func (m *ConfigMetrics) RecordLoad(fallbackActive bool) {
	m.LoadTimestamp.SetToCurrentTime()
	if fallbackActive {
		m.FallbackActive.Set(1)
	} else {
		m.FallbackActive.Set(0)
	}
}
