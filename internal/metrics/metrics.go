package metrics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "agridash"

// Counter reports the number of rows in one table.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Collector exposes prediction and rule-engine counters plus row-count gauges.
// A nil *Collector is valid and records nothing.
type Collector struct {
	tables map[string]Counter

	rows              *prometheus.GaugeVec
	predictions       *prometheus.CounterVec
	predictionLatency *prometheus.HistogramVec
	fallbacks         prometheus.Counter
	recommendations   *prometheus.CounterVec
	modelAvailable    prometheus.Gauge
}

func New(tables map[string]Counter) *Collector {
	c := &Collector{tables: tables}

	c.rows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rows",
		Help:      "Stored rows per table, refreshed on scrape",
	}, []string{"table"})

	c.predictions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Fertilizer predictions by algorithm and outcome (ok, invalid, unavailable, error)",
	}, []string{"algorithm", "outcome"})

	c.predictionLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Time spent scaling and classifying one request",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"algorithm"})

	c.fallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prediction_fallbacks_total",
		Help:      "Predicted class indices outside the fertilizer table",
	})

	c.recommendations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "soil_recommendations_total",
		Help:      "Rule engine results by status",
	}, []string{"status"})

	c.modelAvailable = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "model_available",
		Help:      "1 when the fertilizer model loaded at startup",
	})

	return c
}

func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		c.rows,
		c.predictions,
		c.predictionLatency,
		c.fallbacks,
		c.recommendations,
		c.modelAvailable,
	)
}

// Refresh recomputes the row gauges (call on each scrape).
func (c *Collector) Refresh(ctx context.Context) error {
	if c == nil {
		return nil
	}

	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err := c.tables[name].Count(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", name, err)
		}
		c.rows.WithLabelValues(name).Set(float64(n))
	}
	return nil
}

func (c *Collector) ObservePrediction(algorithm, outcome string, took time.Duration) {
	if c == nil {
		return
	}
	c.predictions.WithLabelValues(algorithm, outcome).Inc()
	if outcome == "ok" {
		c.predictionLatency.WithLabelValues(algorithm).Observe(took.Seconds())
	}
}

func (c *Collector) ObserveFallback() {
	if c == nil {
		return
	}
	c.fallbacks.Inc()
}

func (c *Collector) ObserveRecommendation(status string) {
	if c == nil {
		return
	}
	c.recommendations.WithLabelValues(status).Inc()
}

func (c *Collector) SetModelAvailable(ok bool) {
	if c == nil {
		return
	}
	if ok {
		c.modelAvailable.Set(1)
	} else {
		c.modelAvailable.Set(0)
	}
}
