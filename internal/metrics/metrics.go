package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"advisorqa/internal/store"
)

var (
	questionStatusDesc = prometheus.NewDesc(
		"advisorqa_questions_logged",
		"Logged questions by current status",
		[]string{"status"},
		nil,
	)

	questionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisorqa_questions_total",
			Help: "Questions answered by outcome and confidence tier",
		},
		[]string{"status", "confidence"},
	)

	reviewQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisorqa_review_queue_depth",
			Help: "Questions waiting for advisor review at the last monitor run",
		},
	)
)

// QuestionCollector is a custom Prometheus collector that reads question
// counts by status from the store on each scrape.
type QuestionCollector struct {
	store store.Store
}

// Describe sends the metric descriptor to the channel.
func (c *QuestionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- questionStatusDesc
}

// Collect queries the store for question counts and emits them as gauges.
func (c *QuestionCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.store.CountQuestionsByStatus(context.Background())
	if err != nil {
		slog.Error("failed to collect question metrics", "error", err)
		return
	}
	for status, n := range counts {
		ch <- prometheus.MustNewConstMetric(
			questionStatusDesc,
			prometheus.GaugeValue,
			float64(n),
			status,
		)
	}
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init(st store.Store) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			&QuestionCollector{store: st},
			questionsTotal,
			reviewQueueDepth,
		)
	})
}

// RecordQuestion counts an answered question.
func RecordQuestion(status, confidence string) {
	questionsTotal.WithLabelValues(status, confidence).Inc()
}

// SetReviewQueueDepth publishes the current review queue size.
func SetReviewQueueDepth(n int) {
	reviewQueueDepth.Set(float64(n))
}
