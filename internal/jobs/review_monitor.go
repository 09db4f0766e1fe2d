package jobs

import (
	"context"
	"log/slog"
	"time"

	"advisorqa/internal/logging"
	"advisorqa/internal/metrics"
	"advisorqa/internal/store"
)

// ReviewMonitor periodically measures the advisor review queue, publishes its
// depth as a metric and warns when it grows past the alert threshold.
type ReviewMonitor struct {
	store     store.Store
	interval  time.Duration
	threshold int
	log       *slog.Logger
}

// NewReviewMonitor creates a new review queue monitor. A threshold of zero
// disables the warning.
func NewReviewMonitor(st store.Store, interval time.Duration, threshold int) *ReviewMonitor {
	return &ReviewMonitor{
		store:     st,
		interval:  interval,
		threshold: threshold,
		log:       logging.ForComponent(logging.CompJobs),
	}
}

// Start runs the monitor loop until ctx is cancelled.
func (m *ReviewMonitor) Start(ctx context.Context) {
	m.log.Info("review monitor started", slog.Duration("interval", m.interval), slog.Int("alert_threshold", m.threshold))

	// Run immediately on start
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("review monitor stopped")
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check returns the queue depth, or -1 when the store could not be read.
func (m *ReviewMonitor) check(ctx context.Context) int {
	questions, err := m.store.GetQuestionsForReview(ctx)
	if err != nil {
		m.log.Error("failed to read review queue", slog.String("error", err.Error()))
		return -1
	}

	depth := len(questions)
	metrics.SetReviewQueueDepth(depth)

	if m.threshold > 0 && depth >= m.threshold {
		oldest := questions[0].CreatedAt
		m.log.Warn("review queue above threshold",
			slog.Int("depth", depth),
			slog.Int("threshold", m.threshold),
			slog.Duration("oldest_age", time.Since(oldest).Round(time.Second)))
	}
	return depth
}
