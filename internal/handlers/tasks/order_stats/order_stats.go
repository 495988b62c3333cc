package order_stats

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Option func(*OrderStats)

// WithGauge replaces the exported OrdersByState gauge.
func WithGauge(gauge *prometheus.GaugeVec) Option {
	return func(o *OrderStats) {
		o.gauge = gauge
	}
}

// OrderStats refreshes the orders_by_state gauge from the store.
type OrderStats struct {
	repository Repository
	interval   time.Duration
	gauge      *prometheus.GaugeVec
}

func NewOrderStats(repository Repository, interval time.Duration, opts ...Option) *OrderStats {
	o := &OrderStats{
		repository: repository,
		interval:   interval,
		gauge:      OrdersByState,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

// Do replaces every series, so states that no order holds anymore disappear.
func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.repository.CountByState(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count orders by state: %w", err)
	}

	o.gauge.Reset()
	for _, count := range counts {
		o.gauge.WithLabelValues(count.Status.String(), count.PaymentStatus.String()).Set(float64(count.Count))
	}

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
