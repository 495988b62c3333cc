package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSent    = "sent"
	resultFailed  = "failed"
	resultPanic   = "panic"
	resultSkipped = "skipped"
)

var (
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_notifications_total",
			Help: "Order notification attempts by stage and result",
		},
		[]string{"stage", "result"},
	)

	NotificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_notification_duration_seconds",
			Help:    "Time spent delivering one order notification",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	NotificationsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_notifications_in_flight",
			Help: "Detached order notifications not finished yet",
		},
	)
)
