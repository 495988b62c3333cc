package order_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrdersByState = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "orders_by_state",
		Help: "Number of stored orders per status and payment status",
	},
	[]string{"status", "payment_status"},
)
