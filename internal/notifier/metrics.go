package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commission_service",
		Subsystem: "notifier",
		Name:      "deliveries_total",
		Help:      "Total number of delivered telegram messages by kind.",
	}, []string{"kind"})

	deliveryErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "commission_service",
		Subsystem: "notifier",
		Name:      "delivery_errors_total",
		Help:      "Total number of failed telegram deliveries.",
	})
)
