package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commission_service",
			Subsystem: "http",
			Name:      "orders_created_total",
			Help:      "Total number of orders created through the public form",
		},
	)

	statusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "commission_service",
			Subsystem: "http",
			Name:      "status_changes_total",
			Help:      "Total number of successful order status changes",
		},
		[]string{"status"},
	)
)
