package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "console_backend_request_duration_seconds",
		Help:    "Duration of calls to the association REST backend.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route", "status"},
	)

	BatchItemsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_batch_items_created_total",
		Help: "Equipment items created through batch creation.",
	})

	BatchItemsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_batch_items_failed_total",
		Help: "Equipment items that failed during batch creation.",
	})

	ValidationRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "console_validation_rejections_total",
		Help: "Form submissions rejected by local validation.",
	},
		[]string{"form"},
	)

	SessionsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "console_sessions_completed_total",
		Help: "General-assembly sessions completed through the wizard.",
	})

	DomainEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "console_domain_events_total",
		Help: "Domain events published on the event bus.",
	},
		[]string{"event"},
	)
)
