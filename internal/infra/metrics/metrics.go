package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lockerhub_reservation_operations_total",
		Help: "Reservation operations by operation and outcome category.",
	},
		[]string{"operation", "outcome"},
	)

	ReservationRevenueCents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lockerhub_reservation_revenue_cents_total",
		Help: "Accrued reservation cost in cents, initial and extensions.",
	})

	OTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lockerhub_otp_requests_total",
		Help: "OTP issuance requests by purpose and result (sent, throttled, error).",
	},
		[]string{"purpose", "result"},
	)

	OTPVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lockerhub_otp_verifications_total",
		Help: "OTP verification attempts by purpose and validity.",
	},
		[]string{"purpose", "valid"},
	)

	OTPPurgedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lockerhub_otp_purged_total",
		Help: "Expired verification codes deleted by the purge worker.",
	})

	TransactionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lockerhub_tx_failures_total",
		Help: "Failed unit-of-work transactions by class.",
	},
		[]string{"class"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lockerhub_events_published_total",
		Help: "Locker status events handed to the transport, by driver and result.",
	},
		[]string{"driver", "result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lockerhub_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route", "status"},
	)
)
