package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Bot metrics
var (
	BotUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Total number of Telegram updates handled, by kind.",
		},
		[]string{"kind"},
	)
)

// Use case metrics
var (
	SubscriptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usecase_subscriptions_total",
			Help: "Total number of use case subscriptions, by use case and outcome.",
		},
		[]string{"use_case", "result"},
	)

	SubscriptionsInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "usecase_subscriptions_in_flight",
			Help: "Number of use case subscriptions currently running.",
		},
		[]string{"use_case"},
	)
)

func init() {
	prometheus.MustRegister(
		BotUpdatesTotal,
		SubscriptionsTotal,
		SubscriptionsInFlight,
	)
}
