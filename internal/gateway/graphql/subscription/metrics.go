package subscription

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubscriptionMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_messages_total",
			Help: "Total number of packageUpdated events received, by next or error",
		},
		[]string{"kind"},
	)

	SubscriptionReconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "subscription_reconnects_total",
			Help: "Total number of subscription connection attempts after the first",
		},
	)
)
