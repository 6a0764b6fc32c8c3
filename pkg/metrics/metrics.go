package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_processed_total",
			Help: "Total number of chat messages processed by intent",
		},
		[]string{"intent", "channel"},
	)

	MessageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "chat_message_duration_seconds",
			Help: "Duration of chat message handling in seconds",
		},
		[]string{"intent"},
	)

	CollaboratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_collaborator_failures_total",
			Help: "Total number of collaborator lookup failures",
		},
		[]string{"collaborator"},
	)

	ActiveWebsocketSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_websocket_sessions_active",
			Help: "Number of active websocket chat sessions",
		},
	)
)
