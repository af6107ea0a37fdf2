// Package metrics содержит счетчики Prometheus сервиса оповещений
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// NotificationsTotal - попытки передать сообщение в окно отправки SMS по результату
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_notifications_total",
		Help: "Compose intent hand-offs by outcome",
	}, []string{"outcome"})

	RetryQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "emergency_retry_queue_size",
		Help: "Number of messages held in the retry queue",
	})

	RetryAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_retry_attempts_total",
		Help: "Retry attempts by outcome",
	}, []string{"outcome"})

	// SessionTransitionsTotal - переходы экстренных сессий по целевому состоянию
	SessionTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_session_transitions_total",
		Help: "Emergency session transitions by target state",
	}, []string{"state"})

	LocationUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_location_updates_total",
		Help: "Location fixes by decision",
	}, []string{"decision"})

	IntentRelayTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emergency_intent_relay_total",
		Help: "Compose intents relayed to the device gateway by outcome",
	}, []string{"outcome"})
)

// Handler отдает метрики в формате Prometheus
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
