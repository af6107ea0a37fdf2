package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Изменяющие маршруты ограничены по частоте и закрыты API-ключом, если ключи заданы
	protected := api.Group("")
	if h.cfg.RateLimitRPS > 0 {
		protected.Use(RateLimitMiddleware(h.cfg.RateLimitRPS, h.cfg.RateLimitBurst, h.logger))
	}
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Маршруты экстренной сессии
	api.GET("/sessions/:id", h.getSession)
	sessions := protected.Group("/sessions")
	{
		sessions.POST("", h.openSession)
		sessions.POST("/:id/type", h.selectType)
		sessions.POST("/:id/confirm", h.confirm)
		sessions.POST("/:id/location", h.pushLocation)
		sessions.POST("/:id/tracking", h.setTracking)
		sessions.POST("/:id/police", h.alertPolice)
		sessions.POST("/:id/cancel", h.cancel)
		sessions.POST("/:id/complete", h.complete)
		sessions.POST("/:id/share", h.shareLocation)
	}

	// Справочные маршруты
	api.GET("/emergencies", h.listEmergencies)
	api.GET("/facilities/nearest", h.nearestFacilities)
	api.GET("/contacts", h.emergencyContacts)
	api.GET("/triage", h.triage)
	api.GET("/triage/categories", h.triageCategories)

	// Очередь повторов
	queue := protected.Group("/queue")
	{
		queue.GET("", h.listQueue)
		queue.POST("/retry", h.retryQueue)
		queue.DELETE("", h.clearQueue)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
