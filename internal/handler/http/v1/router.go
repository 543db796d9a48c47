package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_dispatch/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(IdentityMiddleware(h.cfg, h.logger))

	// Приём сообщений: анонимно, по токену или с API-ключом
	api.POST("/reports", h.submitReport)

	ingest := api.Group("/ingest", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		ingest.POST("/external", h.ingestExternal)
	}

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/verify", RequireRole(models.RoleAdmin), h.verifyIncident)
		incidents.PATCH("/:id/assign", RequireRole(models.RoleAdmin), h.assignIncident)
		incidents.PATCH("/:id/start", RequireRole(models.RoleAdmin, models.RoleAgent), h.startIncident)
		incidents.PATCH("/:id/status", RequireRole(models.RoleAdmin, models.RoleAgent), h.updateStatus)
		incidents.GET("/:id/route", RequireRole(models.RoleAdmin, models.RoleAgent), h.dispatchRoute)
	}

	api.GET("/assignments", RequireRole(models.RoleAgent, models.RoleAdmin), h.agentAssignments)
	api.POST("/routes/road", h.resolveRoute)

	resources := api.Group("/resources", RequireRole(models.RoleAdmin, models.RoleAgent))
	{
		resources.GET("", h.listResources)
		resources.POST("", RequireRole(models.RoleAdmin), h.createResource)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
