package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Dispatch route for an incident
// @Description Baseline distance from the base plus a road polyline. Falls back to a straight line with a warning when road routing is unavailable. Caller must be the assignee or an admin.
// @Tags Routing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} DispatchRouteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the assignee"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident has no assignee"
// @Router /incidents/{id}/route [get]
func (h *Handler) dispatchRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "dispatchRoute").WithField("id", id)

	route, err := h.dispatchService.DispatchRoute(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DispatchRouteToResponse(route))
}

// @Summary Open assignments of the calling agent
// @Description Assigned and in-progress incidents of the caller with dispatch routes, ranked by urgency.
// @Tags Routing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AssignmentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /assignments [get]
func (h *Handler) agentAssignments(c *gin.Context) {
	log := h.logger.WithField("method", "agentAssignments")

	items, err := h.dispatchService.AgentAssignments(c.Request.Context(), callerFrom(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AssignmentsToResponses(items))
}

// @Summary Resolve a road route between two points
// @Description Never fails on routing provider errors: degrades to a straight line with a warning.
// @Tags Routing
// @Accept json
// @Produce json
// @Param route body RouteRequest true "Route endpoints"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /routes/road [post]
func (h *Handler) resolveRoute(c *gin.Context) {
	var input RouteRequest
	log := h.logger.WithField("method", "resolveRoute")

	if !h.bind(c, log, &input) {
		return
	}

	route, err := h.dispatchService.ResolveRoute(c.Request.Context(), LocationToPoint(input.From), LocationToPoint(input.To))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RouteToResponse(route))
}
