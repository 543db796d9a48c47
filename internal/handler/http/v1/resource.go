package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List resources
// @Description Inventory available for assignment.
// @Tags Resources
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ResourceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	log := h.logger.WithField("method", "listResources")

	resources, err := h.incidentService.ListResources(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToResourceResponses(resources))
}

// @Summary Create a resource
// @Description Register an inventory item. Requires admin role.
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource body CreateResourceRequest true "Resource"
// @Success 201 {object} ResourceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /resources [post]
func (h *Handler) createResource(c *gin.Context) {
	var input CreateResourceRequest
	log := h.logger.WithField("method", "createResource")

	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToResourceModel(input)
	if err := h.incidentService.CreateResource(c.Request.Context(), callerFrom(c), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToResourceResponse(model))
}
