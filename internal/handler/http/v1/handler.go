package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	dispatchService service.DispatchService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, dispatchService service.DispatchService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		dispatchService: dispatchService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит доменную ошибку в HTTP-статус
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden):
		log.WithError(err).Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "conflict", "details": err.Error()})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bind читает JSON и прогоняет валидатор; при ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Submit an incident report
// @Description Submit a report. It is merged into an open incident of the same type nearby or creates a new one. Anonymous callers must provide reporterName and reporterContact.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body CreateReportRequest true "Incident report"
// @Success 201 {object} ReportResponse "New incident created"
// @Success 200 {object} ReportResponse "Report merged into an existing incident"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid token"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "submitReport")

	if !h.bind(c, log, &input) {
		return
	}
	disasterType, err := models.ParseDisasterType(input.DisasterType)
	if err != nil {
		respondError(c, log, err)
		return
	}

	result, err := h.incidentService.SubmitReport(c.Request.Context(), callerFrom(c), DTOToReportModel(input, disasterType))
	if err != nil {
		respondError(c, log, err)
		return
	}

	status := http.StatusCreated
	if result.Merged {
		status = http.StatusOK
	}
	c.JSON(status, ResultToReportResponse(result))
}

// @Summary Ingest an external detection event
// @Description Create or merge an api-sourced incident from an external feed. Repeated externalId values are deduplicated. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body ExternalEventRequest true "External event"
// @Success 201 {object} ReportResponse
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingest/external [post]
func (h *Handler) ingestExternal(c *gin.Context) {
	var input ExternalEventRequest
	log := h.logger.WithField("method", "ingestExternal")

	if !h.bind(c, log, &input) {
		return
	}
	disasterType, err := models.ParseDisasterType(input.DisasterType)
	if err != nil {
		respondError(c, log, err)
		return
	}

	result, err := h.incidentService.IngestExternal(c.Request.Context(), DTOToExternalEvent(input, disasterType))
	if err != nil {
		respondError(c, log, err)
		return
	}

	status := http.StatusCreated
	if result.Merged {
		status = http.StatusOK
	}
	c.JSON(status, ResultToReportResponse(result))
}

// @Summary Get a ranked list of incidents
// @Description Open incidents ranked by urgency, or completed incidents ranked by recency when archive=true.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param archive query bool false "Archive view" default(false)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid archive flag"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	archive, err := strconv.ParseBool(c.DefaultQuery("archive", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid archive flag"})
		return
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), archive)
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Verify an incident
// @Description Administrative override: pending to verified. Requires admin role.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already completed"
// @Router /incidents/{id}/verify [patch]
func (h *Handler) verifyIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "verifyIncident").WithField("id", id)

	incident, err := h.incidentService.VerifyIncident(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Assign an agent to an incident
// @Description Bind an agent and deduct allocated resources in one step. Requires admin role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignIncidentRequest true "Assignment"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or insufficient resources"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident or resource not found"
// @Failure 409 {object} map[string]string "Status does not allow assignment"
// @Router /incidents/{id}/assign [patch]
func (h *Handler) assignIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "assignIncident").WithField("id", id)

	var input AssignIncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.incidentService.AssignIncident(c.Request.Context(), callerFrom(c), DTOToAssignment(id, input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Acknowledge an assignment
// @Description The assigned agent starts work: assigned to in_progress.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the assignee"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Status does not allow the transition"
// @Router /incidents/{id}/start [patch]
func (h *Handler) startIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "startIncident").WithField("id", id)

	incident, err := h.incidentService.StartIncident(c.Request.Context(), callerFrom(c), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Submit a field report
// @Description Complete an incident with a field report. Caller must be the assigned agent or an admin.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param status body StatusUpdateRequest true "Field report"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not the assignee"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Status does not allow completion"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateStatus").WithField("id", id)

	var input StatusUpdateRequest
	if !h.bind(c, log, &input) {
		return
	}

	incident, err := h.incidentService.CompleteIncident(c.Request.Context(), callerFrom(c), id, models.FieldReport(input.FieldReport))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
