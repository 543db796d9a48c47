package v1

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/routing"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/shenikar/incident_dispatch/pkg/geo"
)

// DTOToReportModel преобразует DTO сообщения в доменную модель.
// Контакты заявителя передаются всегда, сервис сам решает, нужны ли они.
func DTOToReportModel(dto CreateReportRequest, disasterType models.DisasterType) models.Report {
	report := models.Report{
		DisasterType: disasterType,
		Severity:     dto.Severity,
		Description:  dto.Description,
		Latitude:     *dto.Location.Lat,
		Longitude:    *dto.Location.Lng,
		Address:      strings.TrimSpace(dto.Address),
	}
	if dto.ReporterName != "" || dto.ReporterContact != "" {
		report.Reporter = &models.Reporter{
			Name:    strings.TrimSpace(dto.ReporterName),
			Contact: strings.TrimSpace(dto.ReporterContact),
		}
	}
	return report
}

func DTOToExternalEvent(dto ExternalEventRequest, disasterType models.DisasterType) models.ExternalEvent {
	return models.ExternalEvent{
		ExternalID:   dto.ExternalID,
		DisasterType: disasterType,
		Severity:     dto.Severity,
		Description:  dto.Description,
		Latitude:     *dto.Location.Lat,
		Longitude:    *dto.Location.Lng,
		Address:      strings.TrimSpace(dto.Address),
	}
}

func DTOToAssignment(incidentID uuid.UUID, dto AssignIncidentRequest) models.Assignment {
	assignment := models.Assignment{
		IncidentID: incidentID,
		AgentID:    dto.AgentID,
	}
	for _, a := range dto.ResourceAllocations {
		assignment.Allocations = append(assignment.Allocations, models.ResourceAllocation{
			ResourceID: a.ResourceID,
			Quantity:   a.Quantity,
		})
	}
	return assignment
}

func DTOToResourceModel(dto CreateResourceRequest) *models.Resource {
	return &models.Resource{
		Name:     dto.Name,
		Type:     models.ResourceType(dto.Type),
		Quantity: dto.Quantity,
		Unit:     strings.TrimSpace(dto.Unit),
	}
}

func LocationToPoint(dto LocationDTO) geo.Point {
	return geo.Point{Lat: *dto.Lat, Lng: *dto.Lng}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:           model.ID,
		DisasterType: string(model.DisasterType),
		Severity:     model.Severity,
		Description:  model.Description,
		Location:     [2]float64{model.Latitude, model.Longitude},
		Address:      model.Address,
		ReportCount:  model.ReportCount,
		UrgencyScore: model.UrgencyScore,
		Status:       string(model.Status),
		Verified:     model.Verified,
		Source:       string(model.Source),
		ExternalID:   model.ExternalID,
		AssignedTo:   model.AssignedTo,
		FieldReport:  string(model.FieldReport),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	for _, r := range model.Reporters {
		resp.AnonymousReporters = append(resp.AnonymousReporters, ReporterResponse(r))
	}
	for _, a := range model.AllocatedResources {
		resp.AllocatedResources = append(resp.AllocatedResources, AllocationResponse(a))
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ResultToReportResponse(result *service.ReportResult) *ReportResponse {
	return &ReportResponse{
		Created:  !result.Merged,
		Merged:   result.Merged,
		Incident: ModelToIncidentResponse(result.Incident),
	}
}

func pathToPairs(path []geo.Point) [][2]float64 {
	pairs := make([][2]float64, len(path))
	for i, p := range path {
		pairs[i] = [2]float64{p.Lat, p.Lng}
	}
	return pairs
}

func RouteToResponse(route routing.Route) *RouteResponse {
	return &RouteResponse{
		Path:    pathToPairs(route.Path),
		Source:  string(route.Source),
		Warning: route.Warning,
	}
}

func DispatchRouteToResponse(route *routing.DispatchRoute) *DispatchRouteResponse {
	return &DispatchRouteResponse{
		IncidentID: route.IncidentID,
		DistanceKm: route.DistanceKm,
		GraphPath:  route.GraphPath,
		Path:       pathToPairs(route.Path),
		Source:     string(route.Source),
		Warning:    route.Warning,
		Cached:     route.Cached,
	}
}

func AssignmentsToResponses(items []*service.AssignmentRoute) []*AssignmentResponse {
	responses := make([]*AssignmentResponse, len(items))
	for i, item := range items {
		responses[i] = &AssignmentResponse{
			Incident: ModelToIncidentResponse(item.Incident),
			Route:    DispatchRouteToResponse(item.Route),
		}
	}
	return responses
}

func ModelToResourceResponse(model *models.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:        model.ID,
		Name:      model.Name,
		Type:      string(model.Type),
		Quantity:  model.Quantity,
		Unit:      model.Unit,
		Status:    string(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ModelsToResourceResponses(models []*models.Resource) []*ResourceResponse {
	responses := make([]*ResourceResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToResourceResponse(model)
	}
	return responses
}
