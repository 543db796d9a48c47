package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationDTO - координаты точки
// @Description Координаты точки
type LocationDTO struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// CreateReportRequest DTO для подачи сообщения об инциденте
// @Description DTO для подачи сообщения об инциденте
type CreateReportRequest struct {
	DisasterType    string      `json:"disasterType" validate:"required"`
	Severity        int         `json:"severity" validate:"required,min=1,max=5"`
	Description     string      `json:"description" validate:"required,min=1,max=4000"`
	Location        LocationDTO `json:"location"`
	Address         string      `json:"address,omitempty" validate:"max=500"`
	ReporterName    string      `json:"reporterName,omitempty" validate:"max=255"`
	ReporterContact string      `json:"reporterContact,omitempty" validate:"max=255"`
}

// ExternalEventRequest DTO для событий внешних систем обнаружения
// @Description DTO для событий внешних систем обнаружения
type ExternalEventRequest struct {
	ExternalID   string      `json:"externalId" validate:"required,max=255"`
	DisasterType string      `json:"disasterType" validate:"required"`
	Severity     int         `json:"severity" validate:"required,min=1,max=5"`
	Description  string      `json:"description" validate:"required,min=1,max=4000"`
	Location     LocationDTO `json:"location"`
	Address      string      `json:"address,omitempty" validate:"max=500"`
}

// AllocationDTO - ресурс, выделяемый на инцидент
// @Description Ресурс, выделяемый на инцидент
type AllocationDTO struct {
	ResourceID uuid.UUID `json:"resourceId" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,gt=0"`
}

// AssignIncidentRequest DTO для назначения агента
// @Description DTO для назначения агента
type AssignIncidentRequest struct {
	AgentID             uuid.UUID       `json:"agentId" validate:"required"`
	ResourceAllocations []AllocationDTO `json:"resourceAllocations" validate:"dive"`
}

// StatusUpdateRequest DTO для полевого отчёта
// @Description DTO для полевого отчёта
type StatusUpdateRequest struct {
	FieldReport string `json:"fieldReport" validate:"required,oneof=controlled out_of_control"`
}

// RouteRequest DTO для построения маршрута между двумя точками
// @Description DTO для построения маршрута между двумя точками
type RouteRequest struct {
	From LocationDTO `json:"from"`
	To   LocationDTO `json:"to"`
}

// CreateResourceRequest DTO для заведения складской позиции
// @Description DTO для заведения складской позиции
type CreateResourceRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Type     string `json:"type" validate:"required,oneof=Vehicle Equipment Personnel Supply"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Unit     string `json:"unit,omitempty" validate:"max=32"`
}

// ReporterResponse - контакты анонимного заявителя
type ReporterResponse struct {
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	ReportedAt time.Time `json:"reportedAt"`
}

// AllocationResponse - выделенный ресурс
type AllocationResponse struct {
	ResourceID uuid.UUID `json:"resourceId"`
	Name       string    `json:"name,omitempty"`
	Quantity   int       `json:"quantity"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                 uuid.UUID            `json:"id"`
	DisasterType       string               `json:"disasterType"`
	Severity           int                  `json:"severity"`
	Description        string               `json:"description"`
	Location           [2]float64           `json:"location"`
	Address            string               `json:"address,omitempty"`
	ReportCount        int                  `json:"reportCount"`
	UrgencyScore       float64              `json:"urgencyScore"`
	Status             string               `json:"status"`
	Verified           bool                 `json:"verified"`
	Source             string               `json:"source"`
	ExternalID         string               `json:"externalId,omitempty"`
	AnonymousReporters []ReporterResponse   `json:"anonymousReporters,omitempty"`
	AssignedTo         *uuid.UUID           `json:"assignedTo,omitempty"`
	AllocatedResources []AllocationResponse `json:"allocatedResources,omitempty"`
	FieldReport        string               `json:"fieldReport,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

// ReportResponse DTO результата обработки сообщения
// @Description Результат обработки сообщения: создан новый инцидент или сообщение слито с существующим
type ReportResponse struct {
	Created  bool              `json:"created,omitempty"`
	Merged   bool              `json:"merged,omitempty"`
	Incident *IncidentResponse `json:"incident"`
}

// RouteResponse DTO маршрута; path - пары [lat, lng]
// @Description Маршрут; path - пары [lat, lng]
type RouteResponse struct {
	Path    [][2]float64 `json:"path"`
	Source  string       `json:"source"`
	Warning string       `json:"warning,omitempty"`
}

// DispatchRouteResponse DTO маршрута от базы до инцидента
// @Description Маршрут от базы до инцидента
type DispatchRouteResponse struct {
	IncidentID uuid.UUID    `json:"incidentId"`
	DistanceKm float64      `json:"distanceKm"`
	GraphPath  []string     `json:"graphPath"`
	Path       [][2]float64 `json:"path"`
	Source     string       `json:"source"`
	Warning    string       `json:"warning,omitempty"`
	Cached     bool         `json:"cached"`
}

// AssignmentResponse DTO назначения агента с маршрутом
// @Description Назначение агента с маршрутом
type AssignmentResponse struct {
	Incident *IncidentResponse      `json:"incident"`
	Route    *DispatchRouteResponse `json:"route"`
}

// ResourceResponse DTO складской позиции
// @Description Складская позиция
type ResourceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
