package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DisasterType - тип бедствия из фиксированного перечня
type DisasterType string

const (
	DisasterEarthquake DisasterType = "earthquake"
	DisasterFlood      DisasterType = "flood"
	DisasterFire       DisasterType = "fire"
	DisasterStorm      DisasterType = "storm"
	DisasterMedical    DisasterType = "medical"
	DisasterHazmat     DisasterType = "hazmat"
	DisasterLandslide  DisasterType = "landslide"
	DisasterOther      DisasterType = "other"
)

var disasterTypes = []DisasterType{
	DisasterEarthquake, DisasterFlood, DisasterFire, DisasterStorm,
	DisasterMedical, DisasterHazmat, DisasterLandslide, DisasterOther,
}

func (d DisasterType) IsValid() bool {
	for _, t := range disasterTypes {
		if d == t {
			return true
		}
	}
	return false
}

// ParseDisasterType разбирает тип без учёта регистра. Неизвестные типы не сводятся к "other".
func ParseDisasterType(s string) (DisasterType, error) {
	d := DisasterType(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", &ValidationError{Field: "disasterType", Reason: fmt.Sprintf("unknown disaster type %q", s)}
	}
	return d, nil
}

// Status - состояние инцидента
type Status string

const (
	StatusPending    Status = "pending"
	StatusVerified   Status = "verified"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// OpenStatuses - статусы, участвующие в кластеризации и живом рейтинге
var OpenStatuses = []Status{StatusPending, StatusVerified, StatusAssigned, StatusInProgress}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusAssigned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s Status) IsOpen() bool {
	return s.IsValid() && s != StatusCompleted
}

// CanTransition возвращает true, если переход s -> to разрешён.
// Переходы только вперёд, completed - терминальное состояние.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusVerified || to == StatusAssigned
	case StatusVerified:
		return to == StatusAssigned
	case StatusAssigned:
		return to == StatusInProgress || to == StatusCompleted
	case StatusInProgress:
		return to == StatusCompleted
	}
	return false
}

// Source - происхождение первого сообщения
type Source string

const (
	SourceUser      Source = "user"
	SourceAnonymous Source = "anonymous"
	SourceAPI       Source = "api"
)

// FieldReport - итог полевого отчёта агента
type FieldReport string

const (
	FieldReportControlled   FieldReport = "controlled"
	FieldReportOutOfControl FieldReport = "out_of_control"
)

func (f FieldReport) IsValid() bool {
	return f == FieldReportControlled || f == FieldReportOutOfControl
}

// Reporter - контактные данные анонимного заявителя
type Reporter struct {
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	ReportedAt time.Time `json:"reported_at"`
}

// ResourceAllocation - ресурс, выделенный на инцидент
type ResourceAllocation struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Name       string    `json:"name,omitempty"`
	Quantity   int       `json:"quantity"`
}

type Incident struct {
	ID                 uuid.UUID            `json:"id"`
	DisasterType       DisasterType         `json:"disaster_type"`
	Severity           int                  `json:"severity"`
	Description        string               `json:"description"`
	Latitude           float64              `json:"latitude"`
	Longitude          float64              `json:"longitude"`
	Address            string               `json:"address,omitempty"`
	ReportCount        int                  `json:"report_count"`
	UrgencyScore       float64              `json:"urgency_score"`
	Status             Status               `json:"status"`
	Verified           bool                 `json:"verified"`
	Source             Source               `json:"source"`
	ReportedBy         string               `json:"reported_by,omitempty"`
	ExternalID         string               `json:"external_id,omitempty"`
	Reporters          []Reporter           `json:"anonymous_reporters,omitempty"`
	AssignedTo         *uuid.UUID           `json:"assigned_to,omitempty"`
	AllocatedResources []ResourceAllocation `json:"allocated_resources,omitempty"`
	FieldReport        FieldReport          `json:"field_report,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	c := *i
	if i.Reporters != nil {
		c.Reporters = append([]Reporter(nil), i.Reporters...)
	}
	if i.AllocatedResources != nil {
		c.AllocatedResources = append([]ResourceAllocation(nil), i.AllocatedResources...)
	}
	if i.AssignedTo != nil {
		id := *i.AssignedTo
		c.AssignedTo = &id
	}
	return &c
}

// IsAssignedTo проверяет, назначен ли инцидент данному агенту
func (i *Incident) IsAssignedTo(agentID uuid.UUID) bool {
	return i.AssignedTo != nil && *i.AssignedTo == agentID
}

// Report - провалидированное сообщение об инциденте
type Report struct {
	DisasterType DisasterType
	Severity     int
	Description  string
	Latitude     float64
	Longitude    float64
	Address      string
	Reporter     *Reporter
}

// Assignment - назначение агента и ресурсов на инцидент
type Assignment struct {
	IncidentID  uuid.UUID
	AgentID     uuid.UUID
	Allocations []ResourceAllocation
}

// ExternalEvent - событие из внешнего источника (например, ленты USGS)
type ExternalEvent struct {
	ExternalID   string
	DisasterType DisasterType
	Severity     int
	Description  string
	Latitude     float64
	Longitude    float64
	Address      string
}
