package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentTx - операции хранилища, выполняемые под блокировкой кластера
type IncidentTx interface {
	FindOpenNear(ctx context.Context, disasterType models.DisasterType, lat, lon, thresholdDeg float64) ([]*models.Incident, error)
	Create(ctx context.Context, incident *models.Incident) error
	Update(ctx context.Context, incident *models.Incident) error
}

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	// WithClusterLock выполняет fn атомарно, удерживая блокировки перечисленных ячеек кластера
	WithClusterLock(ctx context.Context, cells []int64, fn func(ctx context.Context, tx IncidentTx) error) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.Incident, error)
	ListByStatus(ctx context.Context, statuses []models.Status) ([]*models.Incident, error)
	ListAssignedTo(ctx context.Context, agentID uuid.UUID, statuses []models.Status) ([]*models.Incident, error)
	// Mutate блокирует строку инцидента, применяет fn и сохраняет результат
	Mutate(ctx context.Context, id uuid.UUID, fn func(incident *models.Incident) error) (*models.Incident, error)
	// Assign применяет fn и списывает ресурсы в одной транзакции
	Assign(ctx context.Context, id uuid.UUID, allocations []models.ResourceAllocation, fn func(incident *models.Incident) error) (*models.Incident, error)
}

// ResourceRepository - складской учёт ресурсов
type ResourceRepository interface {
	ListResources(ctx context.Context) ([]*models.Resource, error)
	CreateResource(ctx context.Context, resource *models.Resource) error
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	SubmitReport(ctx context.Context, caller models.Caller, report models.Report) (*ReportResult, error)
	IngestExternal(ctx context.Context, event models.ExternalEvent) (*ReportResult, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, archive bool) ([]*models.Incident, error)
	VerifyIncident(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Incident, error)
	AssignIncident(ctx context.Context, caller models.Caller, assignment models.Assignment) (*models.Incident, error)
	StartIncident(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Incident, error)
	CompleteIncident(ctx context.Context, caller models.Caller, id uuid.UUID, report models.FieldReport) (*models.Incident, error)
	ListResources(ctx context.Context) ([]*models.Resource, error)
	CreateResource(ctx context.Context, caller models.Caller, resource *models.Resource) error
}

// ReportResult - итог обработки сообщения: новый инцидент или слияние с существующим
type ReportResult struct {
	Incident *models.Incident
	Merged   bool
}

type incidentService struct {
	repo      IncidentRepository
	resources ResourceRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.Publisher
}

func NewIncidentService(repo IncidentRepository, resources ResourceRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) IncidentService {
	if publisher == nil {
		publisher = webhook.NopPublisher{}
	}
	return &incidentService{
		repo:      repo,
		resources: resources,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает живой рейтинг (по срочности) или архив (по давности)
func (s *incidentService) ListIncidents(ctx context.Context, archive bool) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"archive": archive,
	})
	log.Info("Listing incidents")

	statuses := models.OpenStatuses
	if archive {
		statuses = []models.Status{models.StatusCompleted}
	}

	incidents, err := s.repo.ListByStatus(ctx, statuses)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	if archive {
		incidents = RankByRecency(incidents)
	} else {
		incidents = RankByUrgency(incidents)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// publish отправляет событие; сбой публикации не влияет на результат операции
func (s *incidentService) publish(ctx context.Context, log *logrus.Entry, t webhook.EventType, incident *models.Incident) {
	if err := s.publisher.Publish(ctx, webhook.NewIncidentEvent(t, incident)); err != nil {
		log.WithError(err).WithField("event_type", t).Warn("Failed to publish incident event")
	}
}

// retryOnConflict повторяет операцию один раз при конфликте конкурентного изменения
func retryOnConflict(log *logrus.Entry, fn func() error) error {
	err := fn()
	if !errors.Is(err, models.ErrConflict) {
		return err
	}
	log.WithError(err).Warn("Concurrent modification detected, retrying once")
	return fn()
}
