package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_dispatch/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	eventQueueKey = "incident_events"
)

// EventType - тип события жизненного цикла инцидента
type EventType string

const (
	EventCreated   EventType = "incident.created"
	EventMerged    EventType = "incident.merged"
	EventVerified  EventType = "incident.verified"
	EventAssigned  EventType = "incident.assigned"
	EventStarted   EventType = "incident.in_progress"
	EventCompleted EventType = "incident.completed"
)

// IncidentEvent - структура для данных вебхука
type IncidentEvent struct {
	Type         EventType           `json:"type"`
	IncidentID   uuid.UUID           `json:"incident_id"`
	DisasterType models.DisasterType `json:"disaster_type"`
	Status       models.Status       `json:"status"`
	Severity     int                 `json:"severity"`
	ReportCount  int                 `json:"report_count"`
	UrgencyScore float64             `json:"urgency_score"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	Timestamp    time.Time           `json:"timestamp"`
}

// NewIncidentEvent собирает событие из текущего состояния инцидента
func NewIncidentEvent(t EventType, incident *models.Incident) IncidentEvent {
	return IncidentEvent{
		Type:         t,
		IncidentID:   incident.ID,
		DisasterType: incident.DisasterType,
		Status:       incident.Status,
		Severity:     incident.Severity,
		ReportCount:  incident.ReportCount,
		UrgencyScore: incident.UrgencyScore,
		Latitude:     incident.Latitude,
		Longitude:    incident.Longitude,
		Timestamp:    time.Now().UTC(),
	}
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// LPUSH кладёт событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события (режим без Redis)
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, IncidentEvent) error { return nil }
