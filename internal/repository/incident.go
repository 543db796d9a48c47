package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service"
)

const incidentColumns = `
	id,
	disaster_type,
	severity,
	description,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	address,
	report_count,
	urgency_score,
	status,
	verified,
	source,
	reported_by,
	external_id,
	reporters,
	assigned_to,
	allocated_resources,
	field_report,
	created_at,
	updated_at`

// querier - общее подмножество pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{db: db}
}

var (
	_ service.IncidentRepository = (*IncidentRepository)(nil)
	_ service.ResourceRepository = (*IncidentRepository)(nil)
)

// WithClusterLock открывает транзакцию и берёт advisory-блокировки ячеек в переданном порядке.
// Блокировки снимаются при завершении транзакции.
func (r *IncidentRepository) WithClusterLock(ctx context.Context, cells []int64, fn func(ctx context.Context, tx service.IncidentTx) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		for _, cell := range cells {
			if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, cell); err != nil {
				return fmt.Errorf("failed to acquire cluster lock: %w", mapError(err))
			}
		}
		return fn(ctx, &incidentTx{q: tx})
	})
}

func (r *IncidentRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", mapError(err))
	}
	return nil
}

type incidentTx struct {
	q querier
}

// FindOpenNear - открытые инциденты того же типа внутри квадрата ±threshold (границы включительно).
// Строки блокируются до конца транзакции, после ожидания блокировки статус перепроверяется.
func (t *incidentTx) FindOpenNear(ctx context.Context, disasterType models.DisasterType, lat, lon, thresholdDeg float64) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE disaster_type = $1
			AND status = ANY($2)
			AND location && ST_MakeEnvelope($3, $4, $5, $6, 4326)
			AND ST_Y(location::geometry) BETWEEN $4 AND $6
			AND ST_X(location::geometry) BETWEEN $3 AND $5
		ORDER BY created_at, id
		FOR UPDATE;
	`
	rows, err := t.q.Query(ctx, query,
		disasterType,
		statusStrings(models.OpenStatuses),
		lon-thresholdDeg, lat-thresholdDeg,
		lon+thresholdDeg, lat+thresholdDeg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find open incidents nearby: %w", mapError(err))
	}
	return collectIncidents(rows, "FindOpenNear")
}

// Create создает новую запись об инциденте в бд
func (t *incidentTx) Create(ctx context.Context, incident *models.Incident) error {
	return insertIncident(ctx, t.q, incident)
}

// Update сохраняет слияние, только если инцидент всё ещё открыт
func (t *incidentTx) Update(ctx context.Context, incident *models.Incident) error {
	return updateIncident(ctx, t.q, incident, true)
}

func insertIncident(ctx context.Context, q querier, incident *models.Incident) error {
	reporters, allocations, err := marshalCollections(incident)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO incidents (
			id, disaster_type, severity, description, location, address, report_count,
			urgency_score, status, verified, source, reported_by, external_id,
			reporters, assigned_to, allocated_resources, field_report
		)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8,
			$9, $10, $11, $12, $13, NULLIF($14, ''),
			$15, $16, $17, $18)
		RETURNING created_at, updated_at;
	`
	err = q.QueryRow(ctx, query,
		incident.ID,
		incident.DisasterType,
		incident.Severity,
		incident.Description,
		incident.Longitude,
		incident.Latitude,
		incident.Address,
		incident.ReportCount,
		incident.UrgencyScore,
		incident.Status,
		incident.Verified,
		incident.Source,
		incident.ReportedBy,
		incident.ExternalID,
		reporters,
		incident.AssignedTo,
		allocations,
		incident.FieldReport,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", mapError(err))
	}
	return nil
}

func updateIncident(ctx context.Context, q querier, incident *models.Incident, requireOpen bool) error {
	reporters, allocations, err := marshalCollections(incident)
	if err != nil {
		return err
	}
	query := `
		UPDATE incidents SET
			severity = $1,
			description = $2,
			address = $3,
			report_count = $4,
			urgency_score = $5,
			status = $6,
			verified = $7,
			external_id = NULLIF($8, ''),
			reporters = $9,
			assigned_to = $10,
			allocated_resources = $11,
			field_report = $12,
			updated_at = NOW()
		WHERE id = $13`
	args := []any{
		incident.Severity,
		incident.Description,
		incident.Address,
		incident.ReportCount,
		incident.UrgencyScore,
		incident.Status,
		incident.Verified,
		incident.ExternalID,
		reporters,
		incident.AssignedTo,
		allocations,
		incident.FieldReport,
		incident.ID,
	}
	if requireOpen {
		query += ` AND status = ANY($14)`
		args = append(args, statusStrings(models.OpenStatuses))
	}
	query += ` RETURNING updated_at;`

	err = q.QueryRow(ctx, query, args...).Scan(&incident.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if requireOpen {
				return fmt.Errorf("%w: incident %s is no longer open", models.ErrConflict, incident.ID)
			}
			return fmt.Errorf("%w: incident with id %s not found for update", models.ErrNotFound, incident.ID)
		}
		return fmt.Errorf("failed to update incident: %w", mapError(err))
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	return getIncident(ctx, r.db, id, false)
}

func getIncident(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	incident, err := scanIncident(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: incident with id %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", mapError(err))
	}
	return incident, nil
}

// GetByExternalID возвращает nil, nil если событие ещё не заводилось
func (r *IncidentRepository) GetByExternalID(ctx context.Context, externalID string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE external_id = $1`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident by external id: %w", mapError(err))
	}
	return incident, nil
}

func (r *IncidentRepository) ListByStatus(ctx context.Context, statuses []models.Status) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE status = ANY($1)
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, statusStrings(statuses))
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", mapError(err))
	}
	return collectIncidents(rows, "ListByStatus")
}

func (r *IncidentRepository) ListAssignedTo(ctx context.Context, agentID uuid.UUID, statuses []models.Status) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE assigned_to = $1 AND status = ANY($2)
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, agentID, statusStrings(statuses))
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned incidents: %w", mapError(err))
	}
	return collectIncidents(rows, "ListAssignedTo")
}

// Mutate блокирует строку (SELECT ... FOR UPDATE) на время применения fn
func (r *IncidentRepository) Mutate(ctx context.Context, id uuid.UUID, fn func(incident *models.Incident) error) (*models.Incident, error) {
	var incident *models.Incident
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		incident, err = getIncident(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if err := fn(incident); err != nil {
			return err
		}
		return updateIncident(ctx, tx, incident, false)
	})
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Assign блокирует инцидент и ресурсы, списывает количество и сохраняет назначение
func (r *IncidentRepository) Assign(ctx context.Context, id uuid.UUID, allocations []models.ResourceAllocation, fn func(incident *models.Incident) error) (*models.Incident, error) {
	var incident *models.Incident
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		incident, err = getIncident(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if err := fn(incident); err != nil {
			return err
		}

		for _, alloc := range allocations {
			res, err := getResource(ctx, tx, alloc.ResourceID, true)
			if err != nil {
				return err
			}
			if err := res.Deduct(alloc.Quantity); err != nil {
				return err
			}
			if err := updateResourceStock(ctx, tx, res); err != nil {
				return err
			}
			alloc.Name = res.Name
			incident.AllocatedResources = append(incident.AllocatedResources, alloc)
		}
		return updateIncident(ctx, tx, incident, false)
	})
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var (
		address, reportedBy, externalID, fieldReport *string
		reporters, allocations                       []byte
	)
	err := row.Scan(
		&incident.ID,
		&incident.DisasterType,
		&incident.Severity,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&address,
		&incident.ReportCount,
		&incident.UrgencyScore,
		&incident.Status,
		&incident.Verified,
		&incident.Source,
		&reportedBy,
		&externalID,
		&reporters,
		&incident.AssignedTo,
		&allocations,
		&fieldReport,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	incident.Address = deref(address)
	incident.ReportedBy = deref(reportedBy)
	incident.ExternalID = deref(externalID)
	incident.FieldReport = models.FieldReport(deref(fieldReport))

	if len(reporters) > 0 {
		if err := json.Unmarshal(reporters, &incident.Reporters); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reporters: %w", err)
		}
	}
	if len(allocations) > 0 {
		if err := json.Unmarshal(allocations, &incident.AllocatedResources); err != nil {
			return nil, fmt.Errorf("failed to unmarshal allocated resources: %w", err)
		}
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows, op string) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in %s: %w", op, err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", op, mapError(err))
	}
	return incidents, nil
}

func marshalCollections(incident *models.Incident) ([]byte, []byte, error) {
	reporters, err := json.Marshal(nonNil(incident.Reporters))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal reporters: %w", err)
	}
	allocations, err := json.Marshal(nonNil(incident.AllocatedResources))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal allocated resources: %w", err)
	}
	return reporters, allocations, nil
}

// mapError переводит ошибки конкурентного доступа postgres в models.ErrConflict
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.UniqueViolation, pgerrcode.LockNotAvailable:
		return fmt.Errorf("%w: %s", models.ErrConflict, pgErr.Message)
	case pgerrcode.CheckViolation:
		return &models.ValidationError{Field: pgErr.ConstraintName, Reason: pgErr.Message}
	}
	return err
}

func statusStrings(statuses []models.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
