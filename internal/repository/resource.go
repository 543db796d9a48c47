package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/incident_dispatch/internal/models"
)

func (r *IncidentRepository) ListResources(ctx context.Context) ([]*models.Resource, error) {
	query := `
		SELECT id, name, type, quantity, unit, status, created_at, updated_at
		FROM resources
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	resources := make([]*models.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListResources: %w", err)
	}
	return resources, nil
}

func (r *IncidentRepository) CreateResource(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (id, name, type, quantity, unit, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		resource.ID,
		resource.Name,
		resource.Type,
		resource.Quantity,
		resource.Unit,
		resource.Status,
	).Scan(&resource.CreatedAt, &resource.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", mapError(err))
	}
	return nil
}

func getResource(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*models.Resource, error) {
	query := `SELECT id, name, type, quantity, unit, status, created_at, updated_at FROM resources WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	res, err := scanResource(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: resource with id %s", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get resource: %w", mapError(err))
	}
	return res, nil
}

func updateResourceStock(ctx context.Context, q querier, res *models.Resource) error {
	query := `
		UPDATE resources SET
			quantity = $1,
			status = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	if _, err := q.Exec(ctx, query, res.Quantity, res.Status, res.ID); err != nil {
		return fmt.Errorf("failed to update resource stock: %w", mapError(err))
	}
	return nil
}

func scanResource(row pgx.Row) (*models.Resource, error) {
	res := &models.Resource{}
	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Type,
		&res.Quantity,
		&res.Unit,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}
