package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// ListResources возвращает складские позиции
func (s *incidentService) ListResources(ctx context.Context) ([]*models.Resource, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "ListResources",
	})

	resources, err := s.resources.ListResources(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list resources from repository")
		return nil, fmt.Errorf("service: could not list resources: %w", err)
	}
	log.WithField("count", len(resources)).Info("Resources listed successfully")
	return resources, nil
}

// CreateResource заводит складскую позицию (только администратор)
func (s *incidentService) CreateResource(ctx context.Context, caller models.Caller, resource *models.Resource) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "resource",
		"method":  "CreateResource",
		"name":    resource.Name,
	})
	log.Info("Attempting to create a new resource")

	if !caller.IsAdmin() {
		return fmt.Errorf("%w: only administrators can create resources", models.ErrForbidden)
	}

	resource.Name = strings.TrimSpace(resource.Name)
	if resource.Name == "" {
		return &models.ValidationError{Field: "name", Reason: "required"}
	}
	switch resource.Type {
	case models.ResourceVehicle, models.ResourceEquipment, models.ResourcePersonnel, models.ResourceSupply:
	default:
		return &models.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown resource type %q", resource.Type)}
	}
	if resource.Quantity < 0 {
		return &models.ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if resource.Unit == "" {
		resource.Unit = "units"
	}
	resource.ID = uuid.New()
	resource.Status = models.ResourceAvailable
	if resource.Quantity == 0 {
		resource.Status = models.ResourceDepleted
	}

	if err := s.resources.CreateResource(ctx, resource); err != nil {
		log.WithError(err).Error("Failed to create resource in repository")
		return fmt.Errorf("service: could not create resource: %w", err)
	}

	log.WithField("resource_id", resource.ID).Info("Resource created successfully")
	return nil
}
