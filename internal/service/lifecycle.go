package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

// VerifyIncident - ручная верификация администратором
func (s *incidentService) VerifyIncident(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "VerifyIncident",
		"incident_id": id,
	})
	log.Info("Attempting to verify incident")

	if !caller.IsAdmin() {
		log.Warn("Verification attempted by non-admin")
		return nil, fmt.Errorf("%w: only administrators can verify incidents", models.ErrForbidden)
	}

	incident, err := s.repo.Mutate(ctx, id, func(inc *models.Incident) error {
		switch {
		case inc.Status == models.StatusPending:
			inc.Status = models.StatusVerified
		case !inc.Status.IsOpen():
			return fmt.Errorf("%w: incident %s is %s", models.ErrConflict, inc.ID, inc.Status)
		}
		inc.Verified = true
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to verify incident")
		return nil, fmt.Errorf("service: could not verify incident: %w", err)
	}

	s.publish(ctx, log, webhook.EventVerified, incident)
	log.Info("Incident verified successfully")
	return incident, nil
}

// AssignIncident назначает агента и списывает ресурсы одной транзакцией
func (s *incidentService) AssignIncident(ctx context.Context, caller models.Caller, assignment models.Assignment) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AssignIncident",
		"incident_id": assignment.IncidentID,
		"agent_id":    assignment.AgentID,
	})
	log.Info("Attempting to assign incident")

	if !caller.IsAdmin() {
		log.Warn("Assignment attempted by non-admin")
		return nil, fmt.Errorf("%w: only administrators can assign incidents", models.ErrForbidden)
	}
	if assignment.AgentID == uuid.Nil {
		return nil, &models.ValidationError{Field: "agentId", Reason: "required"}
	}
	for _, alloc := range assignment.Allocations {
		if alloc.ResourceID == uuid.Nil {
			return nil, &models.ValidationError{Field: "resourceId", Reason: "required"}
		}
		if alloc.Quantity <= 0 {
			return nil, &models.ValidationError{Field: "quantity", Reason: "must be positive"}
		}
	}

	var incident *models.Incident
	err := retryOnConflict(log, func() error {
		var err error
		incident, err = s.repo.Assign(ctx, assignment.IncidentID, assignment.Allocations, func(inc *models.Incident) error {
			if !inc.Status.CanTransition(models.StatusAssigned) {
				return fmt.Errorf("%w: incident %s cannot be assigned from status %s", models.ErrConflict, inc.ID, inc.Status)
			}
			agent := assignment.AgentID
			inc.AssignedTo = &agent
			inc.Status = models.StatusAssigned
			return nil
		})
		return err
	})
	if err != nil {
		log.WithError(err).Warn("Failed to assign incident")
		return nil, fmt.Errorf("service: could not assign incident: %w", err)
	}

	s.publish(ctx, log, webhook.EventAssigned, incident)
	log.Info("Incident assigned successfully")
	return incident, nil
}

// StartIncident - агент подтвердил выезд
func (s *incidentService) StartIncident(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "StartIncident",
		"incident_id": id,
	})
	log.Info("Attempting to start incident")

	incident, err := s.repo.Mutate(ctx, id, func(inc *models.Incident) error {
		if err := authorizeAssignee(caller, inc); err != nil {
			return err
		}
		if !inc.Status.CanTransition(models.StatusInProgress) {
			return fmt.Errorf("%w: incident %s cannot be started from status %s", models.ErrConflict, inc.ID, inc.Status)
		}
		inc.Status = models.StatusInProgress
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to start incident")
		return nil, fmt.Errorf("service: could not start incident: %w", err)
	}

	s.publish(ctx, log, webhook.EventStarted, incident)
	log.Info("Incident started successfully")
	return incident, nil
}

// CompleteIncident принимает полевой отчёт и закрывает инцидент
func (s *incidentService) CompleteIncident(ctx context.Context, caller models.Caller, id uuid.UUID, report models.FieldReport) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "CompleteIncident",
		"incident_id":  id,
		"field_report": report,
	})
	log.Info("Attempting to complete incident")

	if !report.IsValid() {
		return nil, &models.ValidationError{Field: "fieldReport", Reason: "must be controlled or out_of_control"}
	}

	incident, err := s.repo.Mutate(ctx, id, func(inc *models.Incident) error {
		if err := authorizeAssignee(caller, inc); err != nil {
			return err
		}
		if !inc.Status.CanTransition(models.StatusCompleted) {
			return fmt.Errorf("%w: incident %s cannot be completed from status %s", models.ErrConflict, inc.ID, inc.Status)
		}
		inc.Status = models.StatusCompleted
		inc.FieldReport = report
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to complete incident")
		return nil, fmt.Errorf("service: could not complete incident: %w", err)
	}

	s.publish(ctx, log, webhook.EventCompleted, incident)
	log.Info("Incident completed successfully")
	return incident, nil
}

// authorizeAssignee пропускает назначенного агента или администратора
func authorizeAssignee(caller models.Caller, inc *models.Incident) error {
	if caller.IsAdmin() {
		return nil
	}
	if caller.ID != uuid.Nil && inc.IsAssignedTo(caller.ID) {
		return nil
	}
	return fmt.Errorf("%w: caller is not assigned to incident %s", models.ErrForbidden, inc.ID)
}
