package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/routing"
	"github.com/shenikar/incident_dispatch/pkg/geo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=dispatch.go -destination=mocks/mock_dispatch.go -package=mocks

// routeConcurrency - число одновременных запросов маршрутов для одного агента
const routeConcurrency = 4

// RouteResolver строит маршруты от базы
type RouteResolver interface {
	ResolveDispatch(ctx context.Context, incidentID uuid.UUID, to geo.Point) (*routing.DispatchRoute, error)
	ResolveRoute(ctx context.Context, from, to geo.Point) (routing.Route, error)
}

// DispatchService - маршруты выезда для назначенных инцидентов
type DispatchService interface {
	DispatchRoute(ctx context.Context, caller models.Caller, incidentID uuid.UUID) (*routing.DispatchRoute, error)
	AgentAssignments(ctx context.Context, caller models.Caller) ([]*AssignmentRoute, error)
	ResolveRoute(ctx context.Context, from, to geo.Point) (routing.Route, error)
}

// AssignmentRoute - назначенный инцидент вместе с маршрутом до него
type AssignmentRoute struct {
	Incident *models.Incident
	Route    *routing.DispatchRoute
}

type dispatchService struct {
	repo     IncidentRepository
	resolver RouteResolver
	logger   *logrus.Logger
}

func NewDispatchService(repo IncidentRepository, resolver RouteResolver, logger *logrus.Logger) DispatchService {
	return &dispatchService{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// DispatchRoute считает маршрут до назначенного инцидента
func (s *dispatchService) DispatchRoute(ctx context.Context, caller models.Caller, incidentID uuid.UUID) (*routing.DispatchRoute, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "DispatchRoute",
		"incident_id": incidentID,
	})
	log.Info("Resolving dispatch route")

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if incident.AssignedTo == nil {
		return nil, fmt.Errorf("%w: incident %s has no assigned agent", models.ErrConflict, incidentID)
	}
	if err := authorizeAssignee(caller, incident); err != nil {
		log.WithError(err).Warn("Route requested by unauthorized caller")
		return nil, err
	}

	route, err := s.resolver.ResolveDispatch(ctx, incident.ID, geo.Point{Lat: incident.Latitude, Lng: incident.Longitude})
	if err != nil {
		log.WithError(err).Error("Failed to resolve dispatch route")
		return nil, fmt.Errorf("service: could not resolve route: %w", err)
	}

	log.WithFields(logrus.Fields{
		"distance_km": route.DistanceKm,
		"source":      route.Source,
		"cached":      route.Cached,
	}).Info("Dispatch route resolved")
	return route, nil
}

// AgentAssignments возвращает открытые назначения агента с маршрутами
func (s *dispatchService) AgentAssignments(ctx context.Context, caller models.Caller) ([]*AssignmentRoute, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "dispatch",
		"method":   "AgentAssignments",
		"agent_id": caller.ID,
	})
	log.Info("Listing agent assignments")

	if caller.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: agent identity required", models.ErrForbidden)
	}

	incidents, err := s.repo.ListAssignedTo(ctx, caller.ID, []models.Status{models.StatusAssigned, models.StatusInProgress})
	if err != nil {
		log.WithError(err).Error("Failed to list assignments from repository")
		return nil, fmt.Errorf("service: could not list assignments: %w", err)
	}
	incidents = RankByUrgency(incidents)

	out := make([]*AssignmentRoute, len(incidents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(routeConcurrency)
	for i, inc := range incidents {
		g.Go(func() error {
			route, err := s.resolver.ResolveDispatch(gctx, inc.ID, geo.Point{Lat: inc.Latitude, Lng: inc.Longitude})
			if err != nil {
				return err
			}
			out[i] = &AssignmentRoute{Incident: inc, Route: route}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to resolve assignment routes")
		return nil, fmt.Errorf("service: could not resolve assignment routes: %w", err)
	}

	log.WithField("count", len(out)).Info("Agent assignments listed")
	return out, nil
}

// ResolveRoute - маршрут между произвольными точками, всегда с деградацией до прямой
func (s *dispatchService) ResolveRoute(ctx context.Context, from, to geo.Point) (routing.Route, error) {
	route, err := s.resolver.ResolveRoute(ctx, from, to)
	if err != nil {
		s.logger.WithField("method", "ResolveRoute").WithError(err).Warn("Invalid route request")
		return routing.Route{}, err
	}
	return route, nil
}
