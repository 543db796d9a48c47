package routing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/pkg/geo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	BaseNode = "BASE"

	FallbackWarning = "Road route unavailable, showing straight line from base to incident"
)

// PathSource - откуда получена ломаная
type PathSource string

const (
	SourceRoad         PathSource = "road"
	SourceStraightLine PathSource = "straight_line"
)

// Route - ломаная для отображения
type Route struct {
	Path    []geo.Point `json:"path"`
	Source  PathSource  `json:"source"`
	Warning string      `json:"warning,omitempty"`
	Cached  bool        `json:"cached"`
}

// Degraded возвращает true, если вместо дорожного маршрута отдана прямая линия
func (r Route) Degraded() bool {
	return r.Source == SourceStraightLine
}

// DispatchRoute - маршрут от базы до инцидента
type DispatchRoute struct {
	IncidentID uuid.UUID `json:"incident_id"`
	// DistanceKm - базовое расстояние по прямой, доступно всегда
	DistanceKm float64  `json:"distance_km"`
	GraphPath  []string `json:"graph_path"`
	Route
}

// Resolver строит маршрут от фиксированной базы
type Resolver struct {
	base     geo.Point
	provider Provider
	cache    Cache
	timeout  time.Duration
	logger   *logrus.Logger
	group    singleflight.Group
}

func NewResolver(base geo.Point, provider Provider, cache Cache, timeout time.Duration, logger *logrus.Logger) *Resolver {
	if cache == nil {
		cache = NewMemoryCache(0)
	}
	return &Resolver{
		base:     base,
		provider: provider,
		cache:    cache,
		timeout:  timeout,
		logger:   logger,
	}
}

func (r *Resolver) Base() geo.Point {
	return r.base
}

// ResolveDispatch считает базовое расстояние и ломаную от базы до инцидента.
// Ошибка возвращается только для невалидных координат: сбой провайдера приводит к прямой линии.
func (r *Resolver) ResolveDispatch(ctx context.Context, incidentID uuid.UUID, to geo.Point) (*DispatchRoute, error) {
	log := r.logger.WithFields(logrus.Fields{
		"component":   "routing",
		"method":      "ResolveDispatch",
		"incident_id": incidentID,
	})

	distance, graphPath, err := r.baseline(incidentID, to)
	if err != nil {
		log.WithError(err).Warn("Invalid incident coordinates")
		return nil, err
	}

	result := &DispatchRoute{
		IncidentID: incidentID,
		DistanceKm: distance,
		GraphPath:  graphPath,
	}

	cached, err := r.cache.Get(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to read route cache")
	}
	if len(cached) > 0 {
		log.Debug("Route cache hit")
		result.Route = Route{Path: cached, Source: SourceRoad, Cached: true}
		return result, nil
	}

	// одновременные запросы по одному инциденту делят один вызов провайдера.
	// Общий вызов не зависит от отмены первого запроса, его ограничивает только r.timeout.
	shared := context.WithoutCancel(ctx)
	v, _, _ := r.group.Do(incidentID.String(), func() (any, error) {
		route := r.roadOrFallback(shared, log, r.base, to)
		if !route.Degraded() {
			if err := r.cache.Set(shared, incidentID, route.Path); err != nil {
				log.WithError(err).Warn("Failed to store route in cache")
			}
		}
		return route, nil
	})
	result.Route = v.(Route)
	return result, nil
}

// ResolveRoute возвращает ломаную между двумя произвольными точками без кеширования
func (r *Resolver) ResolveRoute(ctx context.Context, from, to geo.Point) (Route, error) {
	if err := geo.Validate(from); err != nil {
		return Route{}, &models.ValidationError{Field: "from", Reason: err.Error()}
	}
	if err := geo.Validate(to); err != nil {
		return Route{}, &models.ValidationError{Field: "to", Reason: err.Error()}
	}

	log := r.logger.WithFields(logrus.Fields{
		"component": "routing",
		"method":    "ResolveRoute",
	})
	return r.roadOrFallback(ctx, log, from, to), nil
}

// baseline строит двухузловой граф BASE <-> INCIDENT и прогоняет по нему Дейкстру
func (r *Resolver) baseline(incidentID uuid.UUID, to geo.Point) (float64, []string, error) {
	weight, err := geo.DistanceKm(r.base, to)
	if err != nil {
		return 0, nil, &models.ValidationError{Field: "location", Reason: err.Error()}
	}

	target := IncidentNode(incidentID)
	g := geo.Graph{}
	g.AddUndirected(BaseNode, target, weight)

	res, ok, err := geo.ShortestPath(g, BaseNode, target)
	if err != nil {
		return 0, nil, fmt.Errorf("routing: shortest path: %w", err)
	}
	if !ok {
		return 0, nil, fmt.Errorf("routing: no path from base to %s", target)
	}
	return res.Distance, res.Path, nil
}

func (r *Resolver) roadOrFallback(ctx context.Context, log *logrus.Entry, from, to geo.Point) Route {
	path, err := r.fetchRoad(ctx, from, to)
	if err != nil {
		log.WithError(err).Warn("Road routing degraded, falling back to straight line")
		return Route{
			Path:    geo.StraightLine(from, to),
			Source:  SourceStraightLine,
			Warning: FallbackWarning,
		}
	}
	return Route{Path: path, Source: SourceRoad}
}

func (r *Resolver) fetchRoad(ctx context.Context, from, to geo.Point) ([]geo.Point, error) {
	if r.provider == nil {
		return nil, fmt.Errorf("%w: %w", models.ErrExternalDegraded, ErrNotConfigured)
	}

	callCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	path, err := r.provider.Route(callCtx, from, to)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: routing timed out after %s", models.ErrExternalDegraded, r.timeout)
		}
		return nil, fmt.Errorf("%w: %w", models.ErrExternalDegraded, err)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %w", models.ErrExternalDegraded, ErrNoRoute)
	}
	return path, nil
}

// IncidentNode - идентификатор узла инцидента в графе маршрута
func IncidentNode(incidentID uuid.UUID) string {
	return "INCIDENT_" + incidentID.String()
}
