package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/routing"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/shenikar/incident_dispatch/internal/service/mocks"
	"github.com/shenikar/incident_dispatch/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDispatchService(t *testing.T) (service.DispatchService, *mocks.MockIncidentRepository, *mocks.MockRouteResolver) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIncidentRepository(ctrl)
	resolver := mocks.NewMockRouteResolver(ctrl)
	return service.NewDispatchService(repo, resolver, newTestLogger()), repo, resolver
}

func TestDispatchRoute_RequiresAssignee(t *testing.T) {
	svc, repo, resolver := newTestDispatchService(t)
	incident := &models.Incident{ID: uuid.New(), Status: models.StatusVerified, Latitude: 27.7, Longitude: 85.3}

	repo.EXPECT().GetByID(gomock.Any(), incident.ID).Return(incident, nil)
	resolver.EXPECT().ResolveDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.DispatchRoute(context.Background(), admin, incident.ID)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestDispatchRoute_Authorization(t *testing.T) {
	agentID := uuid.New()
	incident := &models.Incident{ID: uuid.New(), Status: models.StatusAssigned, AssignedTo: &agentID, Latitude: 27.7, Longitude: 85.3}
	route := &routing.DispatchRoute{
		IncidentID: incident.ID,
		DistanceKm: 120.5,
		GraphPath:  []string{routing.BaseNode, routing.IncidentNode(incident.ID)},
		Route:      routing.Route{Path: []geo.Point{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}, Source: routing.SourceRoad},
	}

	t.Run("assignee", func(t *testing.T) {
		svc, repo, resolver := newTestDispatchService(t)
		repo.EXPECT().GetByID(gomock.Any(), incident.ID).Return(incident, nil)
		resolver.EXPECT().ResolveDispatch(gomock.Any(), incident.ID, geo.Point{Lat: 27.7, Lng: 85.3}).Return(route, nil)

		got, err := svc.DispatchRoute(context.Background(), models.Caller{ID: agentID, Role: models.RoleAgent}, incident.ID)
		require.NoError(t, err)
		assert.Equal(t, route, got)
	})

	t.Run("other agent", func(t *testing.T) {
		svc, repo, resolver := newTestDispatchService(t)
		repo.EXPECT().GetByID(gomock.Any(), incident.ID).Return(incident, nil)
		resolver.EXPECT().ResolveDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.DispatchRoute(context.Background(), models.Caller{ID: uuid.New(), Role: models.RoleAgent}, incident.ID)
		assert.ErrorIs(t, err, models.ErrForbidden)
	})
}

func TestDispatchRoute_NotFound(t *testing.T) {
	svc, repo, _ := newTestDispatchService(t)
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, models.ErrNotFound)

	_, err := svc.DispatchRoute(context.Background(), admin, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAgentAssignments(t *testing.T) {
	svc, repo, resolver := newTestDispatchService(t)
	agent := models.Caller{ID: uuid.New(), Role: models.RoleAgent}
	low := &models.Incident{ID: uuid.New(), UrgencyScore: 12, Latitude: 1, Longitude: 1}
	high := &models.Incident{ID: uuid.New(), UrgencyScore: 52, Latitude: 2, Longitude: 2}

	repo.EXPECT().
		ListAssignedTo(gomock.Any(), agent.ID, []models.Status{models.StatusAssigned, models.StatusInProgress}).
		Return([]*models.Incident{low, high}, nil)
	resolver.EXPECT().
		ResolveDispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID, to geo.Point) (*routing.DispatchRoute, error) {
			return &routing.DispatchRoute{IncidentID: id, Route: routing.Route{Path: []geo.Point{to}}}, nil
		}).Times(2)

	items, err := svc.AgentAssignments(context.Background(), agent)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, high.ID, items[0].Incident.ID)
	assert.Equal(t, high.ID, items[0].Route.IncidentID)
	assert.Equal(t, low.ID, items[1].Incident.ID)
	assert.Equal(t, low.ID, items[1].Route.IncidentID)
}

func TestAgentAssignments_ResolverError(t *testing.T) {
	svc, repo, resolver := newTestDispatchService(t)
	agent := models.Caller{ID: uuid.New(), Role: models.RoleAgent}

	repo.EXPECT().ListAssignedTo(gomock.Any(), agent.ID, gomock.Any()).
		Return([]*models.Incident{{ID: uuid.New(), Latitude: 95}}, nil)
	resolver.EXPECT().ResolveDispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &models.ValidationError{Field: "location", Reason: "out of range"})

	_, err := svc.AgentAssignments(context.Background(), agent)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAgentAssignments_AnonymousForbidden(t *testing.T) {
	svc, repo, _ := newTestDispatchService(t)
	repo.EXPECT().ListAssignedTo(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AgentAssignments(context.Background(), models.Anonymous)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestResolveRoute_PassesThrough(t *testing.T) {
	svc, _, resolver := newTestDispatchService(t)
	from, to := geo.Point{Lat: 1, Lng: 2}, geo.Point{Lat: 3, Lng: 4}

	resolver.EXPECT().ResolveRoute(gomock.Any(), from, to).
		Return(routing.Route{Path: []geo.Point{from, to}, Source: routing.SourceStraightLine, Warning: routing.FallbackWarning}, nil)

	got, err := svc.ResolveRoute(context.Background(), from, to)
	require.NoError(t, err)
	assert.True(t, got.Degraded())

	resolver.EXPECT().ResolveRoute(gomock.Any(), gomock.Any(), gomock.Any()).Return(routing.Route{}, errors.New("boom"))
	_, err = svc.ResolveRoute(context.Background(), from, to)
	assert.Error(t, err)
}
