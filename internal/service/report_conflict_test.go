package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/repository/memory"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/shenikar/incident_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// interleavingStore выполняет hook один раз сразу после поиска кандидатов на слияние,
// то есть между чтением и записью внутри кластерной блокировки
type interleavingStore struct {
	*memory.Store
	hook func()
}

func (s *interleavingStore) WithClusterLock(ctx context.Context, cells []int64, fn func(ctx context.Context, tx service.IncidentTx) error) error {
	return s.Store.WithClusterLock(ctx, cells, func(ctx context.Context, tx service.IncidentTx) error {
		return fn(ctx, &interleavingTx{IncidentTx: tx, store: s})
	})
}

type interleavingTx struct {
	service.IncidentTx
	store *interleavingStore
}

func (t *interleavingTx) FindOpenNear(ctx context.Context, disasterType models.DisasterType, lat, lon, thresholdDeg float64) ([]*models.Incident, error) {
	found, err := t.IncidentTx.FindOpenNear(ctx, disasterType, lat, lon, thresholdDeg)
	if hook := t.store.hook; hook != nil {
		t.store.hook = nil
		hook()
	}
	return found, err
}

func newInterleavingService(t *testing.T) (service.IncidentService, *interleavingStore) {
	t.Helper()
	store := &interleavingStore{Store: memory.NewStore()}
	return service.NewIncidentService(store, store.Store, newTestLogger(), newTestConfig(), nil), store
}

func TestSubmitReport_CompletionDuringMergeIsNotOverwritten(t *testing.T) {
	svc, store := newInterleavingService(t)
	ctx := context.Background()

	first, err := svc.SubmitReport(ctx, citizen, fireReport(27.7, 85.3))
	require.NoError(t, err)
	agentID := uuid.New()
	_, err = svc.AssignIncident(ctx, admin, models.Assignment{IncidentID: first.Incident.ID, AgentID: agentID})
	require.NoError(t, err)

	store.hook = func() {
		_, err := svc.CompleteIncident(ctx, admin, first.Incident.ID, models.FieldReportControlled)
		require.NoError(t, err)
	}

	second, err := svc.SubmitReport(ctx, citizen, fireReport(27.7005, 85.3005))
	require.NoError(t, err)

	// завершённый инцидент не переоткрывается, сообщение образует новый
	assert.False(t, second.Merged)
	assert.NotEqual(t, first.Incident.ID, second.Incident.ID)

	stored, err := store.GetByID(ctx, first.Incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.Equal(t, models.FieldReportControlled, stored.FieldReport)
	assert.Equal(t, 1, stored.ReportCount)
	require.NotNil(t, stored.AssignedTo)
	assert.Equal(t, agentID, *stored.AssignedTo)
}

func TestSubmitReport_AssignmentDuringMergeIsKept(t *testing.T) {
	svc, store := newInterleavingService(t)
	ctx := context.Background()

	truck := &models.Resource{Name: "Fire truck", Type: models.ResourceVehicle, Quantity: 2, Unit: "units"}
	require.NoError(t, svc.CreateResource(ctx, admin, truck))

	first, err := svc.SubmitReport(ctx, citizen, fireReport(27.7, 85.3))
	require.NoError(t, err)

	agentID := uuid.New()
	store.hook = func() {
		_, err := svc.AssignIncident(ctx, admin, models.Assignment{
			IncidentID:  first.Incident.ID,
			AgentID:     agentID,
			Allocations: []models.ResourceAllocation{{ResourceID: truck.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	second, err := svc.SubmitReport(ctx, citizen, fireReport(27.7005, 85.3005))
	require.NoError(t, err)
	assert.True(t, second.Merged)
	assert.Equal(t, first.Incident.ID, second.Incident.ID)

	stored, err := store.GetByID(ctx, first.Incident.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ReportCount)
	assert.Equal(t, models.StatusAssigned, stored.Status)
	require.NotNil(t, stored.AssignedTo)
	assert.Equal(t, agentID, *stored.AssignedTo)
	require.Len(t, stored.AllocatedResources, 1)
	assert.Equal(t, "Fire truck", stored.AllocatedResources[0].Name)
}

func TestSubmitReport_RetriesOnceOnClusterConflict(t *testing.T) {
	svc, repo, _ := newMockService(t)
	tx := mocks.NewMockIncidentTx(gomock.NewController(t))

	gomock.InOrder(
		repo.EXPECT().
			WithClusterLock(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.ErrConflict),
		repo.EXPECT().
			WithClusterLock(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ []int64, fn func(context.Context, service.IncidentTx) error) error {
				return fn(ctx, tx)
			}),
	)
	tx.EXPECT().FindOpenNear(gomock.Any(), models.DisasterFire, 27.7, 85.3, 0.0045).Return(nil, nil).Times(1)
	tx.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	res, err := svc.SubmitReport(context.Background(), citizen, fireReport(27.7, 85.3))
	require.NoError(t, err)
	assert.False(t, res.Merged)
	assert.Equal(t, 1, res.Incident.ReportCount)
}

func TestSubmitReport_SurfacesClusterConflictAfterRetry(t *testing.T) {
	svc, repo, _ := newMockService(t)

	repo.EXPECT().
		WithClusterLock(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ErrConflict).Times(2)

	_, err := svc.SubmitReport(context.Background(), citizen, fireReport(27.7, 85.3))
	assert.ErrorIs(t, err, models.ErrConflict)
}
