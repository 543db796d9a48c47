package service_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/repository/memory"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/shenikar/incident_dispatch/internal/webhook"
	"github.com/shenikar/incident_dispatch/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	citizen = models.Caller{ID: uuid.New(), Role: models.RoleCitizen}
	admin   = models.Caller{ID: uuid.New(), Role: models.RoleAdmin}
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestConfig() *config.Config {
	return &config.Config{
		StorageDriver:       config.StorageMemory,
		ClusterThresholdDeg: 0.0045,
		BaseLatitude:        26.629307,
		BaseLongitude:       87.982475,
	}
}

// newMemoryService создает сервис поверх хранилища в памяти
func newMemoryService(t *testing.T) (service.IncidentService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return service.NewIncidentService(store, store, newTestLogger(), newTestConfig(), nil), store
}

func fireReport(lat, lon float64) models.Report {
	return models.Report{
		DisasterType: models.DisasterFire,
		Severity:     3,
		Description:  "Smoke over the market",
		Latitude:     lat,
		Longitude:    lon,
	}
}

func anonymousFireReport(lat, lon float64) models.Report {
	r := fireReport(lat, lon)
	r.Reporter = &models.Reporter{Name: "Ram", Contact: "+977-9800000000"}
	return r
}

func TestSubmitReport_CreatesVerifiedForKnownUser(t *testing.T) {
	svc, _ := newMemoryService(t)

	res, err := svc.SubmitReport(context.Background(), citizen, fireReport(27.7, 85.3))
	require.NoError(t, err)

	assert.False(t, res.Merged)
	assert.Equal(t, 1, res.Incident.ReportCount)
	assert.Equal(t, models.StatusVerified, res.Incident.Status)
	assert.True(t, res.Incident.Verified)
	assert.Equal(t, models.SourceUser, res.Incident.Source)
	assert.Equal(t, citizen.ID.String(), res.Incident.ReportedBy)
	assert.Equal(t, 32.0, res.Incident.UrgencyScore)
	assert.Empty(t, res.Incident.Reporters)
}

func TestSubmitReport_MergesWithinThreshold(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	first, err := svc.SubmitReport(ctx, models.Anonymous, anonymousFireReport(27.7000, 85.3000))
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, first.Incident.Status)
	require.False(t, first.Incident.Verified)

	second, err := svc.SubmitReport(ctx, models.Anonymous, anonymousFireReport(27.7005, 85.3005))
	require.NoError(t, err)

	assert.True(t, second.Merged)
	assert.Equal(t, first.Incident.ID, second.Incident.ID)
	// объект до слияния не изменяется
	assert.Equal(t, 1, first.Incident.ReportCount)
	assert.Equal(t, 2, second.Incident.ReportCount)
	assert.Equal(t, models.StatusVerified, second.Incident.Status)
	assert.True(t, second.Incident.Verified)
	assert.Equal(t, service.Urgency(3, 2), second.Incident.UrgencyScore)
	assert.Len(t, second.Incident.Reporters, 2)
	// центр кластера не смещается
	assert.Equal(t, 27.7000, second.Incident.Latitude)
	assert.Equal(t, 85.3000, second.Incident.Longitude)
}

func TestSubmitReport_DifferentTypeNeverMerges(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	_, err := svc.SubmitReport(ctx, citizen, fireReport(27.7, 85.3))
	require.NoError(t, err)

	flood := fireReport(27.7, 85.3)
	flood.DisasterType = models.DisasterFlood
	res, err := svc.SubmitReport(ctx, citizen, flood)
	require.NoError(t, err)

	assert.False(t, res.Merged)
	assert.Equal(t, 1, res.Incident.ReportCount)

	open, err := svc.ListIncidents(ctx, false)
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestSubmitReport_OutsideThresholdCreatesNew(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	_, err := svc.SubmitReport(ctx, citizen, fireReport(27.7, 85.3))
	require.NoError(t, err)

	res, err := svc.SubmitReport(ctx, citizen, fireReport(27.7100, 85.3))
	require.NoError(t, err)
	assert.False(t, res.Merged)
}

func TestSubmitReport_BoundaryIsDeterministic(t *testing.T) {
	ctx := context.Background()
	decide := func() bool {
		svc, _ := newMemoryService(t)
		_, err := svc.SubmitReport(ctx, citizen, fireReport(27.7, 85.3))
		require.NoError(t, err)
		res, err := svc.SubmitReport(ctx, citizen, fireReport(27.7+0.0045, 85.3))
		require.NoError(t, err)
		return res.Merged
	}

	want := decide()
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, decide())
	}
}

func TestSubmitReport_ExactThresholdIsInclusive(t *testing.T) {
	ctx := context.Background()
	// 0.25 и координаты ниже точно представимы в float64
	cfg := newTestConfig()
	cfg.ClusterThresholdDeg = 0.25
	store := memory.NewStore()
	svc := service.NewIncidentService(store, store, newTestLogger(), cfg, nil)

	_, err := svc.SubmitReport(ctx, citizen, fireReport(10.5, 20.5))
	require.NoError(t, err)
	res, err := svc.SubmitReport(ctx, citizen, fireReport(10.75, 20.25))
	require.NoError(t, err)
	assert.True(t, res.Merged)
}

func TestSubmitReport_CompletedIncidentIsNotMergeTarget(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	first, err := svc.SubmitReport(ctx, citizen, fireReport(27.7, 85.3))
	require.NoError(t, err)

	agent := uuid.New()
	_, err = svc.AssignIncident(ctx, admin, models.Assignment{IncidentID: first.Incident.ID, AgentID: agent})
	require.NoError(t, err)
	_, err = svc.CompleteIncident(ctx, admin, first.Incident.ID, models.FieldReportControlled)
	require.NoError(t, err)

	res, err := svc.SubmitReport(ctx, citizen, fireReport(27.7, 85.3))
	require.NoError(t, err)
	assert.False(t, res.Merged)
	assert.NotEqual(t, first.Incident.ID, res.Incident.ID)
}

func TestSubmitReport_ConcurrentIdenticalReportsCreateOneIncident(t *testing.T) {
	const attempts = 20
	for i := 0; i < attempts; i++ {
		svc, _ := newMemoryService(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		start := make(chan struct{})
		errs := make(chan error, 2)
		for j := 0; j < 2; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				_, err := svc.SubmitReport(ctx, models.Anonymous, anonymousFireReport(27.7, 85.3))
				errs <- err
			}()
		}
		close(start)
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		open, err := svc.ListIncidents(ctx, false)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, 2, open[0].ReportCount)
		assert.Equal(t, models.StatusVerified, open[0].Status)
	}
}

func TestSubmitReport_ConcurrentNeighboursAcrossCellBorder(t *testing.T) {
	// соседние ячейки тоже блокируются, поэтому совпадающие сообщения по разные стороны границы ячейки не дублируются
	cells := service.ClusterCells(models.DisasterFire, 0.0089, 0.0, 0.0045)
	neighbour := service.ClusterCells(models.DisasterFire, 0.0091, 0.0, 0.0045)
	assert.NotEmpty(t, intersect(cells, neighbour))

	svc, _ := newMemoryService(t)
	ctx := context.Background()
	var wg sync.WaitGroup
	for _, lat := range []float64{0.0089, 0.0091} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitReport(ctx, citizen, fireReport(lat, 0))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	open, err := svc.ListIncidents(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, 2, open[0].ReportCount)
}

func intersect(a, b []int64) []int64 {
	set := make(map[int64]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	var out []int64
	for _, v := range b {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func TestSubmitReport_Validation(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		caller models.Caller
		mutate func(r *models.Report)
		field  string
	}{
		{"unknown type", citizen, func(r *models.Report) { r.DisasterType = "volcano" }, "disasterType"},
		{"severity too low", citizen, func(r *models.Report) { r.Severity = 0 }, "severity"},
		{"severity too high", citizen, func(r *models.Report) { r.Severity = 6 }, "severity"},
		{"blank description", citizen, func(r *models.Report) { r.Description = "   " }, "description"},
		{"latitude out of range", citizen, func(r *models.Report) { r.Latitude = 91 }, "location"},
		{"anonymous without reporter", models.Anonymous, func(r *models.Report) { r.Reporter = nil }, "reporter"},
		{"anonymous without contact", models.Anonymous, func(r *models.Report) { r.Reporter = &models.Reporter{Name: "Ram"} }, "reporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := fireReport(27.7, 85.3)
			tt.mutate(&report)

			_, err := svc.SubmitReport(ctx, tt.caller, report)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)

			var vErr *models.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	open, err := svc.ListIncidents(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestSubmitReport_APIClientCreatesVerified(t *testing.T) {
	svc, _ := newMemoryService(t)

	res, err := svc.SubmitReport(context.Background(), models.Caller{APIClient: true}, fireReport(27.7, 85.3))
	require.NoError(t, err)
	assert.Equal(t, models.SourceAPI, res.Incident.Source)
	assert.Equal(t, models.StatusVerified, res.Incident.Status)
}

func TestSubmitReport_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockPublisher(ctrl)
	store := memory.NewStore()
	svc := service.NewIncidentService(store, store, newTestLogger(), newTestConfig(), publisher)
	ctx := context.Background()

	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e webhook.IncidentEvent) error {
			assert.Equal(t, webhook.EventCreated, e.Type)
			return nil
		}),
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e webhook.IncidentEvent) error {
			assert.Equal(t, webhook.EventMerged, e.Type)
			assert.Equal(t, 2, e.ReportCount)
			return nil
		}),
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e webhook.IncidentEvent) error {
			assert.Equal(t, webhook.EventVerified, e.Type)
			// сбой публикации не влияет на результат
			return errors.New("redis down")
		}),
	)

	_, err := svc.SubmitReport(ctx, models.Anonymous, anonymousFireReport(27.7, 85.3))
	require.NoError(t, err)
	res, err := svc.SubmitReport(ctx, models.Anonymous, anonymousFireReport(27.7, 85.3))
	require.NoError(t, err)
	assert.True(t, res.Merged)
}

func TestIngestExternal_DeduplicatesByExternalID(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	event := models.ExternalEvent{
		ExternalID:   "usgs:us7000abcd",
		DisasterType: models.DisasterEarthquake,
		Severity:     4,
		Description:  "M 5.8 - 10 km N of Lamjung",
		Latitude:     28.3,
		Longitude:    84.4,
	}

	first, err := svc.IngestExternal(ctx, event)
	require.NoError(t, err)
	assert.False(t, first.Merged)
	assert.Equal(t, models.SourceAPI, first.Incident.Source)
	assert.Equal(t, models.StatusVerified, first.Incident.Status)
	assert.Equal(t, event.ExternalID, first.Incident.ExternalID)

	again, err := svc.IngestExternal(ctx, event)
	require.NoError(t, err)
	assert.True(t, again.Merged)
	assert.Equal(t, first.Incident.ID, again.Incident.ID)
	assert.Equal(t, 1, again.Incident.ReportCount)
}

func TestIngestExternal_RequiresExternalID(t *testing.T) {
	svc, _ := newMemoryService(t)

	_, err := svc.IngestExternal(context.Background(), models.ExternalEvent{
		DisasterType: models.DisasterEarthquake,
		Severity:     3,
		Description:  "quake",
		Latitude:     28.3,
		Longitude:    84.4,
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListIncidents_RankingAndArchive(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	low, err := svc.SubmitReport(ctx, citizen, models.Report{
		DisasterType: models.DisasterStorm, Severity: 1, Description: "wind", Latitude: 10, Longitude: 10,
	})
	require.NoError(t, err)
	high, err := svc.SubmitReport(ctx, citizen, models.Report{
		DisasterType: models.DisasterFire, Severity: 5, Description: "blaze", Latitude: 20, Longitude: 20,
	})
	require.NoError(t, err)

	open, err := svc.ListIncidents(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, high.Incident.ID, open[0].ID)
	assert.Equal(t, low.Incident.ID, open[1].ID)

	_, err = svc.AssignIncident(ctx, admin, models.Assignment{IncidentID: low.Incident.ID, AgentID: uuid.New()})
	require.NoError(t, err)
	_, err = svc.CompleteIncident(ctx, admin, low.Incident.ID, models.FieldReportOutOfControl)
	require.NoError(t, err)

	open, err = svc.ListIncidents(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, high.Incident.ID, open[0].ID)

	archive, err := svc.ListIncidents(ctx, true)
	require.NoError(t, err)
	require.Len(t, archive, 1)
	assert.Equal(t, low.Incident.ID, archive[0].ID)
	assert.Equal(t, models.FieldReportOutOfControl, archive[0].FieldReport)
}
