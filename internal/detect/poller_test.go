package detect

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `{
	"type": "FeatureCollection",
	"features": [
		{"id": "us7000abcd", "properties": {"mag": 5.8, "place": "10 km N of Besisahar, Nepal", "title": "M 5.8 - 10 km N of Besisahar, Nepal"}, "geometry": {"type": "Point", "coordinates": [84.38, 28.32, 10.0]}},
		{"id": "us7000efgh", "properties": {"mag": 2.1, "place": "Somewhere", "title": ""}, "geometry": {"type": "Point", "coordinates": [85.3, 27.7, 5.0]}},
		{"id": "broken", "properties": {"mag": null}, "geometry": {"type": "Point", "coordinates": [0, 0]}}
	]
}`

type fakeIngester struct {
	mu     sync.Mutex
	events []models.ExternalEvent
	err    error
}

func (f *fakeIngester) IngestExternal(_ context.Context, event models.ExternalEvent) (*service.ReportResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.events = append(f.events, event)
	return &service.ReportResult{Incident: &models.Incident{ExternalID: event.ExternalID}}, nil
}

func newTestPoller(t *testing.T, body string, status int, ingester Ingester) *Poller {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewPoller(server.URL, 0, ingester, logger)
}

func TestPoll_IngestsFeatures(t *testing.T) {
	ingester := &fakeIngester{}
	poller := newTestPoller(t, sampleFeed, http.StatusOK, ingester)

	n, err := poller.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, ingester.events, 2)

	first := ingester.events[0]
	assert.Equal(t, "usgs:us7000abcd", first.ExternalID)
	assert.Equal(t, models.DisasterEarthquake, first.DisasterType)
	assert.Equal(t, 4, first.Severity)
	assert.Equal(t, 28.32, first.Latitude)
	assert.Equal(t, 84.38, first.Longitude)
	assert.Equal(t, "10 km N of Besisahar, Nepal", first.Address)

	second := ingester.events[1]
	assert.Equal(t, 1, second.Severity)
	assert.Equal(t, "M 2.1 earthquake", second.Description)
}

func TestPoll_SkipsSeenEvents(t *testing.T) {
	ingester := &fakeIngester{}
	poller := newTestPoller(t, sampleFeed, http.StatusOK, ingester)

	_, err := poller.Poll(context.Background())
	require.NoError(t, err)
	n, err := poller.Poll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, n)
	assert.Len(t, ingester.events, 2)
}

func TestPoll_IngestFailureIsRetriedNextPoll(t *testing.T) {
	ingester := &fakeIngester{err: errors.New("db down")}
	poller := newTestPoller(t, sampleFeed, http.StatusOK, ingester)

	n, err := poller.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	ingester.err = nil
	n, err = poller.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPoll_BadResponse(t *testing.T) {
	_, err := newTestPoller(t, "oops", http.StatusServiceUnavailable, &fakeIngester{}).Poll(context.Background())
	assert.Error(t, err)

	_, err = newTestPoller(t, "{not json", http.StatusOK, &fakeIngester{}).Poll(context.Background())
	assert.Error(t, err)
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		mag  float64
		want int
	}{
		{-1, 1},
		{2.5, 1},
		{3.0, 1},
		{3.1, 2},
		{4.5, 3},
		{5.8, 4},
		{6.9, 5},
		{9.1, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Severity(tt.mag), "mag %.1f", tt.mag)
	}
}
