package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/config"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) (*Worker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewWorker(nil, logger, cfg)
	var sleeps []time.Duration
	w.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return w, &sleeps
}

func samplePayload(t *testing.T) (IncidentEvent, string) {
	event := NewIncidentEvent(EventCreated, &models.Incident{
		ID:           uuid.New(),
		DisasterType: models.DisasterFlood,
		Status:       models.StatusPending,
		Severity:     4,
		ReportCount:  1,
		UrgencyScore: 42,
	})
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestDeliver_SignsPayload(t *testing.T) {
	event, raw := samplePayload(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, raw, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, Sign(raw, "s3cret"), r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	w, sleeps := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	})

	assert.True(t, w.deliver(context.Background(), event, raw))
	assert.Empty(t, *sleeps)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	event, raw := samplePayload(t)
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Empty(t, r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	w, sleeps := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  100 * time.Millisecond,
	})

	assert.True(t, w.deliver(context.Background(), event, raw))
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *sleeps)
}

func TestDeliver_GivesUp(t *testing.T) {
	event, raw := samplePayload(t)
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	w, _ := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
	})

	assert.False(t, w.deliver(context.Background(), event, raw))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_NoURL(t *testing.T) {
	event, raw := samplePayload(t)
	w, _ := newTestWorker(&config.Config{WebhookTimeout: time.Second})
	assert.False(t, w.deliver(context.Background(), event, raw))
}

func TestSign(t *testing.T) {
	// echo -n 'payload' | openssl dgst -sha256 -hmac key
	assert.Equal(t, "5d98b45c90a207fa998ce639fea6f02ecc8cc3f36fef81d694fb856b4d0a28ca", Sign("payload", "key"))
	assert.NotEqual(t, Sign("payload", "key"), Sign("payload", "other"))
}

func TestNewIncidentEvent(t *testing.T) {
	id := uuid.New()
	event := NewIncidentEvent(EventMerged, &models.Incident{
		ID:           id,
		DisasterType: models.DisasterFire,
		Status:       models.StatusVerified,
		ReportCount:  2,
		UrgencyScore: 34,
		Latitude:     27.7,
		Longitude:    85.3,
	})

	assert.Equal(t, EventMerged, event.Type)
	assert.Equal(t, id, event.IncidentID)
	assert.Equal(t, 2, event.ReportCount)
	assert.False(t, event.Timestamp.IsZero())
}

func TestDeliver_StopsBackoffOnShutdown(t *testing.T) {
	event, raw := samplePayload(t)
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	w := NewWorker(nil, logger, &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)
	go func() { done <- w.deliver(ctx, event, raw) }()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case delivered := <-done:
		assert.False(t, delivered)
	case <-time.After(2 * time.Second):
		t.Fatal("deliver did not return after shutdown")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
