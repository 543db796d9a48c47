// Package detect опрашивает внешние ленты обнаружения и заводит по ним инциденты.
package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

// Ingester - часть IncidentService, нужная поллеру
type Ingester interface {
	IngestExternal(ctx context.Context, event models.ExternalEvent) (*service.ReportResult, error)
}

// feed - GeoJSON FeatureCollection в формате USGS
type feed struct {
	Features []feature `json:"features"`
}

type feature struct {
	ID         string `json:"id"`
	Properties struct {
		Mag   *float64 `json:"mag"`
		Place string   `json:"place"`
		Title string   `json:"title"`
	} `json:"properties"`
	Geometry struct {
		// [lng, lat, depth]
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}

type Poller struct {
	url        string
	interval   time.Duration
	ingester   Ingester
	logger     *logrus.Logger
	httpClient *http.Client

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewPoller(url string, interval time.Duration, ingester Ingester, logger *logrus.Logger) *Poller {
	return &Poller{
		url:        url,
		interval:   interval,
		ingester:   ingester,
		logger:     logger,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		seen:       make(map[string]struct{}),
	}
}

// Start запускает опрос в фоне; при нулевом интервале ничего не делает
func (p *Poller) Start(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Info("Detection feed polling is disabled")
		return
	}
	p.logger.WithField("url", p.url).WithField("interval", p.interval).Info("Starting detection feed poller")

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			if _, err := p.Poll(ctx); err != nil {
				p.logger.WithError(err).Warn("Detection feed poll failed")
			}
			select {
			case <-ctx.Done():
				p.logger.Info("Detection feed poller stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

// Poll выполняет один проход по ленте и возвращает число переданных событий
func (p *Poller) Poll(ctx context.Context) (int, error) {
	log := p.logger.WithField("method", "Poll")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create feed request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var body feed
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode feed: %w", err)
	}

	ingested := 0
	for _, f := range body.Features {
		event, ok := toEvent(f)
		if !ok {
			log.WithField("external_id", f.ID).Debug("Skipping malformed feature")
			continue
		}
		if p.isSeen(event.ExternalID) {
			continue
		}
		if _, err := p.ingester.IngestExternal(ctx, event); err != nil {
			log.WithError(err).WithField("external_id", event.ExternalID).Warn("Failed to ingest feed event")
			continue
		}
		p.markSeen(event.ExternalID)
		ingested++
	}

	log.WithField("ingested", ingested).Debug("Detection feed polled")
	return ingested, nil
}

func (p *Poller) isSeen(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.seen[id]
	return ok
}

func (p *Poller) markSeen(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen[id] = struct{}{}
}

func toEvent(f feature) (models.ExternalEvent, bool) {
	if f.ID == "" || f.Properties.Mag == nil || len(f.Geometry.Coordinates) < 2 {
		return models.ExternalEvent{}, false
	}
	description := f.Properties.Title
	if description == "" {
		description = fmt.Sprintf("M %.1f earthquake", *f.Properties.Mag)
	}
	return models.ExternalEvent{
		ExternalID:   "usgs:" + f.ID,
		DisasterType: models.DisasterEarthquake,
		Severity:     Severity(*f.Properties.Mag),
		Description:  description,
		Latitude:     f.Geometry.Coordinates[1],
		Longitude:    f.Geometry.Coordinates[0],
		Address:      f.Properties.Place,
	}, true
}

// Severity переводит магнитуду в шкалу 1..5
func Severity(mag float64) int {
	s := int(math.Ceil(mag - 2))
	return min(max(s, 1), 5)
}
