package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/webhook"
	"github.com/shenikar/incident_dispatch/pkg/geo"
	"github.com/sirupsen/logrus"
)

// SubmitReport сливает сообщение с открытым инцидентом поблизости или создаёт новый
func (s *incidentService) SubmitReport(ctx context.Context, caller models.Caller, report models.Report) (*ReportResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "SubmitReport",
		"disaster_type": report.DisasterType,
	})
	log.Info("Processing incident report")

	if err := validateReport(caller, &report); err != nil {
		log.WithError(err).Warn("Report rejected")
		return nil, err
	}

	source := sourceOf(caller)
	reportedBy := ""
	if caller.ID != uuid.Nil {
		reportedBy = caller.ID.String()
	}

	result, err := s.cluster(ctx, log, report, source, reportedBy, "")
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"incident_id":  result.Incident.ID,
		"merged":       result.Merged,
		"report_count": result.Incident.ReportCount,
	}).Info("Report processed successfully")
	return result, nil
}

// IngestExternal заводит инцидент из внешней ленты. Повтор того же externalID не создаёт новый инцидент.
func (s *incidentService) IngestExternal(ctx context.Context, event models.ExternalEvent) (*ReportResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "IngestExternal",
		"external_id": event.ExternalID,
	})
	log.Info("Ingesting external event")

	if strings.TrimSpace(event.ExternalID) == "" {
		return nil, &models.ValidationError{Field: "externalId", Reason: "required"}
	}

	existing, err := s.repo.GetByExternalID(ctx, event.ExternalID)
	if err != nil {
		log.WithError(err).Error("Failed to look up external event")
		return nil, fmt.Errorf("service: could not look up external event: %w", err)
	}
	if existing != nil {
		log.WithField("incident_id", existing.ID).Debug("External event already ingested")
		return &ReportResult{Incident: existing, Merged: true}, nil
	}

	report := models.Report{
		DisasterType: event.DisasterType,
		Severity:     event.Severity,
		Description:  event.Description,
		Latitude:     event.Latitude,
		Longitude:    event.Longitude,
		Address:      event.Address,
	}
	apiCaller := models.Caller{APIClient: true}
	if err := validateReport(apiCaller, &report); err != nil {
		log.WithError(err).Warn("External event rejected")
		return nil, err
	}

	result, err := s.cluster(ctx, log, report, models.SourceAPI, "", event.ExternalID)
	if err != nil {
		return nil, err
	}
	log.WithField("incident_id", result.Incident.ID).WithField("merged", result.Merged).Info("External event ingested")
	return result, nil
}

// cluster выполняет решение merge/create атомарно под блокировкой ячеек кластера
func (s *incidentService) cluster(ctx context.Context, log *logrus.Entry, report models.Report, source models.Source, reportedBy, externalID string) (*ReportResult, error) {
	threshold := s.cfg.ClusterThresholdDeg
	cells := ClusterCells(report.DisasterType, report.Latitude, report.Longitude, threshold)

	var (
		result      *ReportResult
		newlyVerify bool
	)
	err := retryOnConflict(log, func() error {
		return s.repo.WithClusterLock(ctx, cells, func(ctx context.Context, tx IncidentTx) error {
			matches, err := tx.FindOpenNear(ctx, report.DisasterType, report.Latitude, report.Longitude, threshold)
			if err != nil {
				return err
			}

			if target := pickMergeTarget(matches); target != nil {
				merged := target.Clone()
				newlyVerify = applyMerge(merged, report.Reporter, externalID)
				if err := tx.Update(ctx, merged); err != nil {
					return err
				}
				result = &ReportResult{Incident: merged, Merged: true}
				return nil
			}

			incident := newIncident(report, source, reportedBy, externalID)
			if err := tx.Create(ctx, incident); err != nil {
				return err
			}
			result = &ReportResult{Incident: incident, Merged: false}
			return nil
		})
	})
	if err != nil {
		log.WithError(err).Error("Failed to cluster report")
		return nil, fmt.Errorf("service: could not process report: %w", err)
	}

	if result.Merged {
		s.publish(ctx, log, webhook.EventMerged, result.Incident)
		if newlyVerify {
			s.publish(ctx, log, webhook.EventVerified, result.Incident)
		}
	} else {
		s.publish(ctx, log, webhook.EventCreated, result.Incident)
	}
	return result, nil
}

// applyMerge увеличивает счётчик сообщений, при необходимости верифицирует и пересчитывает срочность.
// Возвращает true, если инцидент был верифицирован этим слиянием.
func applyMerge(incident *models.Incident, reporter *models.Reporter, externalID string) bool {
	incident.ReportCount++

	verifiedNow := false
	if incident.ReportCount >= 2 && incident.Status == models.StatusPending {
		incident.Status = models.StatusVerified
		incident.Verified = true
		verifiedNow = true
	}

	incident.UrgencyScore = Urgency(incident.Severity, incident.ReportCount)

	if reporter != nil {
		incident.Reporters = append(incident.Reporters, *reporter)
	}
	if externalID != "" && incident.ExternalID == "" {
		incident.ExternalID = externalID
	}
	return verifiedNow
}

func newIncident(report models.Report, source models.Source, reportedBy, externalID string) *models.Incident {
	status := models.StatusVerified
	if source == models.SourceAnonymous {
		status = models.StatusPending
	}

	incident := &models.Incident{
		ID:           uuid.New(),
		DisasterType: report.DisasterType,
		Severity:     report.Severity,
		Description:  report.Description,
		Latitude:     report.Latitude,
		Longitude:    report.Longitude,
		Address:      report.Address,
		ReportCount:  1,
		UrgencyScore: Urgency(report.Severity, 1),
		Status:       status,
		Verified:     status == models.StatusVerified,
		Source:       source,
		ReportedBy:   reportedBy,
		ExternalID:   externalID,
	}
	if report.Reporter != nil {
		incident.Reporters = []models.Reporter{*report.Reporter}
	}
	return incident
}

// pickMergeTarget выбирает самый ранний по созданию инцидент, при равенстве - меньший ID
func pickMergeTarget(matches []*models.Incident) *models.Incident {
	var target *models.Incident
	for _, m := range matches {
		if m == nil || !m.Status.IsOpen() {
			continue
		}
		if target == nil ||
			m.CreatedAt.Before(target.CreatedAt) ||
			(m.CreatedAt.Equal(target.CreatedAt) && m.ID.String() < target.ID.String()) {
			target = m
		}
	}
	return target
}

func sourceOf(caller models.Caller) models.Source {
	switch {
	case caller.APIClient:
		return models.SourceAPI
	case caller.IsAnonymous():
		return models.SourceAnonymous
	default:
		return models.SourceUser
	}
}

func validateReport(caller models.Caller, report *models.Report) error {
	if !report.DisasterType.IsValid() {
		return &models.ValidationError{Field: "disasterType", Reason: fmt.Sprintf("unknown disaster type %q", report.DisasterType)}
	}
	if report.Severity < 1 || report.Severity > 5 {
		return &models.ValidationError{Field: "severity", Reason: "must be between 1 and 5"}
	}
	report.Description = strings.TrimSpace(report.Description)
	if report.Description == "" {
		return &models.ValidationError{Field: "description", Reason: "required"}
	}
	if err := geo.Validate(geo.Point{Lat: report.Latitude, Lng: report.Longitude}); err != nil {
		return &models.ValidationError{Field: "location", Reason: err.Error()}
	}

	if caller.IsAnonymous() {
		if report.Reporter == nil ||
			strings.TrimSpace(report.Reporter.Name) == "" ||
			strings.TrimSpace(report.Reporter.Contact) == "" {
			return &models.ValidationError{Field: "reporter", Reason: "anonymous reports require name and contact information"}
		}
		if report.Reporter.ReportedAt.IsZero() {
			report.Reporter.ReportedAt = time.Now().UTC()
		}
	} else {
		// контакты нужны только от анонимов
		report.Reporter = nil
	}
	return nil
}

// ClusterCells возвращает отсортированные ключи блокировок: ячейку кандидата и её 8 соседей.
// Размер ячейки вдвое больше порога, поэтому два сообщения, способные совпасть, делят хотя бы одну ячейку.
func ClusterCells(disasterType models.DisasterType, lat, lon, thresholdDeg float64) []int64 {
	size := 2 * thresholdDeg
	row := int64(math.Floor(lat / size))
	col := int64(math.Floor(lon / size))

	seen := make(map[int64]struct{}, 9)
	cells := make([]int64, 0, 9)
	for dr := int64(-1); dr <= 1; dr++ {
		for dc := int64(-1); dc <= 1; dc++ {
			key := cellKey(disasterType, row+dr, col+dc)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			cells = append(cells, key)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })
	return cells
}

func cellKey(disasterType models.DisasterType, row, col int64) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s:%d:%d", disasterType, row, col)
	return int64(h.Sum64())
}
