package service

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterCells(t *testing.T) {
	cells := ClusterCells(models.DisasterFire, 27.7, 85.3, 0.0045)
	require.Len(t, cells, 9)
	assert.True(t, sort.SliceIsSorted(cells, func(i, j int) bool { return cells[i] < cells[j] }))
	assert.Equal(t, cells, ClusterCells(models.DisasterFire, 27.7, 85.3, 0.0045))

	// разные типы не делят блокировки
	flood := ClusterCells(models.DisasterFlood, 27.7, 85.3, 0.0045)
	for _, c := range flood {
		assert.NotContains(t, cells, c)
	}
}

func TestPickMergeTarget_EarliestCreatedWins(t *testing.T) {
	now := time.Now()
	older := &models.Incident{ID: uuid.New(), Status: models.StatusVerified, CreatedAt: now.Add(-time.Hour)}
	newer := &models.Incident{ID: uuid.New(), Status: models.StatusPending, CreatedAt: now}
	done := &models.Incident{ID: uuid.New(), Status: models.StatusCompleted, CreatedAt: now.Add(-2 * time.Hour)}

	assert.Equal(t, older, pickMergeTarget([]*models.Incident{newer, done, older}))
	assert.Nil(t, pickMergeTarget([]*models.Incident{done}))
	assert.Nil(t, pickMergeTarget(nil))
}

func TestPickMergeTarget_TieBrokenByID(t *testing.T) {
	ts := time.Now()
	a := &models.Incident{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Status: models.StatusVerified, CreatedAt: ts}
	b := &models.Incident{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Status: models.StatusVerified, CreatedAt: ts}

	assert.Equal(t, a, pickMergeTarget([]*models.Incident{b, a}))
	assert.Equal(t, a, pickMergeTarget([]*models.Incident{a, b}))
}

func TestApplyMerge(t *testing.T) {
	inc := &models.Incident{Severity: 4, ReportCount: 1, Status: models.StatusPending}
	reporter := &models.Reporter{Name: "Sita", Contact: "sita@example.org"}

	verified := applyMerge(inc, reporter, "usgs:1")
	assert.True(t, verified)
	assert.Equal(t, 2, inc.ReportCount)
	assert.Equal(t, Urgency(4, 2), inc.UrgencyScore)
	assert.Equal(t, models.StatusVerified, inc.Status)
	assert.Equal(t, "usgs:1", inc.ExternalID)
	require.Len(t, inc.Reporters, 1)

	// уже верифицированный не верифицируется повторно, externalID не перезаписывается
	verified = applyMerge(inc, nil, "usgs:2")
	assert.False(t, verified)
	assert.Equal(t, 3, inc.ReportCount)
	assert.Equal(t, "usgs:1", inc.ExternalID)
}
