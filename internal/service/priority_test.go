package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUrgency(t *testing.T) {
	assert.Equal(t, 52.0, Urgency(5, 1))
	assert.Equal(t, 12.0, Urgency(1, 1))
	assert.Equal(t, 38.0, Urgency(3, 4))
	// идемпотентность
	assert.Equal(t, Urgency(4, 7), Urgency(4, 7))
}

func TestMergeSort_IsStable(t *testing.T) {
	type pair struct {
		key, seq int
	}
	in := []pair{{3, 0}, {1, 1}, {3, 2}, {2, 3}, {1, 4}, {3, 5}, {2, 6}}

	out := MergeSort(in, func(a, b pair) bool { return a.key < b.key })

	assert.Equal(t, []pair{{1, 1}, {1, 4}, {2, 3}, {2, 6}, {3, 0}, {3, 2}, {3, 5}}, out)
	// исходный срез не меняется
	assert.Equal(t, pair{3, 0}, in[0])
}

func TestMergeSort_Empty(t *testing.T) {
	assert.Empty(t, MergeSort([]int(nil), func(a, b int) bool { return a < b }))
	assert.Equal(t, []int{7}, MergeSort([]int{7}, func(a, b int) bool { return a < b }))
}

func TestRankByUrgency_TieBrokenByCreation(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	a := &models.Incident{ID: uuid.New(), UrgencyScore: 50, CreatedAt: t1}
	b := &models.Incident{ID: uuid.New(), UrgencyScore: 50, CreatedAt: t2}
	c := &models.Incident{ID: uuid.New(), UrgencyScore: 52, CreatedAt: t2.Add(time.Hour)}

	ranked := RankByUrgency([]*models.Incident{b, a, c})

	assert.Equal(t, []*models.Incident{c, a, b}, ranked)
}

func TestRankByUrgency_EqualKeysKeepSourceOrder(t *testing.T) {
	ts := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	a := &models.Incident{ID: uuid.New(), UrgencyScore: 30, CreatedAt: ts}
	b := &models.Incident{ID: uuid.New(), UrgencyScore: 30, CreatedAt: ts}

	assert.Equal(t, []*models.Incident{a, b}, RankByUrgency([]*models.Incident{a, b}))
	assert.Equal(t, []*models.Incident{b, a}, RankByUrgency([]*models.Incident{b, a}))
}

func TestRankByRecency(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	old := &models.Incident{ID: uuid.New(), UrgencyScore: 90, CreatedAt: base, UpdatedAt: base.Add(time.Hour)}
	recent := &models.Incident{ID: uuid.New(), UrgencyScore: 10, CreatedAt: base, UpdatedAt: base.Add(5 * time.Hour)}

	assert.Equal(t, []*models.Incident{recent, old}, RankByRecency([]*models.Incident{old, recent}))
}
