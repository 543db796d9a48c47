// Package memory - хранилище инцидентов и ресурсов в памяти процесса.
// Используется драйвером STORAGE_DRIVER=memory и в тестах сервисного слоя.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_dispatch/internal/models"
	"github.com/shenikar/incident_dispatch/internal/service"
)

const lockStripes = 256

type Store struct {
	mu        sync.RWMutex
	incidents map[uuid.UUID]*models.Incident
	resources map[uuid.UUID]*models.Resource
	// versions растёт при каждой записи инцидента
	versions map[uuid.UUID]uint64
	// clusterLocks - полосатые мьютексы по ключам ячеек кластера
	clusterLocks [lockStripes]sync.Mutex
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{
		incidents: make(map[uuid.UUID]*models.Incident),
		resources: make(map[uuid.UUID]*models.Resource),
		versions:  make(map[uuid.UUID]uint64),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var (
	_ service.IncidentRepository = (*Store)(nil)
	_ service.ResourceRepository = (*Store)(nil)
)

// WithClusterLock захватывает полосы в порядке возрастания, что исключает взаимоблокировки
func (s *Store) WithClusterLock(ctx context.Context, cells []int64, fn func(ctx context.Context, tx service.IncidentTx) error) error {
	stripes := make([]int, 0, len(cells))
	seen := make(map[int]struct{}, len(cells))
	for _, c := range cells {
		idx := int(uint64(c) % lockStripes)
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		stripes = append(stripes, idx)
	}
	sort.Ints(stripes)

	for _, idx := range stripes {
		s.clusterLocks[idx].Lock()
	}
	defer func() {
		for i := len(stripes) - 1; i >= 0; i-- {
			s.clusterLocks[stripes[i]].Unlock()
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &storeTx{store: s, seen: make(map[uuid.UUID]uint64)})
}

type storeTx struct {
	store *Store
	// seen - версии инцидентов, прочитанных через FindOpenNear
	seen map[uuid.UUID]uint64
}

func (t *storeTx) FindOpenNear(_ context.Context, disasterType models.DisasterType, lat, lon, thresholdDeg float64) ([]*models.Incident, error) {
	s := t.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Incident
	for _, inc := range s.incidents {
		if inc.DisasterType != disasterType || !inc.Status.IsOpen() {
			continue
		}
		if abs(inc.Latitude-lat) <= thresholdDeg && abs(inc.Longitude-lon) <= thresholdDeg {
			t.seen[inc.ID] = s.versions[inc.ID]
			out = append(out, inc.Clone())
		}
	}
	return out, nil
}

func (t *storeTx) Create(_ context.Context, incident *models.Incident) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.incidents[incident.ID]; ok {
		return fmt.Errorf("%w: incident %s already exists", models.ErrConflict, incident.ID)
	}
	if incident.ExternalID != "" && s.externalExists(incident.ExternalID, incident.ID) {
		return fmt.Errorf("%w: external id %s already ingested", models.ErrConflict, incident.ExternalID)
	}
	now := s.now()
	incident.CreatedAt = now
	incident.UpdatedAt = now
	s.incidents[incident.ID] = incident.Clone()
	s.versions[incident.ID] = 1
	return nil
}

// Update сохраняет слияние. Если инцидент закрыт или изменён после чтения, возвращает ErrConflict.
func (t *storeTx) Update(_ context.Context, incident *models.Incident) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.incidents[incident.ID]
	if !ok {
		return fmt.Errorf("%w: incident %s", models.ErrNotFound, incident.ID)
	}
	if !current.Status.IsOpen() {
		return fmt.Errorf("%w: incident %s is no longer open", models.ErrConflict, incident.ID)
	}
	if version, read := t.seen[incident.ID]; read && version != s.versions[incident.ID] {
		return fmt.Errorf("%w: incident %s was modified concurrently", models.ErrConflict, incident.ID)
	}
	return s.put(incident)
}

// put сохраняет копию существующего инцидента; требует s.mu
func (s *Store) put(incident *models.Incident) error {
	if _, ok := s.incidents[incident.ID]; !ok {
		return fmt.Errorf("%w: incident %s", models.ErrNotFound, incident.ID)
	}
	if incident.ExternalID != "" && s.externalExists(incident.ExternalID, incident.ID) {
		return fmt.Errorf("%w: external id %s already ingested", models.ErrConflict, incident.ExternalID)
	}
	incident.UpdatedAt = s.now()
	s.incidents[incident.ID] = incident.Clone()
	s.versions[incident.ID]++
	return nil
}

func (s *Store) externalExists(externalID string, except uuid.UUID) bool {
	for id, inc := range s.incidents {
		if id != except && inc.ExternalID == externalID {
			return true
		}
	}
	return false
}

func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inc, ok := s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("%w: incident with id %s", models.ErrNotFound, id)
	}
	return inc.Clone(), nil
}

func (s *Store) GetByExternalID(_ context.Context, externalID string) (*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inc := range s.incidents {
		if inc.ExternalID == externalID {
			return inc.Clone(), nil
		}
	}
	return nil, nil
}

func (s *Store) ListByStatus(_ context.Context, statuses []models.Status) ([]*models.Incident, error) {
	return s.list(func(inc *models.Incident) bool {
		return hasStatus(statuses, inc.Status)
	}), nil
}

func (s *Store) ListAssignedTo(_ context.Context, agentID uuid.UUID, statuses []models.Status) ([]*models.Incident, error) {
	return s.list(func(inc *models.Incident) bool {
		return inc.IsAssignedTo(agentID) && hasStatus(statuses, inc.Status)
	}), nil
}

// list отдаёт копии в порядке создания
func (s *Store) list(keep func(*models.Incident) bool) []*models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Incident, 0)
	for _, inc := range s.incidents {
		if keep(inc) {
			out = append(out, inc.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (s *Store) Mutate(_ context.Context, id uuid.UUID, fn func(incident *models.Incident) error) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("%w: incident with id %s", models.ErrNotFound, id)
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if err := s.put(next); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

// Assign - всё или ничего: при нехватке любого ресурса склад не меняется
func (s *Store) Assign(_ context.Context, id uuid.UUID, allocations []models.ResourceAllocation, fn func(incident *models.Incident) error) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("%w: incident with id %s", models.ErrNotFound, id)
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	staged := make(map[uuid.UUID]*models.Resource, len(allocations))
	for _, alloc := range allocations {
		res, ok := staged[alloc.ResourceID]
		if !ok {
			stored, found := s.resources[alloc.ResourceID]
			if !found {
				return nil, fmt.Errorf("%w: resource with id %s", models.ErrNotFound, alloc.ResourceID)
			}
			copied := *stored
			res = &copied
			staged[alloc.ResourceID] = res
		}
		if err := res.Deduct(alloc.Quantity); err != nil {
			return nil, err
		}
		alloc.Name = res.Name
		next.AllocatedResources = append(next.AllocatedResources, alloc)
	}

	if err := s.put(next); err != nil {
		return nil, err
	}
	now := s.now()
	for rid, res := range staged {
		res.UpdatedAt = now
		s.resources[rid] = res
	}
	return next.Clone(), nil
}

func (s *Store) ListResources(_ context.Context) ([]*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateResource(_ context.Context, resource *models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[resource.ID]; ok {
		return fmt.Errorf("%w: resource %s already exists", models.ErrConflict, resource.ID)
	}
	now := s.now()
	resource.CreatedAt = now
	resource.UpdatedAt = now
	copied := *resource
	s.resources[resource.ID] = &copied
	return nil
}

func hasStatus(statuses []models.Status, st models.Status) bool {
	for _, s := range statuses {
		if s == st {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
