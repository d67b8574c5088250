// file: internal/database/mock_store.go
// version: 1.1.0
// guid: 8e4a1d5f-09b3-47c2-ae68-f25c9b0d13e7

package database

import (
	"context"
	"fmt"
	"strings"
	"sync"

	ulid "github.com/oklog/ulid/v2"

	"github.com/vaxtbase/plantmatch/internal/models"
)

// MockStore is an in-memory Store for tests. Individual methods can be
// overridden through the *Func fields; otherwise a simple map-backed
// implementation answers, with FetchCandidates doing a substring filter.
type MockStore struct {
	mu sync.RWMutex

	plants map[string]models.Plant

	// FetchCandidatesFunc overrides FetchCandidates when set, e.g. to
	// inject provider failures.
	FetchCandidatesFunc func(ctx context.Context, query string, limit int) ([]models.Plant, error)

	// FetchCalls tracks every FetchCandidates invocation.
	FetchCalls []string
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{plants: make(map[string]models.Plant)}
}

// Close is a no-op for the mock.
func (m *MockStore) Close() error { return nil }

// Reset removes all plants.
func (m *MockStore) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plants = make(map[string]models.Plant)
	return nil
}

// FetchCandidates filters plants whose name, Swedish name or any synonym
// contains the query as a substring, or clears the trigram threshold.
func (m *MockStore) FetchCandidates(ctx context.Context, query string, limit int) ([]models.Plant, error) {
	m.mu.Lock()
	m.FetchCalls = append(m.FetchCalls, query)
	override := m.FetchCandidatesFunc
	m.mu.Unlock()

	if override != nil {
		return override(ctx, query, limit)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil, nil
	}
	queryTris := generateTrigrams(q)

	m.mu.RLock()
	defer m.mu.RUnlock()
	var candidates []models.Plant
	for _, plant := range m.plants {
		if len(candidates) >= limit {
			break
		}
		if plant.Name == "" {
			continue
		}
		if containsQuery(q, plant) {
			plant.HighConfidence = isHighConfidence(q, plant)
			candidates = append(candidates, plant)
		} else if bestTrigramScore(queryTris, plant) >= TrigramThreshold {
			candidates = append(candidates, plant)
		}
	}
	return candidates, nil
}

func containsQuery(q string, plant models.Plant) bool {
	if strings.Contains(strings.ToLower(plant.Name), q) {
		return true
	}
	if plant.SvName != nil && strings.Contains(strings.ToLower(*plant.SvName), q) {
		return true
	}
	for _, syn := range plant.Synonyms {
		if strings.Contains(strings.ToLower(syn), q) {
			return true
		}
	}
	return false
}

// GetPlantByID returns a plant or nil when absent.
func (m *MockStore) GetPlantByID(id string) (*models.Plant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if plant, ok := m.plants[id]; ok {
		return &plant, nil
	}
	return nil, nil
}

// GetPlantByName returns the first plant with a case-insensitive exact
// name match, or nil.
func (m *MockStore) GetPlantByName(name string) (*models.Plant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, plant := range m.plants {
		if strings.EqualFold(plant.Name, name) {
			p := plant
			return &p, nil
		}
	}
	return nil, nil
}

// GetAllPlants returns all plants; pagination is ignored by the mock
// beyond the limit.
func (m *MockStore) GetAllPlants(limit, offset int) ([]models.Plant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	plants := make([]models.Plant, 0, len(m.plants))
	for _, plant := range m.plants {
		plants = append(plants, plant)
	}
	if offset >= len(plants) {
		return nil, nil
	}
	plants = plants[offset:]
	if limit > 0 && len(plants) > limit {
		plants = plants[:limit]
	}
	return plants, nil
}

// CreatePlant stores a plant, minting a ULID when the ID is empty.
func (m *MockStore) CreatePlant(plant *models.Plant) (*models.Plant, error) {
	if plant.Name == "" {
		return nil, fmt.Errorf("plant name is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if plant.ID == "" {
		plant.ID = ulid.Make().String()
	}
	m.plants[plant.ID] = *plant
	return plant, nil
}

// UpdatePlant replaces a stored plant.
func (m *MockStore) UpdatePlant(id string, plant *models.Plant) (*models.Plant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plants[id]; !ok {
		return nil, fmt.Errorf("plant not found: %s", id)
	}
	plant.ID = id
	m.plants[id] = *plant
	return plant, nil
}

// DeletePlant removes a plant.
func (m *MockStore) DeletePlant(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.plants, id)
	return nil
}

// CountPlants returns the number of stored plants.
func (m *MockStore) CountPlants() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plants), nil
}

// CountSynonyms returns the total synonym count.
func (m *MockStore) CountSynonyms() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, plant := range m.plants {
		count += len(plant.Synonyms)
	}
	return count, nil
}
