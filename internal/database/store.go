// file: internal/database/store.go
// version: 1.3.0
// guid: 2a8f4c6d-1b93-4e70-9c25-d47e0a81f3b2

package database

import (
	"context"
	"fmt"

	"github.com/vaxtbase/plantmatch/internal/models"
)

// Store defines the candidate-provider interface over the persisted plant
// catalog. FetchCandidates is the engine's only suspension point: a
// read-only, coarse-prefiltered lookup that narrows the catalog before the
// precise scoring pipeline runs.
type Store interface {
	// Lifecycle
	Close() error
	Reset() error

	// Candidate provider contract: at most limit rows pre-filtered by
	// substring/prefix match or trigram similarity against the name,
	// Swedish name and synonym fields. Exact ranking is not the store's
	// job.
	FetchCandidates(ctx context.Context, query string, limit int) ([]models.Plant, error)

	// Plants
	GetPlantByID(id string) (*models.Plant, error)
	GetPlantByName(name string) (*models.Plant, error)
	GetAllPlants(limit, offset int) ([]models.Plant, error)
	CreatePlant(plant *models.Plant) (*models.Plant, error) // Generates ULID if ID is empty
	UpdatePlant(id string, plant *models.Plant) (*models.Plant, error)
	DeletePlant(id string) error
	CountPlants() (int, error)
	CountSynonyms() (int, error)
}

// GlobalStore is the process-wide store instance set by InitializeStore.
var GlobalStore Store

// InitializeStore opens the configured store. Only SQLite is supported as
// a persisted backend; tests use MockStore directly.
func InitializeStore(path string) error {
	store, err := NewSQLiteStore(path)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	GlobalStore = store
	return nil
}

// CloseStore closes the global store if one is open.
func CloseStore() error {
	if GlobalStore == nil {
		return nil
	}
	err := GlobalStore.Close()
	GlobalStore = nil
	return err
}
