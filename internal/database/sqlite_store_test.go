// file: internal/database/sqlite_store_test.go
// version: 1.2.0
// guid: 9a5c2e71-4f08-4d36-b129-c86e3d0a5f74

package database

import (
	"context"
	"os"
	"testing"

	ulid "github.com/oklog/ulid/v2"

	"github.com/vaxtbase/plantmatch/internal/models"
)

// setupTestDB creates a temporary SQLite database for testing
// Returns the store and a cleanup function
func setupTestDB(t *testing.T) (Store, func()) {
	tmpfile := "/tmp/test_plantmatch_" + ulid.Make().String() + ".db"

	store, err := NewSQLiteStore(tmpfile)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.Remove(tmpfile)
	}

	return store, cleanup
}

func mustCreate(t *testing.T, store Store, plant *models.Plant) *models.Plant {
	t.Helper()
	created, err := store.CreatePlant(plant)
	if err != nil {
		t.Fatalf("Failed to create plant %q: %v", plant.Name, err)
	}
	return created
}

func strPtr(s string) *string { return &s }

func TestNewSQLiteStore(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	if store == nil {
		t.Fatal("Expected non-nil store")
	}
}

func TestCreateAndGetPlant(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	plant := &models.Plant{
		Name:     "Rosa gallica 'Charles de Mills'",
		SvName:   strPtr("provinsros"),
		Synonyms: []string{"Rosa gallica 'Bizarre Triomphant'"},
		Group:    strPtr("Rosor"),
	}
	created := mustCreate(t, store, plant)

	if created.ID == "" {
		t.Fatal("Expected generated ULID for empty ID")
	}

	fetched, err := store.GetPlantByID(created.ID)
	if err != nil {
		t.Fatalf("GetPlantByID failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected plant, got nil")
	}
	if fetched.Name != plant.Name {
		t.Errorf("Name = %q, want %q", fetched.Name, plant.Name)
	}
	if fetched.SvName == nil || *fetched.SvName != "provinsros" {
		t.Errorf("SvName = %v, want provinsros", fetched.SvName)
	}
	if len(fetched.Synonyms) != 1 || fetched.Synonyms[0] != "Rosa gallica 'Bizarre Triomphant'" {
		t.Errorf("Synonyms = %v, round-trip failed", fetched.Synonyms)
	}
}

func TestGetPlantByIDMissing(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	plant, err := store.GetPlantByID(ulid.Make().String())
	if err != nil {
		t.Fatalf("GetPlantByID failed: %v", err)
	}
	if plant != nil {
		t.Errorf("Expected nil for missing plant, got %+v", plant)
	}
}

func TestGetPlantByName(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreate(t, store, &models.Plant{Name: "Pinus sylvestris"})

	plant, err := store.GetPlantByName("pinus SYLVESTRIS")
	if err != nil {
		t.Fatalf("GetPlantByName failed: %v", err)
	}
	if plant == nil || plant.Name != "Pinus sylvestris" {
		t.Errorf("GetPlantByName = %+v, want case-insensitive hit", plant)
	}
}

func TestCreatePlantRequiresName(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := store.CreatePlant(&models.Plant{}); err == nil {
		t.Error("Expected error creating plant without name")
	}
}

func TestUpdateAndDeletePlant(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	created := mustCreate(t, store, &models.Plant{Name: "Picea abies"})

	updated, err := store.UpdatePlant(created.ID, &models.Plant{
		Name:   "Picea abies",
		SvName: strPtr("gran"),
	})
	if err != nil {
		t.Fatalf("UpdatePlant failed: %v", err)
	}
	if updated.SvName == nil || *updated.SvName != "gran" {
		t.Errorf("SvName after update = %v, want gran", updated.SvName)
	}

	if err := store.DeletePlant(created.ID); err != nil {
		t.Fatalf("DeletePlant failed: %v", err)
	}
	fetched, err := store.GetPlantByID(created.ID)
	if err != nil {
		t.Fatalf("GetPlantByID failed: %v", err)
	}
	if fetched != nil {
		t.Errorf("Expected plant deleted, got %+v", fetched)
	}
}

func TestUpdateMissingPlant(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := store.UpdatePlant(ulid.Make().String(), &models.Plant{Name: "x"}); err == nil {
		t.Error("Expected error updating missing plant")
	}
}

func TestFetchCandidatesSubstring(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreate(t, store, &models.Plant{Name: "Pinus sylvestris", SvName: strPtr("tall")})
	mustCreate(t, store, &models.Plant{Name: "Picea abies", SvName: strPtr("gran")})
	mustCreate(t, store, &models.Plant{Name: "Rosa gallica"})

	candidates, err := store.FetchCandidates(context.Background(), "pinus", 10)
	if err != nil {
		t.Fatalf("FetchCandidates failed: %v", err)
	}
	if len(candidates) == 0 {
		t.Fatal("Expected candidates for substring hit")
	}
	found := false
	for _, c := range candidates {
		if c.Name == "Pinus sylvestris" {
			found = true
			if !c.HighConfidence {
				t.Error("Expected prefix hit to be flagged high-confidence")
			}
		}
	}
	if !found {
		t.Error("Pinus sylvestris missing from candidates")
	}
}

func TestFetchCandidatesSwedishName(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreate(t, store, &models.Plant{Name: "Pinus sylvestris", SvName: strPtr("tall")})

	candidates, err := store.FetchCandidates(context.Background(), "tall", 10)
	if err != nil {
		t.Fatalf("FetchCandidates failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate via Swedish name, got %d", len(candidates))
	}
	if !candidates[0].HighConfidence {
		t.Error("Expected exact Swedish-name hit to be flagged high-confidence")
	}
}

func TestFetchCandidatesSynonym(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreate(t, store, &models.Plant{
		Name:     "Rosa gallica 'Charles de Mills'",
		Synonyms: []string{"Rosa gallica 'Bizarre Triomphant'"},
	})

	candidates, err := store.FetchCandidates(context.Background(), "bizarre", 10)
	if err != nil {
		t.Fatalf("FetchCandidates failed: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate via synonym, got %d", len(candidates))
	}
}

func TestFetchCandidatesTrigramFallback(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreate(t, store, &models.Plant{Name: "Pinus sylvestris"})
	mustCreate(t, store, &models.Plant{Name: "Quercus robur"})

	// Typo query: no substring hit, must come back through the trigram scan.
	candidates, err := store.FetchCandidates(context.Background(), "pinus sylvesteris", 10)
	if err != nil {
		t.Fatalf("FetchCandidates failed: %v", err)
	}
	found := false
	for _, c := range candidates {
		if c.Name == "Pinus sylvestris" {
			found = true
		}
		if c.Name == "Quercus robur" {
			t.Error("Unrelated plant passed the trigram prefilter")
		}
	}
	if !found {
		t.Error("Typo query did not recover Pinus sylvestris via trigram scan")
	}
}

func TestFetchCandidatesFirstLetterTypo(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreate(t, store, &models.Plant{Name: "Pinus sylvestris"})
	mustCreate(t, store, &models.Plant{Name: "Quercus robur"})

	// A typo in the very first letter: no substring or prefix hit, so the
	// row can only come back through the trigram scan.
	candidates, err := store.FetchCandidates(context.Background(), "oinus sylvestris", 10)
	if err != nil {
		t.Fatalf("FetchCandidates failed: %v", err)
	}
	found := false
	for _, c := range candidates {
		if c.Name == "Pinus sylvestris" {
			found = true
		}
		if c.Name == "Quercus robur" {
			t.Error("Unrelated plant passed the trigram prefilter")
		}
	}
	if !found {
		t.Error("First-letter typo did not recover Pinus sylvestris via trigram scan")
	}
}

func TestFetchCandidatesEmptyQuery(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	candidates, err := store.FetchCandidates(context.Background(), "   ", 10)
	if err != nil {
		t.Fatalf("FetchCandidates failed: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("Expected no candidates for blank query, got %d", len(candidates))
	}
}

func TestFetchCandidatesRespectsLimit(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	for i := 0; i < 20; i++ {
		mustCreate(t, store, &models.Plant{Name: "Rosa gallica " + ulid.Make().String()})
	}

	candidates, err := store.FetchCandidates(context.Background(), "rosa", 5)
	if err != nil {
		t.Fatalf("FetchCandidates failed: %v", err)
	}
	if len(candidates) > 5 {
		t.Errorf("Got %d candidates, want at most 5", len(candidates))
	}
}

func TestCounts(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreate(t, store, &models.Plant{Name: "Rosa gallica", Synonyms: []string{"a", "b"}})
	mustCreate(t, store, &models.Plant{Name: "Picea abies", Synonyms: []string{"c"}})

	plants, err := store.CountPlants()
	if err != nil {
		t.Fatalf("CountPlants failed: %v", err)
	}
	if plants != 2 {
		t.Errorf("CountPlants = %d, want 2", plants)
	}

	synonyms, err := store.CountSynonyms()
	if err != nil {
		t.Fatalf("CountSynonyms failed: %v", err)
	}
	if synonyms != 3 {
		t.Errorf("CountSynonyms = %d, want 3", synonyms)
	}
}

func TestReset(t *testing.T) {
	store, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreate(t, store, &models.Plant{Name: "Rosa gallica"})
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	count, err := store.CountPlants()
	if err != nil {
		t.Fatalf("CountPlants failed: %v", err)
	}
	if count != 0 {
		t.Errorf("CountPlants after Reset = %d, want 0", count)
	}
}
