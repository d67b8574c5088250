// file: internal/database/sqlite_store.go
// version: 1.3.0
// guid: 5b0d9e27-c431-48a6-bf18-3e7a62d90c45

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	ulid "github.com/oklog/ulid/v2"

	"github.com/vaxtbase/plantmatch/internal/models"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

const plantSelectColumns = `id, name, sv_name, synonyms, plant_group`

func scanPlant(scanner rowScanner, plant *models.Plant) error {
	var svName, synonyms, group sql.NullString
	if err := scanner.Scan(&plant.ID, &plant.Name, &svName, &synonyms, &group); err != nil {
		return err
	}
	if svName.Valid && svName.String != "" {
		plant.SvName = &svName.String
	}
	if group.Valid && group.String != "" {
		plant.Group = &group.String
	}
	plant.Synonyms = SplitSynonyms(synonyms.String)
	return nil
}

// SplitSynonyms decodes a pipe-joined synonym column into a clean slice.
// The canonical delimiter is " | " but legacy rows joined on a bare "|",
// so each token is trimmed after splitting.
func SplitSynonyms(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, "|")
	synonyms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			synonyms = append(synonyms, p)
		}
	}
	return synonyms
}

// JoinSynonyms encodes a synonym slice with the canonical delimiter.
func JoinSynonyms(synonyms []string) string {
	return strings.Join(synonyms, models.SynonymDelimiter)
}

// SQLiteStore implements the Store interface using SQLite3
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// createTables creates all required tables
func (s *SQLiteStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		sv_name TEXT,
		synonyms TEXT,
		plant_group TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_plants_name ON plants(name);
	CREATE INDEX IF NOT EXISTS idx_plants_sv_name ON plants(sv_name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Reset removes all plants
func (s *SQLiteStore) Reset() error {
	_, err := s.db.Exec("DELETE FROM plants")
	return err
}

// FetchCandidates returns at most limit rows coarse-filtered against the
// query. Substring/prefix hits via LIKE come first (exact and prefix hits
// are flagged high-confidence); if that leaves room, a trigram-similarity
// scan over the remaining catalog fills up to the limit. Rows without a
// name are skipped and logged rather than handed to the scoring pipeline.
func (s *SQLiteStore) FetchCandidates(ctx context.Context, query string, limit int) ([]models.Plant, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil, nil
	}

	likeQuery := fmt.Sprintf(`SELECT %s FROM plants
		WHERE lower(name) LIKE ?
		   OR lower(COALESCE(sv_name, '')) LIKE ?
		   OR lower(COALESCE(synonyms, '')) LIKE ?
		ORDER BY name LIMIT ?`, plantSelectColumns)
	pattern := "%" + q + "%"
	rows, err := s.db.QueryContext(ctx, likeQuery, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("candidate query failed: %w", err)
	}

	seen := make(map[string]struct{}, limit)
	candidates := make([]models.Plant, 0, limit)
	candidates, err = s.collectCandidates(rows, q, seen, candidates, limit)
	if err != nil {
		return nil, err
	}

	if len(candidates) < limit {
		candidates, err = s.trigramScan(ctx, q, seen, candidates, limit)
		if err != nil {
			return nil, err
		}
	}

	return candidates, nil
}

func (s *SQLiteStore) collectCandidates(rows *sql.Rows, q string, seen map[string]struct{}, candidates []models.Plant, limit int) ([]models.Plant, error) {
	defer rows.Close()
	for rows.Next() {
		var plant models.Plant
		if err := scanPlant(rows, &plant); err != nil {
			return candidates, err
		}
		if plant.Name == "" {
			log.Printf("skipping candidate %s: missing name", plant.ID)
			continue
		}
		if _, ok := seen[plant.ID]; ok {
			continue
		}
		seen[plant.ID] = struct{}{}
		plant.HighConfidence = isHighConfidence(q, plant)
		candidates = append(candidates, plant)
		if len(candidates) >= limit {
			break
		}
	}
	return candidates, rows.Err()
}

// trigramScan walks the catalog and keeps rows whose best name-field
// trigram similarity clears the prefilter threshold.
func (s *SQLiteStore) trigramScan(ctx context.Context, q string, seen map[string]struct{}, candidates []models.Plant, limit int) ([]models.Plant, error) {
	scanQuery := fmt.Sprintf(`SELECT %s FROM plants ORDER BY name`, plantSelectColumns)
	rows, err := s.db.QueryContext(ctx, scanQuery)
	if err != nil {
		return candidates, fmt.Errorf("candidate scan failed: %w", err)
	}
	defer rows.Close()

	queryTris := generateTrigrams(q)
	for rows.Next() {
		if len(candidates) >= limit {
			break
		}
		var plant models.Plant
		if err := scanPlant(rows, &plant); err != nil {
			return candidates, err
		}
		if plant.Name == "" {
			log.Printf("skipping candidate %s: missing name", plant.ID)
			continue
		}
		if _, ok := seen[plant.ID]; ok {
			continue
		}
		if bestTrigramScore(queryTris, plant) < TrigramThreshold {
			continue
		}
		seen[plant.ID] = struct{}{}
		candidates = append(candidates, plant)
	}
	return candidates, rows.Err()
}

func bestTrigramScore(queryTris map[string]struct{}, plant models.Plant) float64 {
	names := make([]string, 0, 2+len(plant.Synonyms))
	names = append(names, plant.Name)
	if plant.SvName != nil {
		names = append(names, *plant.SvName)
	}
	names = append(names, plant.Synonyms...)

	best := 0.0
	for _, name := range names {
		lowered := strings.ToLower(name)
		if score := trigramSimilarity(queryTris, generateTrigrams(lowered)); score > best {
			best = score
		}
	}
	return best
}

// isHighConfidence flags exact and prefix hits from the coarse filter.
func isHighConfidence(q string, plant models.Plant) bool {
	name := strings.ToLower(plant.Name)
	if name == q || strings.HasPrefix(name, q) {
		return true
	}
	if plant.SvName != nil {
		sv := strings.ToLower(*plant.SvName)
		if sv == q || strings.HasPrefix(sv, q) {
			return true
		}
	}
	return false
}

// GetPlantByID retrieves a plant by its ULID
func (s *SQLiteStore) GetPlantByID(id string) (*models.Plant, error) {
	query := fmt.Sprintf(`SELECT %s FROM plants WHERE id = ?`, plantSelectColumns)
	var plant models.Plant
	if err := scanPlant(s.db.QueryRow(query, id), &plant); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &plant, nil
}

// GetPlantByName retrieves a plant by exact (case-insensitive) name
func (s *SQLiteStore) GetPlantByName(name string) (*models.Plant, error) {
	query := fmt.Sprintf(`SELECT %s FROM plants WHERE lower(name) = lower(?)`, plantSelectColumns)
	var plant models.Plant
	if err := scanPlant(s.db.QueryRow(query, name), &plant); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &plant, nil
}

// GetAllPlants returns plants ordered by name with pagination
func (s *SQLiteStore) GetAllPlants(limit, offset int) ([]models.Plant, error) {
	query := fmt.Sprintf(`SELECT %s FROM plants ORDER BY name LIMIT ? OFFSET ?`, plantSelectColumns)
	rows, err := s.db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plants []models.Plant
	for rows.Next() {
		var plant models.Plant
		if err := scanPlant(rows, &plant); err != nil {
			return nil, err
		}
		plants = append(plants, plant)
	}
	return plants, rows.Err()
}

// CreatePlant inserts a plant, generating a ULID if the ID is empty
func (s *SQLiteStore) CreatePlant(plant *models.Plant) (*models.Plant, error) {
	if plant.Name == "" {
		return nil, fmt.Errorf("plant name is required")
	}
	if plant.ID == "" {
		plant.ID = ulid.Make().String()
	}
	_, err := s.db.Exec(
		`INSERT INTO plants (id, name, sv_name, synonyms, plant_group) VALUES (?, ?, ?, ?, ?)`,
		plant.ID, plant.Name, nullable(plant.SvName), JoinSynonyms(plant.Synonyms), nullable(plant.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create plant: %w", err)
	}
	return plant, nil
}

// UpdatePlant replaces a plant's fields
func (s *SQLiteStore) UpdatePlant(id string, plant *models.Plant) (*models.Plant, error) {
	result, err := s.db.Exec(
		`UPDATE plants SET name = ?, sv_name = ?, synonyms = ?, plant_group = ? WHERE id = ?`,
		plant.Name, nullable(plant.SvName), JoinSynonyms(plant.Synonyms), nullable(plant.Group), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("plant not found: %s", id)
	}
	plant.ID = id
	return plant, nil
}

// DeletePlant removes a plant by ID
func (s *SQLiteStore) DeletePlant(id string) error {
	_, err := s.db.Exec(`DELETE FROM plants WHERE id = ?`, id)
	return err
}

// CountPlants returns the total number of plants
func (s *SQLiteStore) CountPlants() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM plants").Scan(&count)
	return count, err
}

// CountSynonyms returns the total number of synonym entries across the
// catalog. SQLite cannot split the joined column, so this walks the rows.
func (s *SQLiteStore) CountSynonyms() (int, error) {
	rows, err := s.db.Query("SELECT COALESCE(synonyms, '') FROM plants")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var joined string
		if err := rows.Scan(&joined); err != nil {
			return 0, err
		}
		count += len(SplitSynonyms(joined))
	}
	return count, rows.Err()
}

func nullable(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
