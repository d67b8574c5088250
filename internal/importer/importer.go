// file: internal/importer/importer.go
// version: 1.0.0
// guid: 9c3e6a18-f42b-4d07-85c9-1b6f0d27a4e3

package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/vaxtbase/plantmatch/internal/database"
	"github.com/vaxtbase/plantmatch/internal/models"
	"github.com/vaxtbase/plantmatch/internal/search"
)

// Summary reports what one import run did.
type Summary struct {
	Linked  int // rows reconciled to an existing plant via a strict match
	Created int // rows inserted as new plants
	Skipped int // rows without a usable name
}

// Importer reconciles incoming catalog rows against the existing store.
// A strict match links the row to the plant the engine found; anything
// else becomes a new plant.
type Importer struct {
	store        database.Store
	orchestrator *search.Orchestrator
	opts         search.Options
}

// New creates an importer reusing the engine's orchestrator and options.
func New(store database.Store, orchestrator *search.Orchestrator, opts search.Options) *Importer {
	return &Importer{store: store, orchestrator: orchestrator, opts: opts}
}

// ImportCSV reads a plant catalog CSV (columns: name, sv_name, synonyms,
// plant_group; header required, extra columns ignored) and reconciles
// every row. Synonym cells use the canonical " | " delimiter.
func (imp *Importer) ImportCSV(ctx context.Context, path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()
	return imp.importFrom(ctx, f)
}

func (imp *Importer) importFrom(ctx context.Context, r io.Reader) (*Summary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("import file has no name column")
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}

	summary := &Summary{}
	bar := progressbar.Default(int64(len(records)))
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		imp.reconcileRow(ctx, record, columns, summary)
		bar.Add(1)
	}
	return summary, nil
}

func (imp *Importer) reconcileRow(ctx context.Context, record []string, columns map[string]int, summary *Summary) {
	name := cell(record, columns, "name")
	if name == "" {
		summary.Skipped++
		log.Printf("skipping import row: missing name")
		return
	}

	response := imp.orchestrator.FindBestMatches(ctx, name, imp.opts)
	if response.HasStrictMatch {
		match := response.StrictMatches[0]
		summary.Linked++
		log.Printf("linked %q to existing plant %s (%q, score %.3f)",
			name, match.ID, match.Name, match.TotalScore)
		return
	}

	plant := &models.Plant{Name: name}
	if sv := cell(record, columns, "sv_name"); sv != "" {
		plant.SvName = &sv
	}
	if group := cell(record, columns, "plant_group"); group != "" {
		plant.Group = &group
	}
	plant.Synonyms = database.SplitSynonyms(cell(record, columns, "synonyms"))

	if _, err := imp.store.CreatePlant(plant); err != nil {
		summary.Skipped++
		log.Printf("failed to create plant %q: %v", name, err)
		return
	}
	summary.Created++
}

func cell(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
