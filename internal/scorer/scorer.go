// file: internal/scorer/scorer.go
// version: 1.1.0
// guid: 94b07c5a-2d8e-4f13-b6a0-c19e83d4f725

package scorer

import (
	"github.com/vaxtbase/plantmatch/internal/models"
	"github.com/vaxtbase/plantmatch/internal/similarity"
)

// Scorer computes the per-field component scores between a parsed query
// and a parsed candidate name.
type Scorer struct {
	metric *similarity.Metric
}

// New creates a scorer backed by the given similarity metric.
func New(metric *similarity.Metric) *Scorer {
	return &Scorer{metric: metric}
}

// Score compares query components against candidate components field by
// field. Genus, species and full name compare positionally; the sort and
// brand names cross-match because cultivar names are written
// interchangeably as quoted sort names or capitalized trade names
// depending on the data source.
func (s *Scorer) Score(query, candidate models.PlantNameComponents) models.ComponentScores {
	return models.ComponentScores{
		Genus:         s.fieldScore(query.Genus, candidate.Genus),
		Species:       s.fieldScore(query.Species, candidate.Species),
		SortBrandName: s.sortBrandScore(query, candidate),
		FullName:      s.fieldScore(query.FullName, candidate.FullName),
	}
}

// fieldScore compares one positional field. A missing value on either
// side scores 0: absent data is non-matching, not neutral.
func (s *Scorer) fieldScore(searchValue, plantValue string) models.ComponentMatchResult {
	result := models.ComponentMatchResult{
		SearchValue: searchValue,
		PlantValue:  plantValue,
	}
	if searchValue == "" || plantValue == "" {
		return result
	}
	result.Score = s.metric.Similarity(searchValue, plantValue)
	return result
}

// sortBrandScore cross-matches the {sortName, brandName} sets of both
// sides. Neither side carrying a cultivar qualifier is uninformative and
// scores 1.0; exactly one side carrying one is a contradiction and scores
// 0.0; otherwise the best-scoring pair wins and is recorded.
func (s *Scorer) sortBrandScore(query, candidate models.PlantNameComponents) models.ComponentMatchResult {
	queryItems := sortBrandItems(query)
	plantItems := sortBrandItems(candidate)

	if len(queryItems) == 0 && len(plantItems) == 0 {
		return models.ComponentMatchResult{Score: 1.0}
	}
	if len(queryItems) == 0 || len(plantItems) == 0 {
		return models.ComponentMatchResult{
			SearchValue: firstOrEmpty(queryItems),
			PlantValue:  firstOrEmpty(plantItems),
		}
	}

	best := models.ComponentMatchResult{
		SearchValue: queryItems[0],
		PlantValue:  plantItems[0],
		Score:       -1,
	}
	for _, q := range queryItems {
		for _, p := range plantItems {
			if score := s.metric.Similarity(q, p); score > best.Score {
				best = models.ComponentMatchResult{SearchValue: q, PlantValue: p, Score: score}
			}
		}
	}
	return best
}

// sortBrandItems gathers the non-empty cultivar qualifiers of one side.
func sortBrandItems(c models.PlantNameComponents) []string {
	items := make([]string, 0, 2)
	if c.SortName != "" {
		items = append(items, c.SortName)
	}
	if c.BrandName != "" {
		items = append(items, c.BrandName)
	}
	return items
}

func firstOrEmpty(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
