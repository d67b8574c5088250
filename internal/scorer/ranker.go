// file: internal/scorer/ranker.go
// version: 1.1.0
// guid: e5d13f7b-8a20-4c96-b3e4-6f09a8d12c57

package scorer

import "github.com/vaxtbase/plantmatch/internal/models"

// Strict-match thresholds. The sort/brand gate stops a high genus or
// full-name similarity from classifying as exact when the cultivar
// actually differs.
const (
	StrictTotalThreshold     = 0.95
	StrictSortBrandThreshold = 0.7
)

// DefaultConfidenceBoost is the additive tie-breaker applied when the
// candidate provider flagged a row as a high-confidence prefilter hit.
const DefaultConfidenceBoost = 0.05

// Weights holds the relative importance of each component score. They
// need not sum to 1; Rank normalizes by the total.
type Weights struct {
	Genus         float64 `json:"genus"`
	Species       float64 `json:"species"`
	SortBrandName float64 `json:"sort_brand_name"`
	FullName      float64 `json:"full_name"`
}

// DefaultWeights is the canonical 4-component scheme. The sort/brand
// component dominates because it is the field users actually
// disambiguate by.
func DefaultWeights() Weights {
	return Weights{
		Genus:         0.35,
		Species:       0.10,
		SortBrandName: 0.40,
		FullName:      0.15,
	}
}

// Total returns the weight sum used for normalization.
func (w Weights) Total() float64 {
	return w.Genus + w.Species + w.SortBrandName + w.FullName
}

// RankResult is the combined outcome for one candidate name variant.
type RankResult struct {
	TotalScore    float64
	IsStrictMatch bool
	BoostApplied  float64
}

// Rank folds component scores into one weighted total and classifies the
// result. The strict-match gate is evaluated on the unboosted total; the
// confidence boost only reorders presentation and can never flip a
// classification.
func Rank(scores models.ComponentScores, weights Weights, boost float64) RankResult {
	total := weights.Total()
	if total <= 0 {
		return RankResult{}
	}

	totalScore := (scores.Genus.Score*weights.Genus +
		scores.Species.Score*weights.Species +
		scores.SortBrandName.Score*weights.SortBrandName +
		scores.FullName.Score*weights.FullName) / total

	result := RankResult{
		TotalScore: totalScore,
		IsStrictMatch: totalScore >= StrictTotalThreshold &&
			scores.SortBrandName.Score >= StrictSortBrandThreshold,
	}

	if boost > 0 {
		boosted := totalScore + boost
		if boosted > 1.0 {
			boosted = 1.0
		}
		result.BoostApplied = boosted - totalScore
		result.TotalScore = boosted
	}
	return result
}
