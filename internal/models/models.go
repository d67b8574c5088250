// file: internal/models/models.go
// version: 1.0.0
// guid: 3c1f8a2d-9b47-4e06-8d53-72a1c4e9f0b6

package models

// SynonymDelimiter is the canonical separator used when a plant's synonym
// list is stored as a single joined string. Writers must emit exactly this;
// readers additionally tolerate bare "|" in legacy rows.
const SynonymDelimiter = " | "

// Plant is a candidate record returned by a candidate provider. Catalog
// metadata beyond the name fields is passed through untouched by the
// matching engine.
type Plant struct {
	ID       string   `json:"id"` // ULID format
	Name     string   `json:"name"`
	SvName   *string  `json:"sv_name,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
	Group    *string  `json:"plant_group,omitempty"`
	// Confidence set by the provider when its coarse prefilter scored the
	// row as a high-confidence hit (exact or prefix). Tie-breaker only.
	HighConfidence bool `json:"-"`
}

// PlantNameComponents is the structured decomposition of a raw plant name.
// Purely derived, never persisted; two parses of the same string are equal
// by value.
type PlantNameComponents struct {
	Genus     string `json:"genus"`
	Species   string `json:"species"`
	SortName  string `json:"sort_name"`  // text found in single quotes
	BrandName string `json:"brand_name"` // runs of 3+ uppercase letters
	Cultivar  string `json:"cultivar"`   // text found in double quotes
	Remaining string `json:"remaining"`
	FullName  string `json:"full_name"` // lowercased original input
}

// IsEmpty reports whether no component was extracted at all.
func (c PlantNameComponents) IsEmpty() bool {
	return c.Genus == "" && c.Species == "" && c.SortName == "" &&
		c.BrandName == "" && c.Cultivar == "" && c.Remaining == "" && c.FullName == ""
}

// ComponentMatchResult is one field-level comparison between a query
// component and a candidate component.
type ComponentMatchResult struct {
	SearchValue string  `json:"search_value"`
	PlantValue  string  `json:"plant_value"`
	Score       float64 `json:"score"` // in [0,1]
}

// ComponentScores groups the four per-field comparison results.
type ComponentScores struct {
	Genus         ComponentMatchResult `json:"genus"`
	Species       ComponentMatchResult `json:"species"`
	SortBrandName ComponentMatchResult `json:"sort_brand_name"`
	FullName      ComponentMatchResult `json:"full_name"`
}

// MatchSource identifies which of a candidate's name variants produced its
// best score.
type MatchSource string

const (
	SourceMainName MatchSource = "main_name"
	SourceSvName   MatchSource = "sv_name"
	SourceSynonym  MatchSource = "synonym"
)

// MatchDetails explains how a result's score came about.
type MatchDetails struct {
	MatchedName     string      `json:"matched_name"` // the name variant that won
	Source          MatchSource `json:"source"`
	SortBrandSearch string      `json:"sort_brand_search,omitempty"` // query side of the winning cross-match pair
	SortBrandPlant  string      `json:"sort_brand_plant,omitempty"`  // candidate side of the winning pair
	BoostApplied    float64     `json:"boost_applied,omitempty"`
}

// SimilarityResult is one scored candidate for one query.
type SimilarityResult struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	SvName          *string         `json:"sv_name,omitempty"`
	TotalScore      float64         `json:"total_score"`
	IsStrictMatch   bool            `json:"is_strict_match"`
	ComponentScores ComponentScores `json:"component_scores"`
	BestMatchSource MatchSource     `json:"best_match_source"`
	MatchDetails    MatchDetails    `json:"match_details"`
}

// MatchResponse is what the orchestrator hands back to callers.
type MatchResponse struct {
	StrictMatches  []SimilarityResult `json:"strict_matches"`
	Suggestions    []SimilarityResult `json:"suggestions"`
	HasStrictMatch bool               `json:"has_strict_match"`
}
