// file: internal/search/orchestrator.go
// version: 1.2.1
// guid: b3f7a0c9-52d1-4e86-9740-8a1c6d2e5b93

package search

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vaxtbase/plantmatch/internal/cache"
	"github.com/vaxtbase/plantmatch/internal/database"
	"github.com/vaxtbase/plantmatch/internal/metrics"
	"github.com/vaxtbase/plantmatch/internal/models"
	"github.com/vaxtbase/plantmatch/internal/parser"
	"github.com/vaxtbase/plantmatch/internal/scorer"
	"github.com/vaxtbase/plantmatch/internal/similarity"
)

// MinQueryLength is the shortest query (in runes, after trimming) worth
// matching at all.
const MinQueryLength = 2

// Default result shaping.
const (
	DefaultLimit        = 10
	DefaultMinimumScore = 0.3
)

// Options controls one FindBestMatches call. Zero values fall back to the
// defaults; a negative MinimumScore disables the score floor entirely.
type Options struct {
	Limit           int
	MinimumScore    float64
	Weights         scorer.Weights
	ConfidenceBoost float64
}

// DefaultOptions returns the canonical search options.
func DefaultOptions() Options {
	return Options{
		Limit:           DefaultLimit,
		MinimumScore:    DefaultMinimumScore,
		Weights:         scorer.DefaultWeights(),
		ConfidenceBoost: scorer.DefaultConfidenceBoost,
	}
}

func (o Options) normalized() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.MinimumScore == 0 {
		o.MinimumScore = DefaultMinimumScore
	} else if o.MinimumScore < 0 {
		o.MinimumScore = 0
	}
	if o.Weights.Total() <= 0 {
		o.Weights = scorer.DefaultWeights()
	}
	return o
}

// Orchestrator drives the end-to-end match flow: sanitize the query,
// fetch coarse-filtered candidates, score every name variant of every
// candidate, then rank, filter and partition the results. It holds no
// mutable state besides an injected parse cache and is safe for
// concurrent use.
type Orchestrator struct {
	store  database.Store
	scorer *scorer.Scorer
	parsed *cache.Cache[models.PlantNameComponents]
}

// NewOrchestrator wires the engine together. The parse cache is explicit
// so its bound and lifetime stay under the caller's control; pass nil to
// get a default-sized one.
func NewOrchestrator(store database.Store, metric *similarity.Metric, parsed *cache.Cache[models.PlantNameComponents]) *Orchestrator {
	if parsed == nil {
		parsed = cache.New[models.PlantNameComponents](cache.DefaultCapacity)
	}
	return &Orchestrator{
		store:  store,
		scorer: scorer.New(metric),
		parsed: parsed,
	}
}

// ParseName exposes the pure name decomposition for callers (import
// validation tooling) that want component access without ranking.
func (o *Orchestrator) ParseName(raw string) models.PlantNameComponents {
	return parser.Parse(raw)
}

// FindBestMatches runs one query through the whole pipeline. It never
// returns an error: short queries and provider failures both degrade to
// an empty, well-formed response, because search must not crash a calling
// flow.
func (o *Orchestrator) FindBestMatches(ctx context.Context, query string, opts Options) models.MatchResponse {
	started := time.Now()
	metrics.IncSearchStarted()
	defer func() { metrics.ObserveSearchDuration(time.Since(started)) }()

	opts = opts.normalized()
	empty := models.MatchResponse{
		StrictMatches: []models.SimilarityResult{},
		Suggestions:   []models.SimilarityResult{},
	}

	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return empty
	}

	fetchLimit := opts.Limit * 10
	if fetchLimit < 50 {
		fetchLimit = 50
	}
	candidates, err := o.store.FetchCandidates(ctx, trimmed, fetchLimit)
	if err != nil {
		log.Printf("candidate provider failed for %q: %v", trimmed, err)
		metrics.IncProviderError()
		return empty
	}
	if len(candidates) == 0 {
		return empty
	}

	queryComponents := o.parseCached(trimmed)

	results := make([]models.SimilarityResult, 0, len(candidates))
	for i := range candidates {
		if result, ok := o.scoreCandidate(queryComponents, candidates[i], opts); ok {
			results = append(results, result)
		}
	}

	// Strict matches first, then score descending, then shorter (more
	// specific) names.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].IsStrictMatch != results[j].IsStrictMatch {
			return results[i].IsStrictMatch
		}
		if results[i].TotalScore != results[j].TotalScore {
			return results[i].TotalScore > results[j].TotalScore
		}
		return len(results[i].Name) < len(results[j].Name)
	})

	response := empty
	for _, result := range results {
		if result.TotalScore < opts.MinimumScore {
			continue
		}
		if result.IsStrictMatch {
			response.StrictMatches = append(response.StrictMatches, result)
		} else if len(response.Suggestions) < opts.Limit {
			response.Suggestions = append(response.Suggestions, result)
		}
	}
	response.HasStrictMatch = len(response.StrictMatches) > 0
	if response.HasStrictMatch {
		metrics.IncStrictMatch()
	}
	return response
}

// scoreCandidate scores every name variant of one candidate (main name,
// Swedish name, each synonym) and keeps the single best, with ties broken
// by source priority so repeated runs stay deterministic.
func (o *Orchestrator) scoreCandidate(queryComponents models.PlantNameComponents, plant models.Plant, opts Options) (models.SimilarityResult, bool) {
	if strings.TrimSpace(plant.Name) == "" {
		log.Printf("skipping candidate %s: missing name", plant.ID)
		return models.SimilarityResult{}, false
	}

	type variant struct {
		name   string
		source models.MatchSource
	}
	variants := make([]variant, 0, 2+len(plant.Synonyms))
	variants = append(variants, variant{plant.Name, models.SourceMainName})
	if plant.SvName != nil && strings.TrimSpace(*plant.SvName) != "" {
		variants = append(variants, variant{*plant.SvName, models.SourceSvName})
	}
	for _, syn := range plant.Synonyms {
		if strings.TrimSpace(syn) != "" {
			variants = append(variants, variant{syn, models.SourceSynonym})
		}
	}

	boost := 0.0
	if plant.HighConfidence {
		boost = opts.ConfidenceBoost
	}

	var best models.SimilarityResult
	found := false
	for _, v := range variants {
		candidateComponents := o.parseCached(v.name)
		scores := o.scorer.Score(queryComponents, candidateComponents)
		ranked := scorer.Rank(scores, opts.Weights, boost)

		result := models.SimilarityResult{
			ID:              plant.ID,
			Name:            plant.Name,
			SvName:          plant.SvName,
			TotalScore:      ranked.TotalScore,
			IsStrictMatch:   ranked.IsStrictMatch,
			ComponentScores: scores,
			BestMatchSource: v.source,
			MatchDetails: models.MatchDetails{
				MatchedName:     v.name,
				Source:          v.source,
				SortBrandSearch: scores.SortBrandName.SearchValue,
				SortBrandPlant:  scores.SortBrandName.PlantValue,
				BoostApplied:    ranked.BoostApplied,
			},
		}
		// Strictly greater keeps the earlier (higher priority) source on
		// ties; variants iterate MainName, SvName, Synonyms in order.
		if !found || result.TotalScore > best.TotalScore {
			best = result
			found = true
		}
	}
	metrics.AddCandidatesScored(len(variants))
	return best, found
}

// parseCached memoizes parses keyed by the trimmed raw name. The key must
// preserve case: brand extraction depends on capitalization, so "KNOCKOUT
// Rosa" and "knockout rosa" parse differently and must not share an entry.
func (o *Orchestrator) parseCached(raw string) models.PlantNameComponents {
	key := strings.TrimSpace(raw)
	if components, ok := o.parsed.Get(key); ok {
		return components
	}
	components := parser.Parse(raw)
	o.parsed.Set(key, components)
	return components
}
