// file: internal/similarity/similarity.go
// version: 1.2.0
// guid: 0b6a9d3e-51c7-4f28-a4d9-8e3f17c2b590

package similarity

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"
)

// Supported algorithm names.
const (
	AlgorithmDice        = "dice"
	AlgorithmJaroWinkler = "jaro-winkler"
	AlgorithmLevenshtein = "levenshtein"
	AlgorithmDamerau     = "damerau-levenshtein"
)

// DefaultAlgorithm is Sorensen-Dice over character bigrams: graded,
// symmetric, and forgiving of word-order noise in multi-word cultivar
// names.
const DefaultAlgorithm = AlgorithmDice

// Metric computes a normalized string similarity in [0,1]. Instances are
// immutable after construction and safe for concurrent use.
type Metric struct {
	algorithm string
	dice      *metrics.SorensenDice
	jaro      *metrics.JaroWinkler
}

// New creates a metric for the named algorithm. Unknown or empty names
// fall back to the default.
func New(algorithm string) *Metric {
	switch algorithm {
	case AlgorithmDice, AlgorithmJaroWinkler, AlgorithmLevenshtein, AlgorithmDamerau:
	default:
		algorithm = DefaultAlgorithm
	}

	dice := metrics.NewSorensenDice()
	dice.CaseSensitive = false
	dice.NgramSize = 2

	jaro := metrics.NewJaroWinkler()
	jaro.CaseSensitive = false

	return &Metric{algorithm: algorithm, dice: dice, jaro: jaro}
}

// Algorithm returns the configured algorithm name.
func (m *Metric) Algorithm() string {
	return m.algorithm
}

// Similarity returns a score in [0,1]. It is symmetric, returns 1.0 for
// identical non-empty strings and 0.0 whenever either side is empty.
func (m *Metric) Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}

	switch m.algorithm {
	case AlgorithmJaroWinkler:
		return clamp(strutil.Similarity(a, b, m.jaro))
	case AlgorithmLevenshtein:
		return levenshteinSimilarity(a, b)
	case AlgorithmDamerau:
		score, err := edlib.StringsSimilarity(a, b, edlib.DamerauLevenshtein)
		if err != nil {
			return 0.0
		}
		return clamp(float64(score))
	default:
		// Dice needs at least one bigram per side; shorter inputs get the
		// edit-distance form so similarity(x,x)=1 still holds for them.
		if len([]rune(a)) < 2 || len([]rune(b)) < 2 {
			return levenshteinSimilarity(a, b)
		}
		return clamp(strutil.Similarity(a, b, m.dice))
	}
}

// levenshteinSimilarity normalizes edit distance over the longer rune
// length: 1 - dist/max(len(a), len(b)).
func levenshteinSimilarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 0.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return clamp(1.0 - float64(dist)/float64(maxLen))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
