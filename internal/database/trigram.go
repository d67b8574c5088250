// file: internal/database/trigram.go
// version: 1.0.0
// guid: c7e91b40-6a5d-4f82-8b3e-159d0c4a7f26

package database

import "strings"

// TrigramThreshold is the coarse-prefilter cutoff. Anything scoring below
// it is not worth handing to the precise scoring pipeline.
const TrigramThreshold = 0.3

// generateTrigrams creates the trigram set for a string. Each word is
// padded with two leading and one trailing space so prefixes and suffixes
// contribute their own trigrams.
func generateTrigrams(s string) map[string]struct{} {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	tris := make(map[string]struct{})
	for _, word := range strings.Fields(s) {
		padded := "  " + word + " "
		runes := []rune(padded)
		for i := 0; i+3 <= len(runes); i++ {
			tris[string(runes[i:i+3])] = struct{}{}
		}
	}
	return tris
}

// trigramSimilarity returns shared/union over two trigram sets, the same
// shape of score a trigram-indexed store would produce.
func trigramSimilarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for t := range a {
		if _, ok := b[t]; ok {
			shared++
		}
	}
	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}
