// file: internal/database/trigram_test.go
// version: 1.0.0
// guid: 8f1d4b6a-3c90-4e27-b8f5-a7d21e0c6943

package database

import "testing"

func TestGenerateTrigrams(t *testing.T) {
	tris := generateTrigrams("rosa")
	if len(tris) == 0 {
		t.Fatal("expected trigrams for non-empty input")
	}
	// Padded per word: "  rosa " yields "  r", " ro", "ros", "osa", "sa ".
	for _, want := range []string{"  r", " ro", "ros", "osa", "sa "} {
		if _, ok := tris[want]; !ok {
			t.Errorf("missing trigram %q", want)
		}
	}
}

func TestGenerateTrigramsEmpty(t *testing.T) {
	if tris := generateTrigrams("   "); tris != nil {
		t.Errorf("generateTrigrams(blank) = %v, want nil", tris)
	}
}

func TestTrigramSimilaritySelf(t *testing.T) {
	a := generateTrigrams("pinus sylvestris")
	if got := trigramSimilarity(a, a); got != 1.0 {
		t.Errorf("self similarity = %v, want 1.0", got)
	}
}

func TestTrigramSimilarityOrdering(t *testing.T) {
	query := generateTrigrams("pinus sylvesteris")
	near := generateTrigrams("pinus sylvestris")
	far := generateTrigrams("picea abies")

	nearScore := trigramSimilarity(query, near)
	farScore := trigramSimilarity(query, far)
	if nearScore <= farScore {
		t.Errorf("near match scored %v, not above unrelated %v", nearScore, farScore)
	}
	if nearScore < TrigramThreshold {
		t.Errorf("near match scored %v, below prefilter threshold %v", nearScore, TrigramThreshold)
	}
}

func TestTrigramSimilarityEmptySides(t *testing.T) {
	if got := trigramSimilarity(nil, generateTrigrams("rosa")); got != 0 {
		t.Errorf("similarity with empty side = %v, want 0", got)
	}
}

func TestSplitSynonyms(t *testing.T) {
	tests := []struct {
		joined string
		want   []string
	}{
		{"", nil},
		{"   ", nil},
		{"Rosa canina | Rosa dumalis", []string{"Rosa canina", "Rosa dumalis"}},
		// Legacy rows joined without spaces still parse.
		{"Rosa canina|Rosa dumalis", []string{"Rosa canina", "Rosa dumalis"}},
		{"Rosa canina | ", []string{"Rosa canina"}},
	}
	for _, tt := range tests {
		got := SplitSynonyms(tt.joined)
		if len(got) != len(tt.want) {
			t.Errorf("SplitSynonyms(%q) = %v, want %v", tt.joined, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitSynonyms(%q)[%d] = %q, want %q", tt.joined, i, got[i], tt.want[i])
			}
		}
	}
}

func TestJoinSynonymsUsesCanonicalDelimiter(t *testing.T) {
	got := JoinSynonyms([]string{"Rosa canina", "Rosa dumalis"})
	want := "Rosa canina | Rosa dumalis"
	if got != want {
		t.Errorf("JoinSynonyms = %q, want %q", got, want)
	}
}
