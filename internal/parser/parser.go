// file: internal/parser/parser.go
// version: 1.1.0
// guid: 7d2e4b91-3fa8-4c60-9e17-b5d80c2a6f43

package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/vaxtbase/plantmatch/internal/models"
)

// Quoted segments can span whitespace, so they are pulled out with regexps
// before any tokenization happens.
var (
	singleQuotedPattern = regexp.MustCompile(`'([^']*)'`)
	doubleQuotedPattern = regexp.MustCompile(`"([^"]*)"`)
)

// Parse decomposes a raw plant name into its structured components.
// It is total: empty or garbage input yields a result with empty fields,
// never an error. All matching fields are lowercased; FullName is the
// lowercased original input before any stripping.
func Parse(raw string) models.PlantNameComponents {
	trimmed := strings.TrimSpace(raw)
	components := models.PlantNameComponents{
		FullName: strings.ToLower(trimmed),
	}
	if trimmed == "" {
		return components
	}

	working := trimmed

	// Step 1: single-quoted substrings form the sort (cultivar) name.
	working, components.SortName = extractQuoted(working, singleQuotedPattern)

	// Step 2: double-quoted substrings form the cultivar field.
	working, components.Cultivar = extractQuoted(working, doubleQuotedPattern)

	// Step 3: runs of consecutive all-uppercase words form the brand name.
	// A run must be anchored by at least one word of 3+ letters, so short
	// connectives inside a trade name ("CHARLES DE MILLS") stay in the run
	// while a lone "SP" does not become a brand. Works token-wise so
	// Swedish uppercase letters count too.
	brandTokens, nameTokens := splitBrandRuns(strings.Fields(working))
	components.BrandName = strings.ToLower(strings.Join(brandTokens, " "))

	// Step 4: first remaining token is the genus, second the species, the
	// rest joins into Remaining.
	if len(nameTokens) > 0 {
		components.Genus = strings.ToLower(nameTokens[0])
	}
	if len(nameTokens) > 1 {
		components.Species = strings.ToLower(nameTokens[1])
	}
	if len(nameTokens) > 2 {
		components.Remaining = strings.ToLower(strings.Join(nameTokens[2:], " "))
	}

	return components
}

// extractQuoted pulls every match of pattern out of s, returning the
// remainder and the space-joined, lowercased captured texts.
func extractQuoted(s string, pattern *regexp.Regexp) (remainder, joined string) {
	matches := pattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return s, ""
	}
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		if inner := strings.TrimSpace(m[1]); inner != "" {
			parts = append(parts, inner)
		}
	}
	remainder = pattern.ReplaceAllString(s, " ")
	return remainder, strings.ToLower(strings.Join(parts, " "))
}

// splitBrandRuns separates tokens into brand-run tokens and the rest,
// preserving order within each group.
func splitBrandRuns(tokens []string) (brand, rest []string) {
	i := 0
	for i < len(tokens) {
		if !isUppercaseWord(tokens[i]) {
			rest = append(rest, tokens[i])
			i++
			continue
		}
		j := i
		anchored := false
		for j < len(tokens) && isUppercaseWord(tokens[j]) {
			if len([]rune(tokens[j])) >= 3 {
				anchored = true
			}
			j++
		}
		if anchored {
			brand = append(brand, tokens[i:j]...)
		} else {
			rest = append(rest, tokens[i:j]...)
		}
		i = j
	}
	return brand, rest
}

// isUppercaseWord reports whether a token consists of two or more
// uppercase letters only.
func isUppercaseWord(tok string) bool {
	runes := []rune(tok)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
