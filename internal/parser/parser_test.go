// file: internal/parser/parser_test.go
// version: 1.1.0
// guid: 1e8b3d60-7c94-4f25-ab17-59d2c0e6f438

package parser

import (
	"testing"

	"github.com/vaxtbase/plantmatch/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.PlantNameComponents
	}{
		{
			name: "plain binomial",
			raw:  "Rosa gallica",
			want: models.PlantNameComponents{
				Genus:    "rosa",
				Species:  "gallica",
				FullName: "rosa gallica",
			},
		},
		{
			name: "single-quoted sort name",
			raw:  "Rosa gallica 'Charles de Mills'",
			want: models.PlantNameComponents{
				Genus:    "rosa",
				Species:  "gallica",
				SortName: "charles de mills",
				FullName: "rosa gallica 'charles de mills'",
			},
		},
		{
			name: "brand before genus",
			raw:  "KNOCKOUT Rosa",
			want: models.PlantNameComponents{
				Genus:     "rosa",
				BrandName: "knockout",
				FullName:  "knockout rosa",
			},
		},
		{
			name: "multi-word brand run",
			raw:  "Rosa CHARLES DE MILLS",
			want: models.PlantNameComponents{
				Genus:     "rosa",
				BrandName: "charles de mills",
				FullName:  "rosa charles de mills",
			},
		},
		{
			name: "double-quoted cultivar",
			raw:  `Malus domestica "Cox Orange"`,
			want: models.PlantNameComponents{
				Genus:    "malus",
				Species:  "domestica",
				Cultivar: "cox orange",
				FullName: `malus domestica "cox orange"`,
			},
		},
		{
			name: "remaining tokens after species",
			raw:  "Pinus sylvestris var. lapponica",
			want: models.PlantNameComponents{
				Genus:     "pinus",
				Species:   "sylvestris",
				Remaining: "var. lapponica",
				FullName:  "pinus sylvestris var. lapponica",
			},
		},
		{
			name: "brand only, no genus",
			raw:  "FLOWER CARPET",
			want: models.PlantNameComponents{
				BrandName: "flower carpet",
				FullName:  "flower carpet",
			},
		},
		{
			name: "short uppercase token is not a brand",
			raw:  "Rosa SP",
			want: models.PlantNameComponents{
				Genus:    "rosa",
				Species:  "sp",
				FullName: "rosa sp",
			},
		},
		{
			name: "swedish uppercase brand",
			raw:  "Syringa vulgaris SKÄRGÅRDEN",
			want: models.PlantNameComponents{
				Genus:     "syringa",
				Species:   "vulgaris",
				BrandName: "skärgården",
				FullName:  "syringa vulgaris skärgården",
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: models.PlantNameComponents{},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: models.PlantNameComponents{},
		},
		{
			name: "quotes and brand together",
			raw:  "Rosa 'Peace' FLOWER CARPET",
			want: models.PlantNameComponents{
				Genus:     "rosa",
				SortName:  "peace",
				BrandName: "flower carpet",
				FullName:  "rosa 'peace' flower carpet",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseIsPureAndDeterministic(t *testing.T) {
	raw := "Rosa gallica 'Charles de Mills'"
	first := Parse(raw)
	second := Parse(raw)
	if first != second {
		t.Errorf("two parses of the same input differ: %+v vs %+v", first, second)
	}
}

func TestParseEmptyYieldsEmptyComponents(t *testing.T) {
	if got := Parse(""); !got.IsEmpty() {
		t.Errorf("Parse(\"\") = %+v, want all-empty components", got)
	}
}
