// file: internal/config/config.go
// version: 1.1.0
// guid: 4f9d2c7b-8a15-4e60-b3c8-07d64a1f9e25

package config

import (
	"github.com/spf13/viper"

	"github.com/vaxtbase/plantmatch/internal/scorer"
	"github.com/vaxtbase/plantmatch/internal/similarity"
)

// Config holds application configuration
type Config struct {
	DatabasePath        string
	SearchLimit         int
	MinimumScore        float64
	SimilarityAlgorithm string
	ConfidenceBoost     float64
	ParseCacheSize      int
	Weights             scorer.Weights
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	defaults := scorer.DefaultWeights()
	viper.SetDefault("database_path", "plants.db")
	viper.SetDefault("search_limit", 10)
	viper.SetDefault("minimum_score", 0.3)
	viper.SetDefault("similarity_algorithm", similarity.DefaultAlgorithm)
	viper.SetDefault("confidence_boost", scorer.DefaultConfidenceBoost)
	viper.SetDefault("parse_cache_size", 1024)
	viper.SetDefault("weights.genus", defaults.Genus)
	viper.SetDefault("weights.species", defaults.Species)
	viper.SetDefault("weights.sort_brand_name", defaults.SortBrandName)
	viper.SetDefault("weights.full_name", defaults.FullName)

	AppConfig = Config{
		DatabasePath:        viper.GetString("database_path"),
		SearchLimit:         viper.GetInt("search_limit"),
		MinimumScore:        viper.GetFloat64("minimum_score"),
		SimilarityAlgorithm: viper.GetString("similarity_algorithm"),
		ConfidenceBoost:     viper.GetFloat64("confidence_boost"),
		ParseCacheSize:      viper.GetInt("parse_cache_size"),
		Weights: scorer.Weights{
			Genus:         viper.GetFloat64("weights.genus"),
			Species:       viper.GetFloat64("weights.species"),
			SortBrandName: viper.GetFloat64("weights.sort_brand_name"),
			FullName:      viper.GetFloat64("weights.full_name"),
		},
	}

	// A zeroed or negative weight tuple would make every score 0
	if AppConfig.Weights.Total() <= 0 {
		AppConfig.Weights = defaults
	}
}
