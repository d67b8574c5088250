// file: cmd/root.go
// version: 1.2.0
// guid: a62d4f90-1c7e-4b38-95a0-d8e35b71c4f6

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaxtbase/plantmatch/internal/cache"
	"github.com/vaxtbase/plantmatch/internal/config"
	"github.com/vaxtbase/plantmatch/internal/database"
	"github.com/vaxtbase/plantmatch/internal/importer"
	"github.com/vaxtbase/plantmatch/internal/metrics"
	"github.com/vaxtbase/plantmatch/internal/models"
	"github.com/vaxtbase/plantmatch/internal/parser"
	"github.com/vaxtbase/plantmatch/internal/search"
	"github.com/vaxtbase/plantmatch/internal/similarity"
)

var cfgFile string
var databasePath string
var searchLimit int
var minimumScore float64
var algorithm string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "plantmatch",
	Short: "Fuzzy plant-name matching and ranking for a plant catalog",
	Long: `Plantmatch scores raw plant-name queries against a catalog of
scientific names, Swedish common names and synonyms. It decomposes names
into genus, species, cultivar and brand components, cross-matches cultivar
qualifiers, and ranks candidates into strict matches and suggestions.`,
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank catalog plants against a query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.InitializeStore(config.AppConfig.DatabasePath); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.CloseStore()

		orchestrator := newOrchestrator(database.GlobalStore)
		response := orchestrator.FindBestMatches(cmd.Context(), args[0], searchOptions())

		fmt.Printf("Strict matches: %d\n", len(response.StrictMatches))
		printResults(response.StrictMatches)
		fmt.Printf("Suggestions: %d\n", len(response.Suggestions))
		printResults(response.Suggestions)
		return nil
	},
}

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <name>",
	Short: "Decompose a plant name into its components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		components := parser.Parse(args[0])
		encoded, err := json.MarshalIndent(components, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	},
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Import a plant catalog CSV, reconciling rows against existing plants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.InitializeStore(config.AppConfig.DatabasePath); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.CloseStore()

		orchestrator := newOrchestrator(database.GlobalStore)
		imp := importer.New(database.GlobalStore, orchestrator, searchOptions())
		summary, err := imp.ImportCSV(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Linked: %d  Created: %d  Skipped: %d\n",
			summary.Linked, summary.Created, summary.Skipped)
		return nil
	},
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.InitializeStore(config.AppConfig.DatabasePath); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.CloseStore()

		plants, err := database.GlobalStore.CountPlants()
		if err != nil {
			return fmt.Errorf("failed to count plants: %w", err)
		}
		synonyms, err := database.GlobalStore.CountSynonyms()
		if err != nil {
			return fmt.Errorf("failed to count synonyms: %w", err)
		}
		fmt.Printf("Plants: %d\nSynonyms: %d\n", plants, synonyms)
		return nil
	},
}

func newOrchestrator(store database.Store) *search.Orchestrator {
	metrics.Register()
	metric := similarity.New(config.AppConfig.SimilarityAlgorithm)
	parsed := cache.New[models.PlantNameComponents](config.AppConfig.ParseCacheSize)
	return search.NewOrchestrator(store, metric, parsed)
}

func searchOptions() search.Options {
	return search.Options{
		Limit:           config.AppConfig.SearchLimit,
		MinimumScore:    config.AppConfig.MinimumScore,
		Weights:         config.AppConfig.Weights,
		ConfidenceBoost: config.AppConfig.ConfidenceBoost,
	}
}

func printResults(results []models.SimilarityResult) {
	for _, r := range results {
		sv := ""
		if r.SvName != nil {
			sv = " / " + *r.SvName
		}
		fmt.Printf("  %.3f  %s%s  (via %s: %q)\n",
			r.TotalScore, r.Name, sv, r.BestMatchSource, r.MatchDetails.MatchedName)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.plantmatch.yaml)")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "plants.db", "path to the SQLite plant catalog")
	rootCmd.PersistentFlags().IntVar(&searchLimit, "limit", 10, "maximum number of suggestions")
	rootCmd.PersistentFlags().Float64Var(&minimumScore, "min-score", 0.3, "minimum total score for a result")
	rootCmd.PersistentFlags().StringVar(&algorithm, "algorithm", similarity.DefaultAlgorithm,
		"similarity algorithm: dice, jaro-winkler, levenshtein or damerau-levenshtein")

	viper.BindPFlag("database_path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("search_limit", rootCmd.PersistentFlags().Lookup("limit"))
	viper.BindPFlag("minimum_score", rootCmd.PersistentFlags().Lookup("min-score"))
	viper.BindPFlag("similarity_algorithm", rootCmd.PersistentFlags().Lookup("algorithm"))

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".plantmatch")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	// Ensure database directory exists
	if databasePath != "" {
		dbDir := filepath.Dir(databasePath)
		if dbDir != "." {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				fmt.Printf("Error creating database directory: %v\n", err)
			}
		}
	}

	config.InitConfig()
}
