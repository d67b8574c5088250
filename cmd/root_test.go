// file: cmd/root_test.go
// version: 1.0.0
// guid: 72c5e9b1-8d04-4f6a-93e2-a51f0c7d84b9

package cmd

import "testing"

// TestRootCommandHasSubcommands verifies all subcommands are registered
func TestRootCommandHasSubcommands(t *testing.T) {
	expected := map[string]bool{
		"search": false,
		"parse":  false,
		"import": false,
		"stats":  false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := expected[c.Name()]; ok {
			expected[c.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("Expected subcommand %q to be registered", name)
		}
	}
}

// TestPersistentFlags verifies the shared flags exist with defaults
func TestPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	db, err := flags.GetString("db")
	if err != nil || db != "plants.db" {
		t.Errorf("Expected --db default 'plants.db', got %q (err: %v)", db, err)
	}
	limit, err := flags.GetInt("limit")
	if err != nil || limit != 10 {
		t.Errorf("Expected --limit default 10, got %d (err: %v)", limit, err)
	}
	minScore, err := flags.GetFloat64("min-score")
	if err != nil || minScore != 0.3 {
		t.Errorf("Expected --min-score default 0.3, got %v (err: %v)", minScore, err)
	}
	algorithm, err := flags.GetString("algorithm")
	if err != nil || algorithm != "dice" {
		t.Errorf("Expected --algorithm default 'dice', got %q (err: %v)", algorithm, err)
	}
}
