// Package cmd defines the CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"pronoms/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pronoms",
	Short: "Terminal game for practicing Catalan weak pronouns",
	Long: "Pronoms — a terminal game where you rewrite Catalan sentences\n" +
		"replacing their complements with the correct weak pronouns.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PRONOMS_DB env var)")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the sentence API (overrides PRONOMS_API_URL env var)")
	rootCmd.PersistentFlags().String("csv", "", "Play offline from a CSV dataset (overrides PRONOMS_CSV env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PRONOMS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
