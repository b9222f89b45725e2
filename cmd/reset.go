package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pronoms/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved game",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.SavedGames().Clear(context.Background()); err != nil {
			return fmt.Errorf("clear saved game: %w", err)
		}
		fmt.Println("Saved game deleted.")
		return nil
	},
}
