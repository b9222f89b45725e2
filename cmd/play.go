package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pronoms/internal/app"
	"pronoms/internal/dataset"
	"pronoms/internal/provider"
	"pronoms/internal/store"
)

const defaultAPIURL = "http://localhost:8000"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prov, err := resolveProvider(cmd)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Provider:   prov,
		SavedGames: st.SavedGames(),
	})
}

// resolveProvider selects the data provider: a local CSV dataset when
// --csv or PRONOMS_CSV is set, the remote API otherwise.
func resolveProvider(cmd *cobra.Command) (provider.Provider, error) {
	csvPath, _ := cmd.Flags().GetString("csv")
	if csvPath == "" {
		csvPath = os.Getenv("PRONOMS_CSV")
	}
	if csvPath != "" {
		records, err := dataset.LoadFile(csvPath, func(line int, reason string) {
			fmt.Fprintf(os.Stderr, "avís: línia %d ignorada: %s\n", line, reason)
		})
		if err != nil {
			return nil, fmt.Errorf("load dataset %s: %w", csvPath, err)
		}
		coll := dataset.NewCollection(records, time.Now().UnixNano())
		return provider.NewLocal(coll), nil
	}

	baseURL, _ := cmd.Flags().GetString("api-url")
	if baseURL == "" {
		baseURL = os.Getenv("PRONOMS_API_URL")
	}
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	return provider.NewRemote(baseURL), nil
}
