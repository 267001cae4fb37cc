package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"medquiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall practice statistics",
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

		stats, err := st.EventRepo().Overall(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		fmt.Printf("Sessions   %d\n", stats.Sessions)
		fmt.Printf("Answers    %d\n", stats.Answers)
		fmt.Printf("Correct    %d\n", stats.Correct)
		if acc, ok := stats.Accuracy(); ok {
			fmt.Printf("Accuracy   %.1f%%\n", acc)
		} else {
			fmt.Println("Accuracy   N/A")
		}
		return nil
	},
}
