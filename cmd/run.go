package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"medquiz/internal/app"
	"medquiz/internal/store"
)

// runApp loads the question bank, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	b, err := resolveBank(cmd)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	opts := app.Options{Bank: b}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		// History is optional; the quiz itself runs without the store.
		fmt.Fprintln(os.Stderr, "warning: history unavailable:", err)
	} else {
		defer st.Close()
		opts.EventRepo = st.EventRepo()
	}

	return app.Run(opts)
}
