package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"medquiz/internal/bank"
	"medquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "medquiz",
	Short: "MRCP exam practice in the terminal",
	Long:  "MedQuiz — terminal quiz app for practicing MRCP-style clinical multiple-choice questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Optional .env for MEDQUIZ_DB and friends; absence is not an error.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MEDQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (default: built-in MRCP bank)")

	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MEDQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBank loads the bank named by --bank, then MEDQUIZ_BANK, falling
// back to the built-in questions.
func resolveBank(cmd *cobra.Command) (*bank.Bank, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return bank.Load(p)
	}
	if p := os.Getenv("MEDQUIZ_BANK"); p != "" {
		return bank.Load(p)
	}
	return bank.Builtin()
}
