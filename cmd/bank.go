package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"medquiz/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the active bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBank(cmd)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}
		for i, q := range b.Questions() {
			fmt.Printf("%2d. %s (%d options)\n", i+1, q.Text, len(q.Options))
		}
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a question bank JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: valid, %d questions\n", args[0], b.Len())
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
