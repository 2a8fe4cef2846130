package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"webdir/internal/application/commands"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the cached websites",
	Long: `Drop the cached websites so the next command reloads the seed document.

Websites added since the first load are lost. The theme is kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := commands.NewResetCommand(store).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
