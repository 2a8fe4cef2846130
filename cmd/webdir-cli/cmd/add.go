package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"webdir/internal/application"
	"webdir/internal/application/commands"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <description> <url> <category>",
	Short: "Add a website",
	Long: `Add a website to the directory. All four fields are required and the
URL must include a scheme and host.

Examples:
  webdir-cli add Go "The Go programming language" https://go.dev Docs`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		store, err := GetStore(ctx)
		if err != nil {
			return err
		}

		addCmd := commands.NewAddEntryCommand(store, args[0], args[1], args[2], args[3])
		result, err := addCmd.Execute(ctx)
		if err != nil {
			var verr *application.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("%s (%v)", commands.UserMessage(err), verr)
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
