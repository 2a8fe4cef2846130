package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"webdir/internal/application/commands"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the current theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		themes, err := GetThemes()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), themes.Current())
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		themes, err := GetThemes()
		if err != nil {
			return err
		}

		result, err := commands.NewToggleThemeCommand(themes).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}
