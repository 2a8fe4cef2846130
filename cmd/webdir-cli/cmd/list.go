package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"webdir/internal/application/commands"
	"webdir/internal/domain"
)

var (
	listSearch   string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List websites",
	Long: `List websites, optionally filtered by name and category.

The search matches anywhere in the name, ignoring case. The category
must match exactly, ignoring case.

Examples:
  webdir-cli list
  webdir-cli list --search git
  webdir-cli list --category dev --search hub`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		store, err := GetStore(ctx)
		if err != nil {
			return err
		}

		entries, err := commands.NewListCommand(store, listSearch, listCategory).Execute(ctx)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No websites found.")
			return nil
		}
		for _, e := range entries {
			printEntry(cmd, e)
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		store, err := GetStore(ctx)
		if err != nil {
			return err
		}

		categories, err := commands.NewCategoriesCommand(store).Execute(ctx)
		if err != nil {
			return err
		}

		for _, c := range categories {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func printEntry(cmd *cobra.Command, e domain.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s [%s]\n", e.Name, e.Category)
	if e.Description != "" {
		fmt.Fprintf(out, "  %s\n", e.Description)
	}
	fmt.Fprintf(out, "  %s\n", e.URL)
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter by name")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", domain.CategoryAll, "filter by category")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
}
