package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"webdir/internal/application"
	"webdir/internal/application/commands"
	"webdir/internal/domain"
)

// RegisterReadTools adds the read-only directory tools to the MCP server.
// store must already be loaded.
func RegisterReadTools(s *server.MCPServer, store *application.EntryStore) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(categoriesTool(), categoriesHandler(store))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List websites in the directory. Filters combine: the name must contain the search text and the category must match."),
		mcp.WithString("search",
			mcp.Description("Case-insensitive substring of the website name. Omit to match every name."),
		),
		mcp.WithString("category",
			mcp.Description("Category to keep (case-insensitive), or \"all\". Omit for all categories."),
		),
	)
}

func listHandler(store *application.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		search := req.GetString("search", "")
		category := req.GetString("category", domain.CategoryAll)

		entries, err := commands.NewListCommand(store, search, category).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(entries, formatEntry)
	}
}

// --- categories ---

func categoriesTool() mcp.Tool {
	return mcp.NewTool("categories",
		mcp.WithDescription("List the categories in use, in first-seen order. The first value is always \"all\"."),
	)
}

func categoriesHandler(store *application.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := commands.NewCategoriesCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(categories, func(c string) string { return c })
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No websites found."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatEntry(e domain.Entry) string {
	if e.Description == "" {
		return fmt.Sprintf("%s  [%s]  %s", e.Name, e.Category, e.URL)
	}
	return fmt.Sprintf("%s  [%s]  %s  %s", e.Name, e.Category, e.URL, e.Description)
}
