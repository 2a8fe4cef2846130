package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"webdir/internal/application"
	"webdir/internal/application/commands"
)

// RegisterWriteTools adds the tools that change the directory.
func RegisterWriteTools(s *server.MCPServer, store *application.EntryStore) {
	s.AddTool(addTool(), addHandler(store))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Add a website to the directory. Every field is required; the URL needs a scheme and host."),
		mcp.WithString("name",
			mcp.Description("Display name"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Short description"),
			mcp.Required(),
		),
		mcp.WithString("url",
			mcp.Description("Absolute URL, e.g. https://go.dev"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Category label, e.g. Tools"),
			mcp.Required(),
		),
	)
}

func addHandler(store *application.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		addCmd := commands.NewAddEntryCommand(store,
			req.GetString("name", ""),
			req.GetString("description", ""),
			req.GetString("url", ""),
			req.GetString("category", ""),
		)

		result, err := addCmd.Execute(ctx)
		if err != nil {
			return mcp.NewToolResultError(commands.UserMessage(err)), nil
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
