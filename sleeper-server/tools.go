package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerConfig carries the process-wide settings every tool sees. It is
// built once in main and never mutated afterwards.
type ServerConfig struct {
	DefaultLeagueID string
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// report is the single boundary where tool errors become text. Failures
// of any kind (missing parameter, bad argument, transport, remote API)
// render as a ❌-prefixed message; nothing propagates to the host.
func report(out string, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolText(out), nil, nil
}

func toolText(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: s},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("❌ Error: %v", err)},
		},
	}
}
