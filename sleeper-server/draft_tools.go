package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/format"
	"sleeper-mcp/internal/sleeper"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type DraftArgs struct {
	DraftID string `json:"draft_id" jsonschema:"Draft id (required)"`
}

func getLeagueDrafts(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	res, err := api.LeagueDrafts(ctx, lid)
	if err != nil {
		return "", err
	}
	drafts := listOf(res)
	if len(drafts) == 0 {
		return fmt.Sprintf("📭 No drafts found for league %s", lid), nil
	}
	return format.LeagueDrafts(drafts), nil
}

func getDraft(ctx context.Context, api *sleeper.Client, args DraftArgs) (string, error) {
	did, err := requireParam(args.DraftID, "Draft ID is required")
	if err != nil {
		return "", err
	}
	draft, err := api.Draft(ctx, did)
	if err != nil {
		return "", err
	}
	return format.Draft(draft), nil
}

func getDraftPicks(ctx context.Context, api *sleeper.Client, args DraftArgs) (string, error) {
	did, err := requireParam(args.DraftID, "Draft ID is required")
	if err != nil {
		return "", err
	}
	res, err := api.DraftPicks(ctx, did)
	if err != nil {
		return "", err
	}
	picks := listOf(res)
	if len(picks) == 0 {
		return fmt.Sprintf("📭 No picks found for draft %s", did), nil
	}
	return format.DraftPicks(picks), nil
}

func getDraftTradedPicks(ctx context.Context, api *sleeper.Client, args DraftArgs) (string, error) {
	did, err := requireParam(args.DraftID, "Draft ID is required")
	if err != nil {
		return "", err
	}
	res, err := api.DraftTradedPicks(ctx, did)
	if err != nil {
		return "", err
	}
	picks := listOf(res)
	if len(picks) == 0 {
		return fmt.Sprintf("📭 No traded picks found for draft %s", did), nil
	}
	return format.DraftTradedPicks(picks), nil
}

func getLeagueDraftsHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		return report(getLeagueDrafts(ctx, cfg, api, args))
	}
}

func getDraftHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, DraftArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args DraftArgs) (*mcp.CallToolResult, any, error) {
		return report(getDraft(ctx, api, args))
	}
}

func getDraftPicksHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, DraftArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args DraftArgs) (*mcp.CallToolResult, any, error) {
		return report(getDraftPicks(ctx, api, args))
	}
}

func getDraftTradedPicksHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, DraftArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args DraftArgs) (*mcp.CallToolResult, any, error) {
		return report(getDraftTradedPicks(ctx, api, args))
	}
}
