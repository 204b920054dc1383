package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/format"
	"sleeper-mcp/internal/sleeper"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type LeagueArgs struct {
	LeagueID string `json:"league_id" jsonschema:"League id (falls back to SLEEPER_LEAGUE_ID)"`
}

type LeagueWeekArgs struct {
	LeagueID string `json:"league_id" jsonschema:"League id (falls back to SLEEPER_LEAGUE_ID)"`
	Week     string `json:"week" jsonschema:"Week number (default 1)"`
}

func getLeague(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	league, err := api.League(ctx, lid)
	if err != nil {
		return "", err
	}
	return format.LeagueDetails(league), nil
}

func getLeagueRosters(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	res, err := api.LeagueRosters(ctx, lid)
	if err != nil {
		return "", err
	}
	rosters := listOf(res)
	if len(rosters) == 0 {
		return fmt.Sprintf("📭 No rosters found for league %s", lid), nil
	}
	return format.Rosters(rosters), nil
}

func getLeagueUsers(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	res, err := api.LeagueUsers(ctx, lid)
	if err != nil {
		return "", err
	}
	users := listOf(res)
	if len(users) == 0 {
		return fmt.Sprintf("📭 No users found for league %s", lid), nil
	}
	return format.LeagueUsers(users), nil
}

func getLeagueHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		return report(getLeague(ctx, cfg, api, args))
	}
}

func getLeagueRostersHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		return report(getLeagueRosters(ctx, cfg, api, args))
	}
}

func getLeagueUsersHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		return report(getLeagueUsers(ctx, cfg, api, args))
	}
}
