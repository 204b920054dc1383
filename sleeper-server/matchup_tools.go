package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/format"
	"sleeper-mcp/internal/sleeper"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func getLeagueMatchups(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueWeekArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	week := resolveWeek(args.Week)

	res, err := api.LeagueMatchups(ctx, lid, week)
	if err != nil {
		return "", err
	}
	matchups := listOf(res)
	if len(matchups) == 0 {
		return fmt.Sprintf("📭 No matchups found for league %s, week %s", lid, week), nil
	}
	return format.Matchups(week, matchups), nil
}

func getWinnersBracket(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	res, err := api.WinnersBracket(ctx, lid)
	if err != nil {
		return "", err
	}
	bracket := listOf(res)
	if len(bracket) == 0 {
		return fmt.Sprintf("📭 No playoff bracket found for league %s", lid), nil
	}
	return format.WinnersBracket(bracket), nil
}

func getLosersBracket(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	res, err := api.LosersBracket(ctx, lid)
	if err != nil {
		return "", err
	}
	bracket := listOf(res)
	if len(bracket) == 0 {
		return fmt.Sprintf("📭 No losers bracket found for league %s", lid), nil
	}
	return format.LosersBracket(bracket), nil
}

func getLeagueMatchupsHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueWeekArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueWeekArgs) (*mcp.CallToolResult, any, error) {
		return report(getLeagueMatchups(ctx, cfg, api, args))
	}
}

func getWinnersBracketHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		return report(getWinnersBracket(ctx, cfg, api, args))
	}
}

func getLosersBracketHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		return report(getLosersBracket(ctx, cfg, api, args))
	}
}
