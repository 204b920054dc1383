package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/format"
	"sleeper-mcp/internal/sleeper"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TrendingPlayersArgs struct {
	TrendType     string `json:"trend_type" jsonschema:"Trend direction: add or drop (default add)"`
	LookbackHours string `json:"lookback_hours" jsonschema:"Lookback window in hours (default 24)"`
	Limit         string `json:"limit" jsonschema:"Maximum players to return (default 25)"`
}

type PlayerArgs struct {
	PlayerID string `json:"player_id" jsonschema:"Sleeper player id (required)"`
}

type NFLStateArgs struct{}

func getTrendingPlayers(ctx context.Context, api *sleeper.Client, args TrendingPlayersArgs) (string, error) {
	trendType, err := resolveTrendType(args.TrendType)
	if err != nil {
		return "", err
	}
	lookback, lookbackOK := intArg(args.LookbackHours, defaultLookbackHours)
	limit, limitOK := intArg(args.Limit, defaultTrendingLimit)
	if !lookbackOK || !limitOK {
		return "", invalidArgumentError("lookback_hours and limit must be valid numbers")
	}

	res, err := api.TrendingPlayers(ctx, trendType, lookback, limit)
	if err != nil {
		return "", err
	}
	players := listOf(res)
	if len(players) == 0 {
		return fmt.Sprintf("📭 No trending %s players found", trendType), nil
	}
	return format.TrendingPlayers(trendType, lookback, players), nil
}

// searchPlayerInfo fetches the full player directory and looks up one id.
// An id absent from the directory is a "not found" outcome, not an error.
func searchPlayerInfo(ctx context.Context, api *sleeper.Client, args PlayerArgs) (string, error) {
	playerID, err := requireParam(args.PlayerID, "Player ID is required")
	if err != nil {
		return "", err
	}
	res, err := api.AllPlayers(ctx)
	if err != nil {
		return "", err
	}
	directory, _ := res.(map[string]any)
	player, ok := directory[playerID]
	if !ok || player == nil {
		return fmt.Sprintf("❌ Player ID %s not found", playerID), nil
	}
	return format.Player(playerID, player), nil
}

func getNFLState(ctx context.Context, api *sleeper.Client) (string, error) {
	state, err := api.NFLState(ctx)
	if err != nil {
		return "", err
	}
	return format.NFLState(state), nil
}

func getTrendingPlayersHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, TrendingPlayersArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TrendingPlayersArgs) (*mcp.CallToolResult, any, error) {
		return report(getTrendingPlayers(ctx, api, args))
	}
}

func searchPlayerInfoHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, PlayerArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerArgs) (*mcp.CallToolResult, any, error) {
		return report(searchPlayerInfo(ctx, api, args))
	}
}

func getNFLStateHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, NFLStateArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args NFLStateArgs) (*mcp.CallToolResult, any, error) {
		return report(getNFLState(ctx, api))
	}
}
