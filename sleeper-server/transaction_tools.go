package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/format"
	"sleeper-mcp/internal/sleeper"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func getLeagueTransactions(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueWeekArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	week := resolveWeek(args.Week)

	res, err := api.LeagueTransactions(ctx, lid, week)
	if err != nil {
		return "", err
	}
	transactions := listOf(res)
	if len(transactions) == 0 {
		return fmt.Sprintf("📭 No transactions found for league %s, week %s", lid, week), nil
	}
	return format.Transactions(week, transactions), nil
}

func getTradedPicks(ctx context.Context, cfg ServerConfig, api *sleeper.Client, args LeagueArgs) (string, error) {
	lid, err := resolveLeagueID(cfg, args.LeagueID)
	if err != nil {
		return "", err
	}
	res, err := api.LeagueTradedPicks(ctx, lid)
	if err != nil {
		return "", err
	}
	picks := listOf(res)
	if len(picks) == 0 {
		return fmt.Sprintf("📭 No traded picks found for league %s", lid), nil
	}
	return format.TradedPicks(picks), nil
}

func getLeagueTransactionsHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueWeekArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueWeekArgs) (*mcp.CallToolResult, any, error) {
		return report(getLeagueTransactions(ctx, cfg, api, args))
	}
}

func getTradedPicksHandler(cfg ServerConfig, api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, LeagueArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		return report(getTradedPicks(ctx, cfg, api, args))
	}
}
