package main

import (
	"context"
	"fmt"

	"sleeper-mcp/internal/format"
	"sleeper-mcp/internal/sleeper"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetUserArgs struct {
	Username string `json:"username" jsonschema:"Sleeper username or user id (required)"`
}

type UserSportSeasonArgs struct {
	UserID string `json:"user_id" jsonschema:"Sleeper user id (required)"`
	Sport  string `json:"sport" jsonschema:"Sport (default nfl)"`
	Season string `json:"season" jsonschema:"Season year (default 2024)"`
}

func getUser(ctx context.Context, api *sleeper.Client, args GetUserArgs) (string, error) {
	username, err := requireParam(args.Username, "Username or user ID is required")
	if err != nil {
		return "", err
	}
	user, err := api.User(ctx, username)
	if err != nil {
		return "", err
	}
	return "✅ User Found:\n" + format.User(user), nil
}

func getUserLeagues(ctx context.Context, api *sleeper.Client, args UserSportSeasonArgs) (string, error) {
	userID, err := requireParam(args.UserID, "User ID is required")
	if err != nil {
		return "", err
	}
	sport := resolveSport(args.Sport)
	season := resolveSeason(args.Season)

	res, err := api.UserLeagues(ctx, userID, sport, season)
	if err != nil {
		return "", err
	}
	leagues := listOf(res)
	if len(leagues) == 0 {
		return fmt.Sprintf("📭 No leagues found for user %s in %s %s", userID, sport, season), nil
	}
	return format.Leagues(leagues), nil
}

func getUserDrafts(ctx context.Context, api *sleeper.Client, args UserSportSeasonArgs) (string, error) {
	userID, err := requireParam(args.UserID, "User ID is required")
	if err != nil {
		return "", err
	}
	sport := resolveSport(args.Sport)
	season := resolveSeason(args.Season)

	res, err := api.UserDrafts(ctx, userID, sport, season)
	if err != nil {
		return "", err
	}
	drafts := listOf(res)
	if len(drafts) == 0 {
		return fmt.Sprintf("📭 No drafts found for user %s in %s %s", userID, sport, season), nil
	}
	return format.UserDrafts(drafts), nil
}

func getUserHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, GetUserArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args GetUserArgs) (*mcp.CallToolResult, any, error) {
		return report(getUser(ctx, api, args))
	}
}

func getUserLeaguesHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, UserSportSeasonArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args UserSportSeasonArgs) (*mcp.CallToolResult, any, error) {
		return report(getUserLeagues(ctx, api, args))
	}
}

func getUserDraftsHandler(api *sleeper.Client) func(context.Context, *mcp.CallToolRequest, UserSportSeasonArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args UserSportSeasonArgs) (*mcp.CallToolResult, any, error) {
		return report(getUserDrafts(ctx, api, args))
	}
}
