// Command sleeper-server is an MCP server exposing read-only Sleeper
// fantasy football data: users, leagues, rosters, matchups, brackets,
// transactions, drafts and player lookups. It serves stdio by default
// and streamable HTTP with API-key auth when -http is set.
package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"sleeper-mcp/internal/sleeper"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	var (
		httpAddr    = flag.String("http", "", "serve MCP over HTTP on this address instead of stdio")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for the MCP endpoint")
		baseURL     = flag.String("base-url", sleeper.DefaultBaseURL, "Sleeper API base URL")
		leagueFlag  = flag.String("league", "", "default league id (overrides SLEEPER_LEAGUE_ID)")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via SLEEPER_MCP_API_KEY in HTTP mode")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	defaultLeague := strings.TrimSpace(*leagueFlag)
	if defaultLeague == "" {
		defaultLeague = strings.TrimSpace(os.Getenv("SLEEPER_LEAGUE_ID"))
	}
	cfg := ServerConfig{DefaultLeagueID: defaultLeague}

	api := sleeper.NewClient(sleeper.ClientConfig{
		BaseURL: *baseURL,
		Logger:  logger,
	})

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "sleeper",
			Version: "1.0.0",
		},
		nil,
	)
	registry := make([]toolInfo, 0, 18)
	registerTools(server, &registry, cfg, api)

	if cfg.DefaultLeagueID != "" {
		logger.Info("default league id set", "league_id", cfg.DefaultLeagueID)
	} else {
		logger.Info("no default league id set; callers must provide league_id or set SLEEPER_LEAGUE_ID")
	}

	if *httpAddr == "" {
		logger.Info("starting Sleeper MCP server on stdio")
		if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
		return
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("SLEEPER_MCP_API_KEY"))
	if *requireAuth && apiKey == "" {
		logger.Error("SLEEPER_MCP_API_KEY is required in HTTP mode (set env var or run with -require-auth=false)")
		os.Exit(1)
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	logger.Info("starting Sleeper MCP server on HTTP", "addr", *httpAddr, "path", *mcpPath)
	if err := http.ListenAndServe(*httpAddr, nil); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func registerTools(server *mcp.Server, registry *[]toolInfo, cfg ServerConfig, api *sleeper.Client) {
	addTool(server, registry, &mcp.Tool{
		Name:        "get_user",
		Description: "Get Sleeper user information by username or user ID",
	}, getUserHandler(api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_user_leagues",
		Description: "Get all leagues for a user in a specific sport and season",
	}, getUserLeaguesHandler(api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_league",
		Description: "Get detailed information about a specific league",
	}, getLeagueHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_league_rosters",
		Description: "Get all rosters in a league with standings and player information",
	}, getLeagueRostersHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_league_users",
		Description: "Get all users in a league with their team information",
	}, getLeagueUsersHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_league_matchups",
		Description: "Get all matchups for a specific week in a league",
	}, getLeagueMatchupsHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_winners_bracket",
		Description: "Get the winners playoff bracket for a league",
	}, getWinnersBracketHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_losers_bracket",
		Description: "Get the losers playoff bracket for a league",
	}, getLosersBracketHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_league_transactions",
		Description: "Get all transactions for a specific week in a league including trades, waivers, and free agent pickups",
	}, getLeagueTransactionsHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_traded_picks",
		Description: "Get all traded draft picks in a league including future picks",
	}, getTradedPicksHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_nfl_state",
		Description: "Get current NFL season state including week, season type, and season dates",
	}, getNFLStateHandler(api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_user_drafts",
		Description: "Get all drafts for a user in a specific sport and season",
	}, getUserDraftsHandler(api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_league_drafts",
		Description: "Get all drafts for a league",
	}, getLeagueDraftsHandler(cfg, api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_draft",
		Description: "Get detailed information about a specific draft",
	}, getDraftHandler(api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_draft_picks",
		Description: "Get all picks made in a draft",
	}, getDraftPicksHandler(api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_draft_traded_picks",
		Description: "Get all traded picks in a draft",
	}, getDraftTradedPicksHandler(api))

	addTool(server, registry, &mcp.Tool{
		Name:        "get_trending_players",
		Description: "Get trending players based on add or drop activity",
	}, getTrendingPlayersHandler(api))

	addTool(server, registry, &mcp.Tool{
		Name:        "search_player_info",
		Description: "Search for detailed information about a specific player by their player ID - requires fetching all players first",
	}, searchPlayerInfoHandler(api))
}
