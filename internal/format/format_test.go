package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(starters ...string) map[string]any {
	s := make([]any, 0, len(starters))
	for _, st := range starters {
		s = append(s, st)
	}
	return map[string]any{
		"roster_id": float64(1),
		"owner_id":  "owner1",
		"settings": map[string]any{
			"wins":   float64(5),
			"losses": float64(2),
			"ties":   float64(0),
		},
		"players":  []any{"a", "b", "c"},
		"starters": s,
	}
}

func TestRosterStartersTruncation(t *testing.T) {
	out := Roster(roster("A", "B", "C", "D", "E", "F", "G"), 0)
	assert.Contains(t, out, "- Starters: A, B, C, D, E...")
	assert.NotContains(t, out, ", F")

	out = Roster(roster("A", "B", "C"), 0)
	assert.Contains(t, out, "- Starters: A, B, C")
	assert.NotContains(t, out, "...")
}

func TestRosterDefaults(t *testing.T) {
	out := Roster(map[string]any{}, 2)
	assert.Contains(t, out, "📊 Roster 3 (ID: N/A)")
	assert.Contains(t, out, "- Owner: N/A")
	assert.Contains(t, out, "- Record: 0W - 0L - 0T")
	assert.Contains(t, out, "- Points For: 0.0")
	assert.Contains(t, out, "- Players: 0 total")
}

func TestRostersHeaderCount(t *testing.T) {
	out := Rosters([]any{roster("A"), roster("B")})
	assert.True(t, strings.HasPrefix(out, "📊 Found 2 roster(s):\n\n"))
}

func TestMatchupsGrouping(t *testing.T) {
	matchups := []any{
		map[string]any{"matchup_id": float64(2), "roster_id": float64(10), "points": float64(88.5), "starters": []any{"a"}},
		map[string]any{"matchup_id": float64(1), "roster_id": float64(20), "points": float64(70), "starters": []any{"b"}},
		map[string]any{"matchup_id": float64(2), "roster_id": float64(30), "points": float64(91), "starters": []any{"c"}},
		map[string]any{"matchup_id": float64(1), "roster_id": float64(40), "points": float64(65.2), "starters": []any{"d"}},
	}
	out := Matchups("3", matchups)
	require.Contains(t, out, "🏈 Week 3 Matchups:")

	// Groups appear in first-seen order: 2 before 1.
	group2 := strings.Index(out, "⚔️ Matchup 2:")
	group1 := strings.Index(out, "⚔️ Matchup 1:")
	require.GreaterOrEqual(t, group2, 0)
	require.GreaterOrEqual(t, group1, 0)
	assert.Less(t, group2, group1)

	// Members keep original order within each group.
	r10 := strings.Index(out, "Roster 10:")
	r30 := strings.Index(out, "Roster 30:")
	r20 := strings.Index(out, "Roster 20:")
	r40 := strings.Index(out, "Roster 40:")
	assert.Less(t, r10, r30)
	assert.Less(t, r20, r40)
	assert.Less(t, r30, r20, "all of group 2 renders before group 1")
}

func TestMatchupsCustomPointsOverride(t *testing.T) {
	matchups := []any{
		map[string]any{"matchup_id": float64(1), "roster_id": float64(10), "points": float64(88.5), "custom_points": float64(90), "starters": []any{}},
		map[string]any{"matchup_id": float64(1), "roster_id": float64(20), "points": float64(70.1), "starters": []any{}},
	}
	out := Matchups("1", matchups)
	assert.Contains(t, out, "Roster 10: 90 (override) pts")
	assert.Contains(t, out, "Roster 20: 70.1 pts")
}

func TestMatchupsPure(t *testing.T) {
	matchups := []any{
		map[string]any{"matchup_id": float64(1), "roster_id": float64(10), "points": float64(5), "starters": []any{"x", "y"}},
		map[string]any{"matchup_id": float64(1), "roster_id": float64(20), "points": float64(7), "starters": []any{"z"}},
	}
	assert.Equal(t, Matchups("1", matchups), Matchups("1", matchups))
}

func TestWinnersBracketWinnerLine(t *testing.T) {
	decided := map[string]any{"r": float64(1), "m": float64(1), "t1": float64(3), "t2": float64(6), "w": float64(3)}
	pending := map[string]any{"r": float64(2), "m": float64(2)}

	out := WinnersBracket([]any{decided, pending})
	assert.Contains(t, out, "Round 1, Match 1:")
	assert.Contains(t, out, "  Winner: Roster 3\n")
	assert.Contains(t, out, "Round 2, Match 2:")
	assert.Contains(t, out, "  Team 1: Roster TBD\n")
	assert.Equal(t, 1, strings.Count(out, "Winner:"))
}

func TestLosersBracketPlacement(t *testing.T) {
	out := LosersBracket([]any{
		map[string]any{"r": float64(1), "m": float64(4), "t1": float64(7), "t2": float64(8), "p": float64(5)},
		map[string]any{"r": float64(1), "m": float64(5), "t1": float64(9), "t2": float64(10)},
	})
	assert.Contains(t, out, "Round 1, Match 4 (for place 5):")
	assert.Contains(t, out, "Round 1, Match 5:\n")
}

func TestTransactions(t *testing.T) {
	txns := []any{
		map[string]any{
			"type":   "trade",
			"status": "complete",
			"adds":   map[string]any{"p2": float64(1), "p1": float64(2)},
			"drops":  map[string]any{"p3": float64(1)},
			"draft_picks": []any{
				map[string]any{"season": "2025"},
				map[string]any{"season": "2026"},
			},
		},
		map[string]any{},
	}
	out := Transactions("3", txns)
	assert.True(t, strings.HasPrefix(out, "💼 Week 3 Transactions (2 total):\n\n"))
	assert.Contains(t, out, "1. Type: TRADE - Status: complete")
	// Adds sorted by player id for stable output.
	assert.Contains(t, out, "   Adds: Player p1 to Roster 2, Player p2 to Roster 1\n")
	assert.Contains(t, out, "   Drops: Player p3 from Roster 1\n")
	assert.Contains(t, out, "   Draft Picks: 2 pick(s) involved\n")
	assert.Contains(t, out, "2. Type: UNKNOWN - Status: unknown")
}

func TestTradedPicks(t *testing.T) {
	out := TradedPicks([]any{
		map[string]any{"season": "2025", "round": float64(2), "roster_id": float64(1), "previous_owner_id": float64(4), "owner_id": float64(7)},
	})
	assert.Contains(t, out, "🔄 Traded Draft Picks (1 total):")
	assert.Contains(t, out, "1. 2025 Round 2\n")
	assert.Contains(t, out, "   Original Owner: Roster 1\n")
	assert.Contains(t, out, "   Previous Owner: Roster 4\n")
	assert.Contains(t, out, "   Current Owner: Roster 7\n")
}

func TestDraftPicksTruncation(t *testing.T) {
	picks := make([]any, 0, 63)
	for i := 1; i <= 63; i++ {
		picks = append(picks, map[string]any{
			"pick_no":   float64(i),
			"round":     float64((i-1)/12 + 1),
			"roster_id": float64(i%12 + 1),
			"metadata": map[string]any{
				"first_name": "Player",
				"last_name":  fmt.Sprintf("%d", i),
				"position":   "RB",
				"team":       "SF",
			},
		})
	}
	out := DraftPicks(picks)
	assert.Contains(t, out, "🎯 Draft Picks (63 total):")
	assert.Contains(t, out, "Pick 50 (")
	assert.NotContains(t, out, "Pick 51 (")
	assert.Contains(t, out, "... and 13 more picks\n")

	out = DraftPicks(picks[:3])
	assert.Contains(t, out, "🎯 Draft Picks (3 total):")
	assert.NotContains(t, out, "more picks")
}

func TestDraftPicksKeeperAndUnknown(t *testing.T) {
	out := DraftPicks([]any{
		map[string]any{"pick_no": float64(1), "round": float64(1), "is_keeper": true, "metadata": map[string]any{"first_name": "Jo", "last_name": "Mixon"}},
		map[string]any{"pick_no": float64(2), "round": float64(1), "metadata": map[string]any{}},
	})
	assert.Contains(t, out, "  ⭐ Keeper\n")
	assert.Contains(t, out, "  Player: Unknown - N/A (N/A)\n")
	assert.Equal(t, 1, strings.Count(out, "Keeper"))
}

func TestTrendingPlayers(t *testing.T) {
	players := []any{
		map[string]any{"player_id": "1234", "count": float64(99)},
		map[string]any{"player_id": "5678"},
	}
	out := TrendingPlayers("add", 24, players)
	assert.True(t, strings.HasPrefix(out, "📈 Trending ADD Players (Last 24 hours):\n\n"))
	assert.Contains(t, out, "1. Player ID: 1234 - 99 adds\n")
	assert.Contains(t, out, "2. Player ID: 5678 - 0 adds\n")

	out = TrendingPlayers("drop", 48, players)
	assert.True(t, strings.HasPrefix(out, "📉 Trending DROP Players (Last 48 hours):\n\n"))
	assert.Contains(t, out, "99 drops")
}

func TestPlayerInjuryAnnotation(t *testing.T) {
	injured := map[string]any{
		"first_name":        "Nick",
		"last_name":         "Chubb",
		"position":          "RB",
		"fantasy_positions": []any{"RB"},
		"injury_status":     "Questionable",
	}
	out := Player("4988", injured)
	assert.Contains(t, out, "🏈 Player: Nick Chubb")
	assert.Contains(t, out, "- Player ID: 4988")
	assert.Contains(t, out, "\n⚠️ Injury Status: Questionable")

	delete(injured, "injury_status")
	out = Player("4988", injured)
	assert.NotContains(t, out, "Injury Status")
	assert.Contains(t, out, "- Team: N/A")
}

func TestPlayerFantasyPositions(t *testing.T) {
	out := Player("1", map[string]any{"fantasy_positions": []any{"RB", "WR"}})
	assert.Contains(t, out, "- Fantasy Positions: RB, WR")
}

func TestUser(t *testing.T) {
	out := User(map[string]any{"display_name": "Bob", "username": "bob99", "user_id": "42"})
	assert.Contains(t, out, "👤 User: Bob (@bob99)")
	assert.Contains(t, out, "- User ID: 42")
	assert.Contains(t, out, "- Avatar: N/A")

	assert.Equal(t, "No user data", User(nil))
}

func TestLeagueUsersCommissioner(t *testing.T) {
	out := LeagueUsers([]any{
		map[string]any{"display_name": "Ann", "username": "ann", "user_id": "1", "is_owner": true, "metadata": map[string]any{"team_name": "The Anns"}},
		map[string]any{"display_name": "Ben", "username": "ben", "user_id": "2"},
	})
	assert.True(t, strings.HasPrefix(out, "👥 Found 2 user(s):\n\n"))
	assert.Contains(t, out, "1. Ann (@ann) 👑 Commissioner\n")
	assert.Contains(t, out, "   Team: The Anns\n")
	assert.Contains(t, out, "   Team: No team name\n")
	assert.Equal(t, 1, strings.Count(out, "Commissioner"))
}

func TestLeagueDetailsSettings(t *testing.T) {
	withSettings := map[string]any{
		"name":      "Dynasty",
		"league_id": "111",
		"settings": map[string]any{
			"playoff_teams":  float64(6),
			"waiver_type":    float64(2),
			"trade_deadline": float64(12),
		},
	}
	out := LeagueDetails(withSettings)
	assert.Contains(t, out, "✅ League Details:")
	assert.Contains(t, out, "⚙️ Settings:\n")
	assert.Contains(t, out, "- Playoff Teams: 6\n")
	assert.Contains(t, out, "- Trade Deadline: Week 12\n")

	out = LeagueDetails(map[string]any{"name": "Dynasty"})
	assert.NotContains(t, out, "⚙️ Settings:")
}

func TestLeaguesList(t *testing.T) {
	out := Leagues([]any{
		map[string]any{"name": "A", "league_id": "1"},
		map[string]any{"name": "B", "league_id": "2"},
	})
	assert.True(t, strings.HasPrefix(out, "🏈 Found 2 league(s):\n\n"))
	assert.Contains(t, out, "1. 🏈 League: A\n")
	assert.Contains(t, out, "2. 🏈 League: B\n")
}

func TestNFLState(t *testing.T) {
	out := NFLState(map[string]any{
		"week":        float64(14),
		"season":      "2024",
		"season_type": "regular",
	})
	assert.Contains(t, out, "- Current Week: 14")
	assert.Contains(t, out, "- Season Type: regular")
	assert.Contains(t, out, "- Previous Season: N/A")
}

func TestDraftDetail(t *testing.T) {
	out := Draft(map[string]any{
		"draft_id": "d1",
		"type":     "snake",
		"status":   "complete",
		"settings": map[string]any{
			"teams":      float64(12),
			"rounds":     float64(15),
			"pick_timer": float64(120),
			"slots_qb":   float64(1),
			"slots_rb":   float64(2),
		},
		"metadata": map[string]any{"scoring_type": "ppr"},
	})
	assert.Contains(t, out, "📝 Draft Details:")
	assert.Contains(t, out, "- Pick Timer: 120 seconds")
	assert.Contains(t, out, "- Scoring: ppr")
	assert.Contains(t, out, "- QB: 1")
	assert.Contains(t, out, "- WR: 0")
}
