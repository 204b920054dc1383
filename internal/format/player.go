package format

import (
	"fmt"
	"strings"
)

// TrendingPlayers renders the add/drop activity leaderboard for the
// lookback window.
func TrendingPlayers(trendType string, lookbackHours int, players []any) string {
	emoji := "📈"
	if trendType == "drop" {
		emoji = "📉"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s Trending %s Players (Last %d hours):\n\n", emoji, strings.ToUpper(trendType), lookbackHours)
	for i, v := range players {
		player := asMap(v)
		fmt.Fprintf(&b, "%d. Player ID: %v - %v %ss\n", i+1,
			field(player, "player_id"), numField(player, "count"), trendType)
	}
	return b.String()
}

// Player renders one entry from the full player directory. The injury
// line appears only when an injury status is set.
func Player(playerID string, v any) string {
	player := asMap(v)
	var b strings.Builder
	fmt.Fprintf(&b, `🏈 Player: %v %v
- Player ID: %s
- Position: %v
- Team: %v
- Number: #%v
- Status: %v
- Age: %v
- Height: %v
- Weight: %v
- College: %v
- Years Exp: %v
- Fantasy Positions: %s`,
		fieldOr(player, "first_name", ""), fieldOr(player, "last_name", ""),
		playerID,
		field(player, "position"), field(player, "team"), field(player, "number"),
		field(player, "status"), field(player, "age"), field(player, "height"),
		field(player, "weight"), field(player, "college"), field(player, "years_exp"),
		strings.Join(strSlice(player["fantasy_positions"]), ", "))

	if truthy(player["injury_status"]) {
		fmt.Fprintf(&b, "\n⚠️ Injury Status: %v", player["injury_status"])
	}
	return b.String()
}
