package format

import (
	"fmt"
	"strings"
)

// League renders the core fields of one league.
func League(v any) string {
	league := asMap(v)
	if !truthy(league) {
		return "No league data"
	}
	return fmt.Sprintf(`🏈 League: %v
- League ID: %v
- Season: %v
- Status: %v
- Sport: %v
- Total Rosters: %v
- Draft ID: %v`,
		field(league, "name"), field(league, "league_id"), field(league, "season"),
		field(league, "status"), field(league, "sport"),
		field(league, "total_rosters"), field(league, "draft_id"))
}

// LeagueDetails renders one league plus its settings section when the
// league carries any settings.
func LeagueDetails(v any) string {
	league := asMap(v)

	var b strings.Builder
	fmt.Fprintf(&b, "✅ League Details:\n%s\n\n", League(v))

	if truthy(league["settings"]) {
		settings := asMap(league["settings"])
		b.WriteString("⚙️ Settings:\n")
		fmt.Fprintf(&b, "- Playoff Teams: %v\n", field(settings, "playoff_teams"))
		fmt.Fprintf(&b, "- Waiver Type: %v\n", field(settings, "waiver_type"))
		fmt.Fprintf(&b, "- Trade Deadline: Week %v\n", field(settings, "trade_deadline"))
	}
	return b.String()
}

// Leagues renders a numbered list of leagues.
func Leagues(leagues []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏈 Found %d league(s):\n\n", len(leagues))
	for i, league := range leagues {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, League(league))
	}
	return b.String()
}
