package format

import "fmt"

// NFLState renders the current season/week snapshot.
func NFLState(v any) string {
	state := asMap(v)
	return fmt.Sprintf(`🏈 NFL State:
- Current Week: %v
- Display Week: %v
- Season: %v
- Season Type: %v
- Season Start: %v
- League Season: %v
- League Create Season: %v
- Previous Season: %v`,
		field(state, "week"), field(state, "display_week"), field(state, "season"),
		field(state, "season_type"), field(state, "season_start_date"),
		field(state, "league_season"), field(state, "league_create_season"),
		field(state, "previous_season"))
}
