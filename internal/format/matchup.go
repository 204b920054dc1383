package format

import (
	"fmt"
	"strings"
)

// Matchups renders the week's head-to-head pairings. Entries sharing a
// matchup_id form one group; groups appear in the order each distinct id
// is first seen, and teams keep their original order within a group.
func Matchups(week string, matchups []any) string {
	var ids []any
	groups := make(map[any][]map[string]any)
	for _, v := range matchups {
		matchup := asMap(v)
		id := matchup["matchup_id"]
		if _, seen := groups[id]; !seen {
			ids = append(ids, id)
		}
		groups[id] = append(groups[id], matchup)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏈 Week %s Matchups:\n\n", week)
	for _, id := range ids {
		fmt.Fprintf(&b, "⚔️ Matchup %v:\n", idLabel(id))
		for _, team := range groups[id] {
			points := fmt.Sprintf("%v", numField(team, "points"))
			if custom, ok := team["custom_points"]; ok && custom != nil {
				points = fmt.Sprintf("%v (override)", custom)
			}
			fmt.Fprintf(&b, "  Roster %v: %s pts\n", field(team, "roster_id"), points)
			fmt.Fprintf(&b, "    Starters: %s\n", inlineList(strSlice(team["starters"])))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func idLabel(id any) any {
	if id == nil {
		return "N/A"
	}
	return id
}
