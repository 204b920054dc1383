package format

import (
	"fmt"
	"strings"
)

// Roster renders one roster with its season record and a truncated
// starters list. index is the zero-based position within the league.
func Roster(v any, index int) string {
	roster := asMap(v)
	settings := asMap(roster["settings"])
	starters := strSlice(roster["starters"])
	return fmt.Sprintf(`📊 Roster %d (ID: %v)
- Owner: %v
- Record: %vW - %vL - %vT
- Points For: %v.%v
- Points Against: %v.%v
- Players: %d total
- Starters: %s`,
		index+1, field(roster, "roster_id"),
		field(roster, "owner_id"),
		numField(settings, "wins"), numField(settings, "losses"), numField(settings, "ties"),
		numField(settings, "fpts"), numField(settings, "fpts_decimal"),
		numField(settings, "fpts_against"), numField(settings, "fpts_against_decimal"),
		len(asList(roster["players"])),
		inlineList(starters))
}

// Rosters renders every roster in a league.
func Rosters(rosters []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Found %d roster(s):\n\n", len(rosters))
	for i, roster := range rosters {
		fmt.Fprintf(&b, "%s\n\n", Roster(roster, i))
	}
	return b.String()
}
