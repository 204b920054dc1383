package format

import (
	"fmt"
	"sort"
	"strings"
)

// Transactions renders one week's trades, waivers and free-agent moves.
// Adds and drops are listed in player-id order so the report is stable
// across runs.
func Transactions(week string, transactions []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💼 Week %s Transactions (%d total):\n\n", week, len(transactions))
	for i, v := range transactions {
		txn := asMap(v)
		txnType := fmt.Sprintf("%v", fieldOr(txn, "type", "unknown"))
		status := fieldOr(txn, "status", "unknown")
		fmt.Fprintf(&b, "%d. Type: %s - Status: %v\n", i+1, strings.ToUpper(txnType), status)

		if adds := asMap(txn["adds"]); len(adds) > 0 {
			fmt.Fprintf(&b, "   Adds: %s\n", playerMoves(adds, "to"))
		}
		if drops := asMap(txn["drops"]); len(drops) > 0 {
			fmt.Fprintf(&b, "   Drops: %s\n", playerMoves(drops, "from"))
		}
		if picks := asList(txn["draft_picks"]); len(picks) > 0 {
			fmt.Fprintf(&b, "   Draft Picks: %d pick(s) involved\n", len(picks))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func playerMoves(moves map[string]any, direction string) string {
	playerIDs := make([]string, 0, len(moves))
	for pid := range moves {
		playerIDs = append(playerIDs, pid)
	}
	sort.Strings(playerIDs)

	parts := make([]string, 0, len(playerIDs))
	for _, pid := range playerIDs {
		parts = append(parts, fmt.Sprintf("Player %s %s Roster %v", pid, direction, moves[pid]))
	}
	return strings.Join(parts, ", ")
}

// TradedPicks renders the league's traded draft picks, including future
// seasons, with the full ownership chain per pick.
func TradedPicks(picks []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔄 Traded Draft Picks (%d total):\n\n", len(picks))
	for i, v := range picks {
		pick := asMap(v)
		fmt.Fprintf(&b, "%d. %v Round %v\n", i+1, field(pick, "season"), field(pick, "round"))
		fmt.Fprintf(&b, "   Original Owner: Roster %v\n", field(pick, "roster_id"))
		fmt.Fprintf(&b, "   Previous Owner: Roster %v\n", field(pick, "previous_owner_id"))
		fmt.Fprintf(&b, "   Current Owner: Roster %v\n\n", field(pick, "owner_id"))
	}
	return b.String()
}
