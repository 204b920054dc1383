package format

import (
	"fmt"
	"strings"
)

const draftPicksMax = 50

// UserDrafts renders the drafts a user participates in.
func UserDrafts(drafts []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Found %d draft(s):\n\n", len(drafts))
	for i, v := range drafts {
		draft := asMap(v)
		fmt.Fprintf(&b, "%d. Draft ID: %v\n", i+1, field(draft, "draft_id"))
		fmt.Fprintf(&b, "   Type: %v\n", field(draft, "type"))
		fmt.Fprintf(&b, "   Status: %v\n", field(draft, "status"))
		fmt.Fprintf(&b, "   League ID: %v\n", field(draft, "league_id"))
		fmt.Fprintf(&b, "   Season: %v\n\n", field(draft, "season"))
	}
	return b.String()
}

// LeagueDrafts renders a league's drafts with their core settings.
func LeagueDrafts(drafts []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Found %d draft(s):\n\n", len(drafts))
	for i, v := range drafts {
		draft := asMap(v)
		settings := asMap(draft["settings"])
		metadata := asMap(draft["metadata"])
		fmt.Fprintf(&b, "%d. Draft ID: %v\n", i+1, field(draft, "draft_id"))
		fmt.Fprintf(&b, "   Type: %v\n", field(draft, "type"))
		fmt.Fprintf(&b, "   Status: %v\n", field(draft, "status"))
		fmt.Fprintf(&b, "   Season: %v\n", field(draft, "season"))
		fmt.Fprintf(&b, "   Teams: %v\n", field(settings, "teams"))
		fmt.Fprintf(&b, "   Rounds: %v\n", field(settings, "rounds"))
		fmt.Fprintf(&b, "   Scoring: %v\n\n", field(metadata, "scoring_type"))
	}
	return b.String()
}

// Draft renders one draft's full detail including roster slot layout.
func Draft(v any) string {
	draft := asMap(v)
	settings := asMap(draft["settings"])
	metadata := asMap(draft["metadata"])
	return fmt.Sprintf(`📝 Draft Details:
- Draft ID: %v
- Type: %v
- Status: %v
- League ID: %v
- Season: %v
- Sport: %v

⚙️ Settings:
- Teams: %v
- Rounds: %v
- Pick Timer: %v seconds
- Scoring: %v

📊 Roster Slots:
- QB: %v
- RB: %v
- WR: %v
- TE: %v
- FLEX: %v
- K: %v
- DEF: %v
- BN: %v`,
		field(draft, "draft_id"), field(draft, "type"), field(draft, "status"),
		field(draft, "league_id"), field(draft, "season"), field(draft, "sport"),
		field(settings, "teams"), field(settings, "rounds"),
		field(settings, "pick_timer"), field(metadata, "scoring_type"),
		numField(settings, "slots_qb"), numField(settings, "slots_rb"),
		numField(settings, "slots_wr"), numField(settings, "slots_te"),
		numField(settings, "slots_flex"), numField(settings, "slots_k"),
		numField(settings, "slots_def"), numField(settings, "slots_bn"))
}

// DraftPicks renders draft picks up to a display cutoff of 50, with a
// trailing line counting whatever was omitted. The header count always
// reflects the full collection.
func DraftPicks(picks []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Draft Picks (%d total):\n\n", len(picks))

	shown := picks
	if len(picks) > draftPicksMax {
		shown = picks[:draftPicksMax]
	}
	for _, v := range shown {
		pick := asMap(v)
		metadata := asMap(pick["metadata"])
		name := strings.TrimSpace(fmt.Sprintf("%v %v",
			fieldOr(metadata, "first_name", ""), fieldOr(metadata, "last_name", "")))
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(&b, "Pick %v (Round %v):\n", field(pick, "pick_no"), field(pick, "round"))
		fmt.Fprintf(&b, "  Player: %s - %v (%v)\n", name, field(metadata, "position"), field(metadata, "team"))
		fmt.Fprintf(&b, "  Roster ID: %v\n", field(pick, "roster_id"))
		if truthy(pick["is_keeper"]) {
			b.WriteString("  ⭐ Keeper\n")
		}
		b.WriteString("\n")
	}

	if len(picks) > draftPicksMax {
		fmt.Fprintf(&b, "... and %d more picks\n", len(picks)-draftPicksMax)
	}
	return b.String()
}

// DraftTradedPicks renders picks traded within a single draft.
func DraftTradedPicks(picks []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔄 Traded Draft Picks (%d total):\n\n", len(picks))
	for i, v := range picks {
		pick := asMap(v)
		fmt.Fprintf(&b, "%d. %v Round %v\n", i+1, field(pick, "season"), field(pick, "round"))
		fmt.Fprintf(&b, "   Original: Roster %v\n", field(pick, "roster_id"))
		fmt.Fprintf(&b, "   Previous: Roster %v\n", field(pick, "previous_owner_id"))
		fmt.Fprintf(&b, "   Current: Roster %v\n\n", field(pick, "owner_id"))
	}
	return b.String()
}
