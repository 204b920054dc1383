package format

import (
	"fmt"
	"strings"
)

// WinnersBracket renders the playoff winners bracket. The winner line is
// omitted while a match is undecided.
func WinnersBracket(matches []any) string {
	var b strings.Builder
	b.WriteString("🏆 Winners Bracket:\n\n")
	for _, v := range matches {
		writeBracketMatch(&b, asMap(v), false)
	}
	return b.String()
}

// LosersBracket renders the consolation bracket, annotating matches that
// decide a final placement.
func LosersBracket(matches []any) string {
	var b strings.Builder
	b.WriteString("🎯 Losers Bracket:\n\n")
	for _, v := range matches {
		writeBracketMatch(&b, asMap(v), true)
	}
	return b.String()
}

func writeBracketMatch(b *strings.Builder, match map[string]any, withPlacement bool) {
	fmt.Fprintf(b, "Round %v, Match %v", field(match, "r"), field(match, "m"))
	if withPlacement && truthy(match["p"]) {
		fmt.Fprintf(b, " (for place %v)", match["p"])
	}
	b.WriteString(":\n")
	fmt.Fprintf(b, "  Team 1: Roster %v\n", fieldOr(match, "t1", "TBD"))
	fmt.Fprintf(b, "  Team 2: Roster %v\n", fieldOr(match, "t2", "TBD"))
	if w, ok := match["w"]; ok && w != nil {
		fmt.Fprintf(b, "  Winner: Roster %v\n", w)
	}
	b.WriteString("\n")
}
