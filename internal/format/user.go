package format

import (
	"fmt"
	"strings"
)

// User renders one Sleeper user profile.
func User(v any) string {
	user := asMap(v)
	if !truthy(user) {
		return "No user data"
	}
	return fmt.Sprintf(`👤 User: %v (@%v)
- User ID: %v
- Avatar: %v`,
		field(user, "display_name"), field(user, "username"),
		field(user, "user_id"), field(user, "avatar"))
}

// LeagueUsers renders the member list of a league, marking the
// commissioner when the flag is set.
func LeagueUsers(users []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👥 Found %d user(s):\n\n", len(users))
	for i, v := range users {
		user := asMap(v)
		metadata := asMap(user["metadata"])
		teamName := fieldOr(metadata, "team_name", "No team name")
		marker := ""
		if truthy(user["is_owner"]) {
			marker = "👑 Commissioner"
		}
		fmt.Fprintf(&b, "%d. %v (@%v) %s\n", i+1, field(user, "display_name"), field(user, "username"), marker)
		fmt.Fprintf(&b, "   Team: %v\n", teamName)
		fmt.Fprintf(&b, "   User ID: %v\n\n", field(user, "user_id"))
	}
	return b.String()
}
