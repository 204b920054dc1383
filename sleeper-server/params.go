package main

import (
	"strconv"
	"strings"
)

// missingParamError marks a required identifier that was empty after
// trimming with no default to fall back on.
type missingParamError string

func (e missingParamError) Error() string { return string(e) }

// invalidArgumentError marks a supplied value that failed validation.
// It always short-circuits before any network call.
type invalidArgumentError string

func (e invalidArgumentError) Error() string { return string(e) }

const (
	defaultSport  = "nfl"
	defaultSeason = "2024"
	defaultWeek   = "1"

	defaultLookbackHours = 24
	defaultTrendingLimit = 25
)

// resolveLeagueID applies the league-id fallback chain: explicit argument
// first, then the process-wide default from configuration.
func resolveLeagueID(cfg ServerConfig, arg string) (string, error) {
	if lid := strings.TrimSpace(arg); lid != "" {
		return lid, nil
	}
	if lid := strings.TrimSpace(cfg.DefaultLeagueID); lid != "" {
		return lid, nil
	}
	return "", missingParamError("League ID is required (provide league_id or set SLEEPER_LEAGUE_ID environment variable)")
}

// requireParam trims value and fails with msg when nothing remains.
func requireParam(value, msg string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", missingParamError(msg)
	}
	return v, nil
}

func resolveWeek(week string) string {
	if w := strings.TrimSpace(week); w != "" {
		return w
	}
	return defaultWeek
}

func resolveSport(sport string) string {
	if s := strings.TrimSpace(sport); s != "" {
		return s
	}
	return defaultSport
}

func resolveSeason(season string) string {
	if s := strings.TrimSpace(season); s != "" {
		return s
	}
	return defaultSeason
}

// intArg parses a numeric-ish string argument. Empty means "use the
// default"; anything non-empty must be a valid integer.
func intArg(raw string, def int) (int, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// resolveTrendType validates the trending direction. Empty falls back to
// "add"; anything else outside the enumerated set is rejected.
func resolveTrendType(raw string) (string, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "add", nil
	}
	if t != "add" && t != "drop" {
		return "", invalidArgumentError("trend_type must be 'add' or 'drop'")
	}
	return t, nil
}

func listOf(v any) []any {
	l, _ := v.([]any)
	return l
}
