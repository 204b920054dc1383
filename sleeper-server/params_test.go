package main

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveLeagueID(t *testing.T) {
	t.Run("ExplicitArgument", func(t *testing.T) {
		lid, err := resolveLeagueID(ServerConfig{DefaultLeagueID: "999"}, " 111 ")
		if err != nil {
			t.Fatal(err)
		}
		if lid != "111" {
			t.Errorf("lid=%q want 111", lid)
		}
	})

	t.Run("FallsBackToDefault", func(t *testing.T) {
		lid, err := resolveLeagueID(ServerConfig{DefaultLeagueID: "999"}, "")
		if err != nil {
			t.Fatal(err)
		}
		if lid != "999" {
			t.Errorf("lid=%q want 999", lid)
		}
	})

	t.Run("BothEmpty", func(t *testing.T) {
		_, err := resolveLeagueID(ServerConfig{}, "   ")
		if err == nil {
			t.Fatal("expected error when no league id is available")
		}
		var mp missingParamError
		if !errors.As(err, &mp) {
			t.Errorf("error type %T, want missingParamError", err)
		}
		if !strings.Contains(err.Error(), "SLEEPER_LEAGUE_ID") {
			t.Errorf("error %q should mention the environment fallback", err)
		}
	})
}

func TestRequireParam(t *testing.T) {
	v, err := requireParam("  bob  ", "Username or user ID is required")
	if err != nil {
		t.Fatal(err)
	}
	if v != "bob" {
		t.Errorf("v=%q want bob", v)
	}

	_, err = requireParam("  ", "Username or user ID is required")
	var mp missingParamError
	if !errors.As(err, &mp) {
		t.Fatalf("error type %T, want missingParamError", err)
	}
	if err.Error() != "Username or user ID is required" {
		t.Errorf("error=%q", err)
	}
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		raw  string
		def  int
		want int
		ok   bool
	}{
		{"", 24, 24, true},
		{"   ", 25, 25, true},
		{"48", 24, 48, true},
		{" 7 ", 24, 7, true},
		{"abc", 24, 0, false},
		{"12.5", 24, 0, false},
	}
	for _, tt := range tests {
		got, ok := intArg(tt.raw, tt.def)
		if ok != tt.ok || got != tt.want {
			t.Errorf("intArg(%q, %d) = (%d, %v), want (%d, %v)", tt.raw, tt.def, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveTrendType(t *testing.T) {
	for _, valid := range []string{"add", "drop", " add "} {
		got, err := resolveTrendType(valid)
		if err != nil {
			t.Errorf("resolveTrendType(%q) unexpected error: %v", valid, err)
		}
		if got != strings.TrimSpace(valid) {
			t.Errorf("resolveTrendType(%q) = %q", valid, got)
		}
	}

	got, err := resolveTrendType("")
	if err != nil || got != "add" {
		t.Errorf("empty trend type should default to add, got (%q, %v)", got, err)
	}

	_, err = resolveTrendType("hold")
	var ia invalidArgumentError
	if !errors.As(err, &ia) {
		t.Fatalf("error type %T, want invalidArgumentError", err)
	}
}

func TestResolveDefaults(t *testing.T) {
	if w := resolveWeek(""); w != "1" {
		t.Errorf("week=%q want 1", w)
	}
	if w := resolveWeek(" 14 "); w != "14" {
		t.Errorf("week=%q want 14", w)
	}
	if s := resolveSport(""); s != "nfl" {
		t.Errorf("sport=%q want nfl", s)
	}
	if s := resolveSeason(""); s != "2024" {
		t.Errorf("season=%q want 2024", s)
	}
}
