package domain

import (
	"strings"
	"testing"
)

func TestClassify_KnownLiteralsAnyCasing(t *testing.T) {
	for _, l := range categoryLists {
		for _, lit := range l.literals {
			variants := []string{lit, strings.ToLower(lit), strings.ToUpper(lit)}
			for _, v := range variants {
				if got := Classify(v); got != l.category {
					t.Fatalf("Classify(%q) = %s, expected %s", v, got, l.category)
				}
			}
		}
	}
}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		status string
		want   Category
	}{
		{"Not Logged In", CategoryInactive},
		{"active", CategoryActive},
		{"frobnicate", CategoryOther},
		{"error_screen", CategoryError},
		{"ERROR_SCREEN", CategoryError},
		{"", CategoryOther},
		{"Suspended", CategoryInactive},
		{"no account found", CategoryError},
		{"Human Verification Required", CategoryError},
	}

	for _, tt := range tests {
		if got := Classify(tt.status); got != tt.want {
			t.Errorf("Classify(%q) = %s, expected %s", tt.status, got, tt.want)
		}
	}
}

func TestClassify_NoPartialMatching(t *testing.T) {
	for _, s := range []string{"active ", "inactive_account", "not logged", "errors", "Not_Logged In "} {
		if got := Classify(s); got != CategoryOther {
			t.Errorf("Classify(%q) = %s, expected other", s, got)
		}
	}
}

func TestStatusIndex_NoOverlaps(t *testing.T) {
	if o := Overlaps(); len(o) != 0 {
		t.Fatalf("expected no overlapping literals, got %v", o)
	}
}

func TestBuildStatusIndex_FirstListWins(t *testing.T) {
	lists := []categoryList{
		{CategoryActive, []string{"ok"}},
		{CategoryError, []string{"OK", "broken"}},
	}

	index, overlaps := buildStatusIndex(lists)

	if index["ok"] != CategoryActive {
		t.Fatalf("expected ok=active, got %s", index["ok"])
	}
	if index["broken"] != CategoryError {
		t.Fatalf("expected broken=error, got %s", index["broken"])
	}
	if len(overlaps) != 1 {
		t.Fatalf("expected 1 overlap, got %v", overlaps)
	}
}

func TestKnownStatuses(t *testing.T) {
	active := KnownStatuses(CategoryActive)
	if len(active) != 1 || active[0] != "active" {
		t.Fatalf("expected [active], got %v", active)
	}
	if len(KnownStatuses(CategoryOther)) != 0 {
		t.Fatalf("other should have no literals")
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory(" Inactive "); !ok || c != CategoryInactive {
		t.Fatalf("expected inactive, got %q %v", c, ok)
	}
	if _, ok := ParseCategory("unknown"); ok {
		t.Fatalf("expected unknown to be rejected")
	}
}

func TestFormatStatus(t *testing.T) {
	tests := map[string]string{
		"not_logged_in": "Not Logged In",
		"FEED ERROR":    "Feed Error",
		"active":        "Active",
		"under review":  "Under Review",
		"feed-error":    "Feed-error",
		"error_SCREEN":  "Error Screen",
		"":              "",
	}
	for in, want := range tests {
		if got := FormatStatus(in); got != want {
			t.Errorf("FormatStatus(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestDisplayPlatform(t *testing.T) {
	tests := map[string]string{
		"tiktok":  "Tiktok",
		"youTube": "YouTube",
		"":        "",
	}
	for in, want := range tests {
		if got := DisplayPlatform(in); got != want {
			t.Errorf("DisplayPlatform(%q) = %q, expected %q", in, got, want)
		}
	}
}
