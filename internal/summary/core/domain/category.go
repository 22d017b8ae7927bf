package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryActive   Category = "active"
	CategoryInactive Category = "inactive"
	CategoryError    Category = "error"
	CategoryOther    Category = "other"
)

// Literal status variants reported by the monitoring agents. Lookups are
// case-insensitive but otherwise exact.
var (
	activeStatuses = []string{"active", "Active"}

	inactiveStatuses = []string{
		"inactive", "Inactive",
		"Not Logged In", "not logged in", "not_logged_in",
		"offline", "Offline",
		"suspended", "Suspended", "account_suspended",
		"locked", "Locked", "account_locked",
		"banned", "Banned",
		"removed", "Removed", "terminated", "Terminated",
		"channel removed", "Content Removed",
		"Restricted", "Under Review", "review_required",
		"session_expired",
	}

	errorStatuses = []string{
		"error", "Error", "error_screen",
		"temporary_error", "connection_error",
		"feed_error", "feed error", "Feed Error",
		"failed_to_load", "Loading", "loading",
		"security_check", "challenge_required",
		"verification_in_progress", "verification_required",
		"Human Verification Required", "Verification Needed",
		"Security Confirmation Required",
		"Suspicious Activity Detected",
		"No Internet Connection",
		"No account found", "no_account_found",
	}
)

type categoryList struct {
	category Category
	literals []string
}

// priority order: the first list that claims a literal wins.
var categoryLists = []categoryList{
	{CategoryActive, activeStatuses},
	{CategoryInactive, inactiveStatuses},
	{CategoryError, errorStatuses},
}

var (
	statusIndex    map[string]Category
	statusOverlaps []string
)

func init() {
	statusIndex, statusOverlaps = buildStatusIndex(categoryLists)
}

func buildStatusIndex(lists []categoryList) (map[string]Category, []string) {
	index := make(map[string]Category)
	var overlaps []string

	for _, l := range lists {
		for _, lit := range l.literals {
			key := strings.ToLower(lit)
			if prev, ok := index[key]; ok {
				if prev != l.category {
					overlaps = append(overlaps, fmt.Sprintf("%s: %s/%s", key, prev, l.category))
				}
				continue
			}
			index[key] = l.category
		}
	}

	return index, overlaps
}

// Classify maps a raw status label to its category. Unknown labels,
// including the empty string, fall into CategoryOther.
func Classify(status string) Category {
	if c, ok := statusIndex[strings.ToLower(status)]; ok {
		return c
	}
	return CategoryOther
}

// Overlaps lists literals claimed by more than one category list.
func Overlaps() []string {
	out := make([]string, len(statusOverlaps))
	copy(out, statusOverlaps)
	return out
}

// KnownStatuses returns the normalized literals of one category.
func KnownStatuses(c Category) []string {
	var out []string
	for key, cat := range statusIndex {
		if cat == c {
			out = append(out, key)
		}
	}
	return out
}

func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryActive:
		return CategoryActive, true
	case CategoryInactive:
		return CategoryInactive, true
	case CategoryError:
		return CategoryError, true
	case CategoryOther:
		return CategoryOther, true
	}
	return "", false
}

// FormatStatus renders a status label for display: "not_logged_in" becomes
// "Not Logged In".
// Only the first rune of each space-separated word is upper-cased, so
// "feed-error" becomes "Feed-error".
func FormatStatus(status string) string {
	// Casers are stateful; one pair per call.
	upper, lower := cases.Upper(language.Und), cases.Lower(language.Und)
	words := strings.Split(strings.ReplaceAll(status, "_", " "), " ")
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}

// DisplayPlatform upper-cases the first letter of a platform name and leaves
// the rest untouched ("tiktok" -> "Tiktok", "youTube" -> "YouTube").
func DisplayPlatform(platform string) string {
	if platform == "" {
		return platform
	}
	r := []rune(platform)
	head := strings.ToUpper(string(r[0]))
	return head + string(r[1:])
}
