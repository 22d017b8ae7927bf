package usecase

import (
	"math"
	"sort"
	"strings"

	"device-status-service/internal/summary/core/domain"
)

// Aggregate classifies every status of every platform and sums the counts
// into the four category buckets. Details keeps a copy of the raw map.
func Aggregate(raw []domain.PlatformSummaryRaw) []domain.PlatformSummary {
	out := make([]domain.PlatformSummary, 0, len(raw))

	for _, item := range raw {
		ps := domain.PlatformSummary{
			Platform: item.Platform,
			Details:  make(domain.RawStatusCount, len(item.Summary)),
		}

		for status, count := range item.Summary {
			ps.Details[status] = count

			switch domain.Classify(status) {
			case domain.CategoryActive:
				ps.Active += count
			case domain.CategoryInactive:
				ps.Inactive += count
			case domain.CategoryError:
				ps.Error += count
			default:
				ps.Other += count
			}
		}

		ps.Total = ps.Active + ps.Inactive + ps.Error + ps.Other
		out = append(out, ps)
	}

	return out
}

func TotalCounts(list []domain.PlatformSummary) domain.Totals {
	var t domain.Totals
	for _, s := range list {
		t.Active += s.Active
		t.Inactive += s.Inactive
		t.Error += s.Error
		t.Other += s.Other
	}
	return t
}

// PlatformData is the chart-ready view: same numbers, display platform names.
func PlatformData(list []domain.PlatformSummary) []domain.PlatformSummary {
	out := make([]domain.PlatformSummary, len(list))
	for i, s := range list {
		s.Platform = domain.DisplayPlatform(s.Platform)
		out[i] = s
	}
	return out
}

// AllStatuses returns the sorted union of raw status labels across platforms.
func AllStatuses(list []domain.PlatformSummary) []string {
	seen := make(map[string]struct{})
	for _, s := range list {
		for status := range s.Details {
			seen[status] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for status := range seen {
		out = append(out, status)
	}
	sort.Strings(out)
	return out
}

// PlatformStatusBreakdown finds a platform case-insensitively; nil if absent.
func PlatformStatusBreakdown(list []domain.PlatformSummary, platform string) domain.RawStatusCount {
	for _, s := range list {
		if strings.EqualFold(s.Platform, platform) {
			return s.Details
		}
	}
	return nil
}

// MergeStatuses folds textual variants that differ only by case into one
// entry, keeping the first display name seen in sorted key order, and sorts
// by count descending.
func MergeStatuses(details domain.RawStatusCount) []domain.StatusCount {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	index := make(map[string]int)
	var out []domain.StatusCount

	for _, k := range keys {
		lower := strings.ToLower(k)
		if i, ok := index[lower]; ok {
			out[i].Count += details[k]
			continue
		}
		index[lower] = len(out)
		out = append(out, domain.StatusCount{
			DisplayName: k,
			Category:    domain.Classify(k),
			Count:       details[k],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out
}

func HealthScore(t domain.Totals) int {
	accounts := t.Accounts()
	if accounts <= 0 {
		return 0
	}
	return int(math.Round(float64(t.Active) / float64(accounts) * 100))
}

func HealthLabel(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Fair"
	case score > 0:
		return "Critical"
	default:
		return "No Data"
	}
}
