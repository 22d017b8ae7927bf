package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"device-status-service/internal/summary/core/domain"
)

const dateLayout = "2006-01-02"

// Diff compares two day counts. PercentChange is rounded to one decimal and
// only set when there is a non-zero baseline.
func Diff(today, yesterday int64) domain.DiffResult {
	res := domain.DiffResult{
		YesterdayCount: yesterday,
		TodayCount:     today,
		Diff:           today - yesterday,
	}

	if yesterday > 0 {
		pct := math.Round(float64(res.Diff)/float64(yesterday)*100*10) / 10
		res.PercentChange = &pct
	}

	return res
}

// Compare diffs two raw summaries. Platforms and statuses are the sorted
// union of both days; a key missing on one side counts as zero.
func Compare(today, yesterday *domain.SummaryRaw) domain.Comparison {
	res := domain.Comparison{}
	todayBy := indexByPlatform(today)
	yesterdayBy := indexByPlatform(yesterday)

	if today != nil {
		res.Date = today.Date
	}
	if yesterday != nil {
		res.PreviousDate = yesterday.Date
	}

	for _, platform := range unionKeys(todayBy, yesterdayBy) {
		t := todayBy[platform]
		y := yesterdayBy[platform]

		pc := domain.PlatformComparison{
			Platform: platform,
			Total:    Diff(sumCounts(t), sumCounts(y)),
		}

		for _, status := range unionKeys(t, y) {
			pc.Statuses = append(pc.Statuses, domain.StatusComparison{
				Status:     status,
				DiffResult: Diff(t[status], y[status]),
			})
		}

		res.Platforms = append(res.Platforms, pc)
	}

	return res
}

// PreviousDay returns the calendar day before date (YYYY-MM-DD).
func PreviousDay(date string) (string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return d.AddDate(0, 0, -1).Format(dateLayout), nil
}

func indexByPlatform(s *domain.SummaryRaw) map[string]domain.RawStatusCount {
	out := make(map[string]domain.RawStatusCount)
	if s == nil {
		return out
	}
	for _, p := range s.Summary {
		// a platform listed twice is merged rather than overwritten
		merged, ok := out[p.Platform]
		if !ok {
			merged = make(domain.RawStatusCount, len(p.Summary))
			out[p.Platform] = merged
		}
		for status, n := range p.Summary {
			merged[status] += n
		}
	}
	return out
}

func unionKeys[V any](a, b map[string]V) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sumCounts(m domain.RawStatusCount) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}
