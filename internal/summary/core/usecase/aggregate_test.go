package usecase_test

import (
	"reflect"
	"testing"

	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/usecase"
)

func sampleRaw() []domain.PlatformSummaryRaw {
	return []domain.PlatformSummaryRaw{
		{
			Platform: "tiktok",
			Summary: domain.RawStatusCount{
				"active":        40,
				"Not Logged In": 5,
				"suspended":     2,
				"error_screen":  3,
				"frobnicate":    1,
			},
		},
		{
			Platform: "instagram",
			Summary: domain.RawStatusCount{
				"Active":  10,
				"Loading": 4,
			},
		},
		{
			Platform: "empty",
			Summary:  domain.RawStatusCount{},
		},
	}
}

func TestAggregate_Buckets(t *testing.T) {
	out := usecase.Aggregate(sampleRaw())

	if len(out) != 3 {
		t.Fatalf("expected 3 platforms, got %d", len(out))
	}

	tk := out[0]
	if tk.Platform != "tiktok" {
		t.Fatalf("expected input order to be kept, got %s first", tk.Platform)
	}
	if tk.Active != 40 || tk.Inactive != 7 || tk.Error != 3 || tk.Other != 1 {
		t.Fatalf("unexpected buckets: %+v", tk)
	}
	if tk.Total != 51 {
		t.Fatalf("expected total=51, got %d", tk.Total)
	}

	ig := out[1]
	if ig.Active != 10 || ig.Error != 4 || ig.Total != 14 {
		t.Fatalf("unexpected buckets: %+v", ig)
	}

	if out[2].Total != 0 {
		t.Fatalf("expected empty platform total=0, got %d", out[2].Total)
	}
}

func TestAggregate_ConservesCounts(t *testing.T) {
	raw := sampleRaw()
	out := usecase.Aggregate(raw)

	for i, p := range out {
		var in int64
		for _, n := range raw[i].Summary {
			in += n
		}
		if p.Active+p.Inactive+p.Error+p.Other != in {
			t.Fatalf("%s: buckets do not sum to input %d: %+v", p.Platform, in, p)
		}
		if p.Total != in {
			t.Fatalf("%s: total %d != input %d", p.Platform, p.Total, in)
		}
	}
}

func TestAggregate_DetailsAreACopy(t *testing.T) {
	raw := sampleRaw()
	out := usecase.Aggregate(raw)

	if !reflect.DeepEqual(out[0].Details, raw[0].Summary) {
		t.Fatalf("details should equal the raw map")
	}

	out[0].Details["active"] = 999
	if raw[0].Summary["active"] != 40 {
		t.Fatalf("mutating details must not touch the input")
	}
}

func TestTotalCounts_SumsPlatformBuckets(t *testing.T) {
	out := usecase.Aggregate(sampleRaw())
	totals := usecase.TotalCounts(out)

	var want domain.Totals
	for _, p := range out {
		want.Active += p.Active
		want.Inactive += p.Inactive
		want.Error += p.Error
		want.Other += p.Other
	}

	if totals != want {
		t.Fatalf("expected %+v, got %+v", want, totals)
	}
	if totals.Accounts() != 50+7+7 {
		t.Fatalf("expected 64 accounts, got %d", totals.Accounts())
	}
}

func TestPlatformData_CapitalizesWithoutMutating(t *testing.T) {
	out := usecase.Aggregate(sampleRaw())
	view := usecase.PlatformData(out)

	if view[0].Platform != "Tiktok" || view[1].Platform != "Instagram" {
		t.Fatalf("unexpected display names: %s, %s", view[0].Platform, view[1].Platform)
	}
	if out[0].Platform != "tiktok" {
		t.Fatalf("source list must keep raw names")
	}
	if view[0].Total != out[0].Total {
		t.Fatalf("numbers must be unchanged")
	}
}

func TestAllStatuses_SortedUnion(t *testing.T) {
	out := usecase.Aggregate(sampleRaw())
	got := usecase.AllStatuses(out)
	want := []string{"Active", "Loading", "Not Logged In", "active", "error_screen", "frobnicate", "suspended"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPlatformStatusBreakdown(t *testing.T) {
	out := usecase.Aggregate(sampleRaw())

	if d := usecase.PlatformStatusBreakdown(out, "TikTok"); d == nil || d["active"] != 40 {
		t.Fatalf("expected case-insensitive match, got %v", d)
	}
	if d := usecase.PlatformStatusBreakdown(out, "youtube"); d != nil {
		t.Fatalf("expected nil for unknown platform, got %v", d)
	}
}

func TestMergeStatuses(t *testing.T) {
	got := usecase.MergeStatuses(domain.RawStatusCount{
		"Suspended": 3,
		"suspended": 4,
		"active":    5,
		"weird":     1,
	})

	if len(got) != 3 {
		t.Fatalf("expected 3 merged statuses, got %+v", got)
	}
	if got[0].DisplayName != "Suspended" || got[0].Count != 7 || got[0].Category != domain.CategoryInactive {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[1].DisplayName != "active" || got[1].Count != 5 {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
	if got[2].Category != domain.CategoryOther {
		t.Fatalf("expected weird=other, got %+v", got[2])
	}
}

func TestHealthScoreAndLabel(t *testing.T) {
	tests := []struct {
		totals domain.Totals
		score  int
		label  string
	}{
		{domain.Totals{}, 0, "No Data"},
		{domain.Totals{Active: 9, Inactive: 1}, 90, "Excellent"},
		{domain.Totals{Active: 3, Error: 1, Other: 100}, 75, "Good"},
		{domain.Totals{Active: 1, Inactive: 1}, 50, "Fair"},
		{domain.Totals{Active: 1, Error: 9}, 10, "Critical"},
		{domain.Totals{Inactive: 4}, 0, "No Data"},
	}

	for _, tt := range tests {
		score := usecase.HealthScore(tt.totals)
		if score != tt.score {
			t.Errorf("HealthScore(%+v) = %d, expected %d", tt.totals, score, tt.score)
		}
		if l := usecase.HealthLabel(score); l != tt.label {
			t.Errorf("HealthLabel(%d) = %q, expected %q", score, l, tt.label)
		}
	}
}
