package usecase_test

import (
	"errors"
	"testing"

	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/usecase"
)

func TestDiff(t *testing.T) {
	res := usecase.Diff(15, 10)
	if res.Diff != 5 {
		t.Fatalf("expected diff=5, got %d", res.Diff)
	}
	if res.PercentChange == nil || *res.PercentChange != 50.0 {
		t.Fatalf("expected percent=50.0, got %v", res.PercentChange)
	}

	res = usecase.Diff(5, 0)
	if res.Diff != 5 {
		t.Fatalf("expected diff=5, got %d", res.Diff)
	}
	if res.PercentChange != nil {
		t.Fatalf("expected no percent change with zero baseline, got %v", *res.PercentChange)
	}
}

func TestDiff_NegativeAndRounded(t *testing.T) {
	res := usecase.Diff(1, 3)
	if res.Diff != -2 {
		t.Fatalf("expected diff=-2, got %d", res.Diff)
	}
	if res.PercentChange == nil || *res.PercentChange != -66.7 {
		t.Fatalf("expected -66.7, got %v", res.PercentChange)
	}
	if res.TodayCount != 1 || res.YesterdayCount != 3 {
		t.Fatalf("counts not kept: %+v", res)
	}
}

func TestCompare_UnionOfKeys(t *testing.T) {
	today := &domain.SummaryRaw{
		Date: "2025-12-08",
		Summary: []domain.PlatformSummaryRaw{
			{Platform: "tiktok", Summary: domain.RawStatusCount{"active": 15, "banned": 2}},
			{Platform: "youtube", Summary: domain.RawStatusCount{"active": 1}},
		},
	}
	yesterday := &domain.SummaryRaw{
		Date: "2025-12-07",
		Summary: []domain.PlatformSummaryRaw{
			{Platform: "tiktok", Summary: domain.RawStatusCount{"active": 10, "offline": 4}},
			{Platform: "facebook", Summary: domain.RawStatusCount{"error": 3}},
		},
	}

	res := usecase.Compare(today, yesterday)

	if len(res.Platforms) != 3 {
		t.Fatalf("expected 3 platforms, got %d", len(res.Platforms))
	}
	if res.Platforms[0].Platform != "facebook" || res.Platforms[1].Platform != "tiktok" || res.Platforms[2].Platform != "youtube" {
		t.Fatalf("expected sorted platforms, got %+v", res.Platforms)
	}

	fb := res.Platforms[0]
	if fb.Total.TodayCount != 0 || fb.Total.YesterdayCount != 3 || fb.Total.Diff != -3 {
		t.Fatalf("unexpected facebook total: %+v", fb.Total)
	}

	tk := res.Platforms[1]
	if len(tk.Statuses) != 3 {
		t.Fatalf("expected 3 statuses for tiktok, got %+v", tk.Statuses)
	}
	wantOrder := []string{"active", "banned", "offline"}
	for i, s := range tk.Statuses {
		if s.Status != wantOrder[i] {
			t.Fatalf("expected %s at %d, got %s", wantOrder[i], i, s.Status)
		}
	}
	if tk.Statuses[0].Diff != 5 || *tk.Statuses[0].PercentChange != 50.0 {
		t.Fatalf("unexpected active diff: %+v", tk.Statuses[0])
	}
	if tk.Statuses[1].YesterdayCount != 0 || tk.Statuses[1].PercentChange != nil {
		t.Fatalf("banned is new today: %+v", tk.Statuses[1])
	}
	if tk.Statuses[2].TodayCount != 0 || tk.Statuses[2].Diff != -4 {
		t.Fatalf("offline disappeared today: %+v", tk.Statuses[2])
	}
	if tk.Total.TodayCount != 17 || tk.Total.YesterdayCount != 14 {
		t.Fatalf("unexpected tiktok total: %+v", tk.Total)
	}

	if res.Date != "2025-12-08" || res.PreviousDate != "2025-12-07" {
		t.Fatalf("unexpected dates: %s / %s", res.Date, res.PreviousDate)
	}
}

func TestCompare_NilSide(t *testing.T) {
	today := &domain.SummaryRaw{
		Date:    "2025-12-08",
		Summary: []domain.PlatformSummaryRaw{{Platform: "x", Summary: domain.RawStatusCount{"active": 2}}},
	}

	res := usecase.Compare(today, nil)
	if len(res.Platforms) != 1 || res.Platforms[0].Total.Diff != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPreviousDay(t *testing.T) {
	tests := map[string]string{
		"2025-12-08": "2025-12-07",
		"2025-03-01": "2025-02-28",
		"2024-03-01": "2024-02-29",
		"2026-01-01": "2025-12-31",
	}
	for in, want := range tests {
		got, err := usecase.PreviousDay(in)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", in, err)
		}
		if got != want {
			t.Errorf("PreviousDay(%s) = %s, expected %s", in, got, want)
		}
	}

	if _, err := usecase.PreviousDay("08/12/2025"); !errors.Is(err, usecase.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
