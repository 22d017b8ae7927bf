package usecase_test

import (
	"testing"

	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/usecase"
)

func TestQuickInsights_Mixed(t *testing.T) {
	list := []domain.PlatformSummary{
		{Platform: "tiktok", Active: 2, Inactive: 8},
		{Platform: "youtube", Active: 19, Error: 1},
	}

	got := usecase.QuickInsights(list, 70)

	if len(got) != 4 {
		t.Fatalf("expected 4 insights, got %+v", got)
	}
	if got[0].Label != "Needs Attention" || got[0].Value != "Tiktok (20% healthy)" || got[0].Type != domain.InsightDestructive {
		t.Fatalf("unexpected first insight: %+v", got[0])
	}
	if got[1].Label != "Top Performer" || got[1].Value != "Youtube (95% healthy)" {
		t.Fatalf("unexpected second insight: %+v", got[1])
	}
	if got[2].Label != "Total Issues" || got[2].Value != "9 accounts need attention" || got[2].Type != domain.InsightWarning {
		t.Fatalf("unexpected third insight: %+v", got[2])
	}
	if got[3].Label != "Platforms Active" {
		t.Fatalf("unexpected fourth insight: %+v", got[3])
	}
}

func TestQuickInsights_AllHealthy(t *testing.T) {
	list := []domain.PlatformSummary{
		{Platform: "a", Active: 10},
		{Platform: "b", Active: 10},
	}

	got := usecase.QuickInsights(list, 100)

	// no "Needs Attention", no "Total Issues"
	labels := []string{"Top Performer", "System Status", "Platforms Active"}
	if len(got) != len(labels) {
		t.Fatalf("expected %d insights, got %+v", len(labels), got)
	}
	for i, l := range labels {
		if got[i].Label != l {
			t.Fatalf("expected %s at %d, got %s", l, i, got[i].Label)
		}
	}
}

func TestQuickInsights_Empty(t *testing.T) {
	if got := usecase.QuickInsights(nil, 0); len(got) != 0 {
		t.Fatalf("expected no insights, got %+v", got)
	}
}

func TestQuickInsights_CappedAtFour(t *testing.T) {
	list := []domain.PlatformSummary{
		{Platform: "a", Active: 9, Inactive: 1},
		{Platform: "b", Active: 10},
	}

	got := usecase.QuickInsights(list, 95)

	if len(got) != 4 {
		t.Fatalf("expected 4 insights, got %+v", got)
	}
	if got[0].Type != domain.InsightWarning {
		t.Fatalf("90%% healthy should be a warning, got %+v", got[0])
	}
	if got[3].Label != "System Status" {
		t.Fatalf("expected the platform count to be dropped, got %+v", got)
	}
}

func TestQuickInsights_HalfPercentRoundsUp(t *testing.T) {
	list := usecase.Aggregate([]domain.PlatformSummaryRaw{
		{Platform: "tiktok", Summary: domain.RawStatusCount{"active": 5, "banned": 3}},
	})

	got := usecase.QuickInsights(list, 63)

	if len(got) == 0 || got[0].Value != "Tiktok (63% healthy)" {
		t.Fatalf("expected 62.5%% to read as 63%%, got %+v", got)
	}
}
