package usecase

import (
	"fmt"
	"math"
	"sort"

	"device-status-service/internal/summary/core/domain"
)

const maxInsights = 4

type platformHealth struct {
	platform string
	pct      float64
}

// QuickInsights derives the short highlight list shown above the charts.
func QuickInsights(list []domain.PlatformSummary, healthScore int) []domain.Insight {
	health := make([]platformHealth, 0, len(list))
	var issues int64

	for _, p := range list {
		accounts := p.Active + p.Inactive + p.Error
		pct := 0.0
		if accounts > 0 {
			pct = float64(p.Active) / float64(accounts) * 100
		}
		health = append(health, platformHealth{platform: p.Platform, pct: pct})
		issues += p.Inactive + p.Error
	}

	sort.SliceStable(health, func(i, j int) bool {
		return health[i].pct < health[j].pct
	})

	var out []domain.Insight

	if len(health) > 0 {
		worst := health[0]
		if worst.pct < 100 {
			typ := domain.InsightWarning
			if worst.pct < 50 {
				typ = domain.InsightDestructive
			}
			out = append(out, domain.Insight{
				Label: "Needs Attention",
				Value: healthText(worst),
				Type:  typ,
			})
		}

		best := health[len(health)-1]
		if best.pct >= 90 {
			out = append(out, domain.Insight{
				Label: "Top Performer",
				Value: healthText(best),
				Type:  domain.InsightSuccess,
			})
		}
	}

	if issues > 0 {
		typ := domain.InsightWarning
		if issues > 10 {
			typ = domain.InsightDestructive
		}
		out = append(out, domain.Insight{
			Label: "Total Issues",
			Value: fmt.Sprintf("%d accounts need attention", issues),
			Type:  typ,
		})
	}

	if healthScore >= 90 {
		out = append(out, domain.Insight{
			Label: "System Status",
			Value: "All systems operational",
			Type:  domain.InsightSuccess,
		})
	}

	if len(list) > 0 {
		out = append(out, domain.Insight{
			Label: "Platforms Active",
			Value: fmt.Sprintf("%d platforms monitored", len(list)),
			Type:  domain.InsightInfo,
		})
	}

	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

// healthText rounds halves up, so 62.5 reads as 63.
func healthText(h platformHealth) string {
	return fmt.Sprintf("%s (%d%% healthy)", domain.DisplayPlatform(h.platform), int(math.Round(h.pct)))
}
