package report

import (
	"math"
	"strings"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
)

// Utilization holds the admin dashboard tiles computed from weekly stats.
type Utilization struct {
	ActiveUsers        int
	TotalUsers         int
	TotalHours         float64
	AverageUtilization float64
	PeakUtilization    float64
}

// Summarize computes the tiles. A user is active when they logged any hours.
// An empty input yields zero averages.
func Summarize(stats []models.WeeklyUserStats) Utilization {
	u := Utilization{TotalUsers: len(stats)}
	if len(stats) == 0 {
		return u
	}

	var sum float64
	u.PeakUtilization = math.Inf(-1)
	for _, s := range stats {
		if s.TotalHours > 0 {
			u.ActiveUsers++
		}
		u.TotalHours += s.TotalHours
		sum += s.UtilizationPercentage
		u.PeakUtilization = max(u.PeakUtilization, s.UtilizationPercentage)
	}
	u.AverageUtilization = sum / float64(len(stats))
	return u
}

// Bar renders pct as a fixed-width text gauge, capped at 100%.
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(math.Min(100, math.Max(0, pct)) / 100 * float64(width)))
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}
