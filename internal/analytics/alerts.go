package analytics

import (
	"fmt"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// DefaultSentimentDropThreshold flags a period-over-period drop.
const DefaultSentimentDropThreshold = 0.15

// Alerts evaluates the alert rules over a scored corpus, in rule
// declaration order (not severity order). Multiple rules may fire. The
// trend rule only applies when dated reviews exist.
func Alerts(scored []models.ScoredReview, freq models.Frequency, dropThreshold float64) []models.Alert {
	if len(scored) == 0 {
		return nil
	}
	if dropThreshold <= 0 {
		dropThreshold = DefaultSentimentDropThreshold
	}

	var alerts []models.Alert

	var sum float64
	var negatives int
	for _, r := range scored {
		sum += r.Compound
		if r.Label == models.LabelNegative {
			negatives++
		}
	}
	avg := sum / float64(len(scored))

	switch {
	case avg < 0:
		alerts = append(alerts, models.Alert{
			Severity: models.AlertCritical,
			Message:  fmt.Sprintf("Overall sentiment is negative (%.2f)", avg),
			Metric:   "avg_sentiment",
			Value:    round3(avg),
		})
	case avg < 0.2:
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Message:  fmt.Sprintf("Overall sentiment is below healthy threshold (%.2f)", avg),
			Metric:   "avg_sentiment",
			Value:    round3(avg),
		})
	}

	negPct := float64(negatives) / float64(len(scored)) * 100
	switch {
	case negPct > 30:
		alerts = append(alerts, models.Alert{
			Severity: models.AlertCritical,
			Message:  fmt.Sprintf("High percentage of negative reviews (%.1f%%)", negPct),
			Metric:   "negative_percentage",
			Value:    round1(negPct),
		})
	case negPct > 20:
		alerts = append(alerts, models.Alert{
			Severity: models.AlertWarning,
			Message:  fmt.Sprintf("Elevated negative review rate (%.1f%%)", negPct),
			Metric:   "negative_percentage",
			Value:    round1(negPct),
		})
	}

	if trend := Trends(scored, freq); len(trend) >= 2 {
		last := trend[len(trend)-1]
		if last.Change != nil && *last.Change < -dropThreshold {
			alerts = append(alerts, models.Alert{
				Severity: models.AlertWarning,
				Message:  fmt.Sprintf("Significant sentiment drop in recent period (%.2f)", *last.Change),
				Metric:   "recent_change",
				Value:    round3(*last.Change),
			})
		}
	}

	return alerts
}
