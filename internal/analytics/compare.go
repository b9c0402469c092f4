package analytics

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// ErrInsufficientData means one of the compared ranges holds no reviews.
var ErrInsufficientData = errors.New("analytics: insufficient data for comparison")

// ComparePeriods computes sentiment statistics for two explicit date
// ranges and the deltas between them. The trend label is improving above
// +0.05, declining below -0.05, stable otherwise.
func ComparePeriods(scored []models.ScoredReview, p1Start, p1End, p2Start, p2End time.Time) (models.PeriodComparison, error) {
	period1 := periodStats(scored, p1Start, p1End)
	period2 := periodStats(scored, p2Start, p2End)
	if period1.ReviewCount == 0 || period2.ReviewCount == 0 {
		return models.PeriodComparison{}, ErrInsufficientData
	}

	change := round3(period2.AvgSentiment - period1.AvgSentiment)

	var changePct float64
	if period1.AvgSentiment != 0 {
		changePct = round1(change / math.Abs(period1.AvgSentiment) * 100)
	}

	trend := "stable"
	if change > 0.05 {
		trend = "improving"
	} else if change < -0.05 {
		trend = "declining"
	}

	return models.PeriodComparison{
		Period1:            period1,
		Period2:            period2,
		SentimentChange:    change,
		SentimentChangePct: changePct,
		PositivePctChange:  round1(period2.PositivePct - period1.PositivePct),
		Trend:              trend,
	}, nil
}

func periodStats(scored []models.ScoredReview, start, end time.Time) models.PeriodStats {
	stats := models.PeriodStats{
		DateRange: fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
	}

	var sum float64
	var positives int
	for _, r := range scored {
		if r.Date == nil || r.Date.IsZero() {
			continue
		}
		t := r.Date.Time
		if t.Before(start) || t.After(end) {
			continue
		}
		stats.ReviewCount++
		sum += r.Compound
		if r.Label == models.LabelPositive {
			positives++
		}
	}
	if stats.ReviewCount > 0 {
		stats.AvgSentiment = round3(sum / float64(stats.ReviewCount))
		stats.PositivePct = round1(float64(positives) / float64(stats.ReviewCount) * 100)
	}
	return stats
}
