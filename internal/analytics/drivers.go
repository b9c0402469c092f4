package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Key-driver defaults. Aspects with fewer than minDriverSamples recorded
// scores are excluded entirely: too little data to call a driver.
const (
	DefaultImpactThreshold    = 5.0
	DefaultSentimentThreshold = 0.0

	minDriverSamples = 5
)

// KeyDrivers ranks aspects by impact, where impact is
// mention_count * |avg_sentiment|, and assigns each a priority quadrant.
// Sorted descending by impact score.
func KeyDrivers(analyzed []models.AnalyzedReview, impactThreshold, sentimentThreshold float64) []models.KeyDriver {
	scores := make(map[string][]float64)
	for _, r := range analyzed {
		for key, m := range r.Aspects {
			scores[key] = append(scores[key], m.CompoundScore)
		}
	}

	drivers := make([]models.KeyDriver, 0, len(scores))
	for aspect, values := range scores {
		if len(values) < minDriverSamples {
			continue
		}
		avg := stat.Mean(values, nil)
		impact := float64(len(values)) * math.Abs(avg)
		drivers = append(drivers, models.KeyDriver{
			Aspect:       aspect,
			AvgSentiment: round3(avg),
			MentionCount: len(values),
			ImpactScore:  round2(impact),
			Priority:     priorityQuadrant(avg, impact, sentimentThreshold, impactThreshold),
		})
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].ImpactScore > drivers[j].ImpactScore
	})
	return drivers
}

// priorityQuadrant places an aspect in the 2x2 impact/sentiment grid.
func priorityQuadrant(sentiment, impact, sentimentThreshold, impactThreshold float64) models.DriverPriority {
	highImpact := impact >= impactThreshold
	positive := sentiment >= sentimentThreshold

	switch {
	case highImpact && !positive:
		return models.PriorityFixNow
	case highImpact && positive:
		return models.PriorityMaintain
	case !highImpact && !positive:
		return models.PriorityMonitor
	default:
		return models.PriorityDeprioritize
	}
}
