package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// SegmentByRating aggregates sentiment per star rating, ascending by
// rating. Reviews without a rating are skipped; an unrated corpus yields
// an empty result rather than an error.
func SegmentByRating(scored []models.ScoredReview) []models.RatingSegment {
	groups := make(map[int][]models.ScoredReview)
	for _, r := range scored {
		if r.Rating == nil {
			continue
		}
		groups[*r.Rating] = append(groups[*r.Rating], r)
	}

	segments := make([]models.RatingSegment, 0, len(groups))
	for rating, group := range groups {
		var sum float64
		var positives, negatives int
		for _, r := range group {
			sum += r.Compound
			switch r.Label {
			case models.LabelPositive:
				positives++
			case models.LabelNegative:
				negatives++
			}
		}
		n := float64(len(group))
		segments = append(segments, models.RatingSegment{
			Rating:       rating,
			Count:        len(group),
			AvgSentiment: round3(sum / n),
			PositivePct:  round1(float64(positives) / n * 100),
			NegativePct:  round1(float64(negatives) / n * 100),
		})
	}

	sort.Slice(segments, func(i, j int) bool { return segments[i].Rating < segments[j].Rating })
	return segments
}

// SegmentByCategory aggregates sentiment per product category, sorted
// descending by mean sentiment. Uncategorized reviews are skipped.
func SegmentByCategory(scored []models.ScoredReview) []models.CategorySegment {
	groups := make(map[string][]float64)
	positives := make(map[string]int)
	for _, r := range scored {
		if r.Category == "" {
			continue
		}
		groups[r.Category] = append(groups[r.Category], r.Compound)
		if r.Label == models.LabelPositive {
			positives[r.Category]++
		}
	}

	segments := make([]models.CategorySegment, 0, len(groups))
	for category, compounds := range groups {
		segments = append(segments, models.CategorySegment{
			Category:     category,
			AvgSentiment: round3(stat.Mean(compounds, nil)),
			StdSentiment: round3(sampleStd(compounds)),
			ReviewCount:  len(compounds),
			PositivePct:  round2(float64(positives[category]) / float64(len(compounds)) * 100),
		})
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].AvgSentiment > segments[j].AvgSentiment
	})
	return segments
}
