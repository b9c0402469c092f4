package sentiment

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// DefaultExtremeThreshold is the compound cutoff for extreme reviews.
const DefaultExtremeThreshold = 0.8

// ScoreMany scores every review and returns a parallel collection with the
// sentiment fields appended. The input is never mutated.
func (a *Analyzer) ScoreMany(reviews []models.Review) []models.ScoredReview {
	scored := make([]models.ScoredReview, 0, len(reviews))
	for _, review := range reviews {
		scored = append(scored, models.ScoredReview{
			Review:          review,
			SentimentResult: a.Score(review.Text),
		})
	}
	return scored
}

// Distribution summarizes label counts, percentages and the overall mean
// compound for a scored corpus.
func Distribution(scored []models.ScoredReview) models.SentimentDistribution {
	dist := models.SentimentDistribution{
		Counts:      make(map[models.Label]int),
		Percentages: make(map[models.Label]float64),
		Total:       len(scored),
	}
	if len(scored) == 0 {
		return dist
	}

	var sum float64
	for _, r := range scored {
		dist.Counts[r.Label]++
		sum += r.Compound
	}
	for label, count := range dist.Counts {
		dist.Percentages[label] = round2(float64(count) / float64(dist.Total) * 100)
	}
	dist.AverageCompound = round3(sum / float64(dist.Total))
	return dist
}

// ByRating aggregates sentiment per star rating, ascending by rating.
// Reviews without a rating are skipped.
func ByRating(scored []models.ScoredReview) []models.RatingSentiment {
	groups := make(map[int][]models.ScoredReview)
	for _, r := range scored {
		if r.Rating == nil {
			continue
		}
		groups[*r.Rating] = append(groups[*r.Rating], r)
	}

	out := make([]models.RatingSentiment, 0, len(groups))
	for rating, group := range groups {
		compounds := make([]float64, len(group))
		positives := 0
		for i, r := range group {
			compounds[i] = r.Compound
			if r.Label == models.LabelPositive {
				positives++
			}
		}
		out = append(out, models.RatingSentiment{
			Rating:       rating,
			AvgSentiment: round3(stat.Mean(compounds, nil)),
			StdSentiment: round3(sampleStd(compounds)),
			Count:        len(group),
			PositivePct:  round2(float64(positives) / float64(len(group)) * 100),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	return out
}

// Extremes splits out the strongly polarized tails of a scored corpus.
func Extremes(scored []models.ScoredReview, threshold float64) models.ExtremeReviews {
	var extremes models.ExtremeReviews
	for _, r := range scored {
		switch {
		case r.Compound >= threshold:
			extremes.HighlyPositive = append(extremes.HighlyPositive, r)
		case r.Compound <= -threshold:
			extremes.HighlyNegative = append(extremes.HighlyNegative, r)
		}
	}

	sort.SliceStable(extremes.HighlyPositive, func(i, j int) bool {
		return extremes.HighlyPositive[i].Compound > extremes.HighlyPositive[j].Compound
	})
	sort.SliceStable(extremes.HighlyNegative, func(i, j int) bool {
		return extremes.HighlyNegative[i].Compound < extremes.HighlyNegative[j].Compound
	})
	return extremes
}

// sampleStd is the sample standard deviation, 0 for fewer than two values.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}
