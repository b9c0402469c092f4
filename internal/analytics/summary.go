package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/sentiment"
)

const recentTrendWindow = 100

// Summarize builds the executive rollup: totals, distribution, NPS proxy,
// the rating correlation when ratings exist, and the recent-trend block
// over the last hundred dated reviews.
func Summarize(scored []models.ScoredReview) models.ExecutiveSummary {
	dist := sentiment.Distribution(scored)
	summary := models.ExecutiveSummary{
		TotalReviews: len(scored),
		AvgSentiment: dist.AverageCompound,
		Distribution: dist,
		NPS:          NPSProxy(scored),
	}
	if len(scored) == 0 {
		return summary
	}

	var compounds, ratings []float64
	for _, r := range scored {
		if r.Rating != nil {
			compounds = append(compounds, r.Compound)
			ratings = append(ratings, float64(*r.Rating))
		}
	}
	if len(ratings) >= 2 {
		corr := round3(stat.Correlation(compounds, ratings, nil))
		summary.RatingCorrelation = &corr
	}

	dated := make([]models.ScoredReview, 0, len(scored))
	for _, r := range scored {
		if r.Date != nil && !r.Date.IsZero() {
			dated = append(dated, r)
		}
	}
	if len(dated) > 0 {
		sort.SliceStable(dated, func(i, j int) bool {
			return dated[i].Date.Time.Before(dated[j].Date.Time)
		})
		if len(dated) > recentTrendWindow {
			dated = dated[len(dated)-recentTrendWindow:]
		}
		var sum float64
		var positives int
		for _, r := range dated {
			sum += r.Compound
			if r.Label == models.LabelPositive {
				positives++
			}
		}
		summary.RecentTrend = &models.RecentTrend{
			AvgSentiment: round3(sum / float64(len(dated))),
			PositivePct:  round1(float64(positives) / float64(len(dated)) * 100),
		}
	}
	return summary
}

// HeatmapData pivots mean compound scores into a category x period grid.
// Cells without reviews hold NaN. Returns a zero-value grid when no review
// carries both a category and a date.
func HeatmapData(scored []models.ScoredReview, freq models.Frequency) models.Heatmap {
	type cell struct {
		sum   float64
		count int
	}
	cells := make(map[string]map[string]*cell)
	periodSet := make(map[string]struct{})

	for _, r := range scored {
		if r.Category == "" || r.Date == nil || r.Date.IsZero() {
			continue
		}
		period := freq.Label(freq.Truncate(r.Date.Time))
		periodSet[period] = struct{}{}
		if cells[r.Category] == nil {
			cells[r.Category] = make(map[string]*cell)
		}
		c := cells[r.Category][period]
		if c == nil {
			c = &cell{}
			cells[r.Category][period] = c
		}
		c.sum += r.Compound
		c.count++
	}
	if len(cells) == 0 {
		return models.Heatmap{}
	}

	categories := make([]string, 0, len(cells))
	for category := range cells {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	periods := make([]string, 0, len(periodSet))
	for period := range periodSet {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	values := make([][]float64, len(categories))
	for i, category := range categories {
		row := make([]float64, len(periods))
		for j, period := range periods {
			if c := cells[category][period]; c != nil {
				row[j] = round3(c.sum / float64(c.count))
			} else {
				row[j] = math.NaN()
			}
		}
		values[i] = row
	}

	return models.Heatmap{Categories: categories, Periods: periods, Values: values}
}
