package aspects

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// DefaultPainThreshold is the compound cutoff below which an aspect
// mention counts as a pain point.
const DefaultPainThreshold = -0.2

const maxPainPointExamples = 5

// AnalyzeAll runs aspect analysis over a scored corpus and returns a
// parallel collection with the aspect fields appended.
func (a *Analyzer) AnalyzeAll(scored []models.ScoredReview) []models.AnalyzedReview {
	analyzed := make([]models.AnalyzedReview, 0, len(scored))
	for _, r := range scored {
		analysis := a.Analyze(r.Text)
		analyzed = append(analyzed, models.AnalyzedReview{
			ScoredReview:     r,
			AspectsMentioned: analysis.TotalAspectsMentioned,
			PositiveAspects:  analysis.Summary.PositiveAspects,
			NegativeAspects:  analysis.Summary.NegativeAspects,
			Aspects:          analysis.Aspects,
		})
	}
	return analyzed
}

// Summary aggregates every mentioned aspect across the corpus, sorted
// descending by total mentions.
func (a *Analyzer) Summary(analyzed []models.AnalyzedReview) []models.AspectSummaryRow {
	type bucket struct {
		positive, negative, neutral int
		totalMentions               int
		scores                      []float64
	}
	buckets := make(map[string]*bucket)

	for _, r := range analyzed {
		for key, m := range r.Aspects {
			b := buckets[key]
			if b == nil {
				b = &bucket{}
				buckets[key] = b
			}
			switch m.Sentiment {
			case models.LabelPositive:
				b.positive++
			case models.LabelNegative:
				b.negative++
			default:
				b.neutral++
			}
			b.scores = append(b.scores, m.CompoundScore)
			b.totalMentions += m.Mentions
		}
	}

	labels := a.AspectLabels()
	rows := make([]models.AspectSummaryRow, 0, len(buckets))
	for key, b := range buckets {
		reviews := b.positive + b.negative + b.neutral
		rows = append(rows, models.AspectSummaryRow{
			Aspect:            labels[key],
			AspectKey:         key,
			TotalMentions:     b.totalMentions,
			ReviewsWithAspect: reviews,
			PositiveCount:     b.positive,
			NegativeCount:     b.negative,
			NeutralCount:      b.neutral,
			PositivePct:       round2(float64(b.positive) / float64(reviews) * 100),
			NegativePct:       round2(float64(b.negative) / float64(reviews) * 100),
			AvgSentiment:      round3(stat.Mean(b.scores, nil)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalMentions > rows[j].TotalMentions
	})
	return rows
}

// PainPoints collects aspects whose mention score falls at or below the
// threshold, with up to five example complaints each, sorted descending by
// negative mention count.
func (a *Analyzer) PainPoints(analyzed []models.AnalyzedReview, threshold float64) []models.PainPoint {
	type bucket struct {
		scores   []float64
		examples []models.PainPointExample
	}
	buckets := make(map[string]*bucket)

	for _, r := range analyzed {
		for key, m := range r.Aspects {
			if m.CompoundScore > threshold {
				continue
			}
			b := buckets[key]
			if b == nil {
				b = &bucket{}
				buckets[key] = b
			}
			b.scores = append(b.scores, m.CompoundScore)
			if len(b.examples) < maxPainPointExamples {
				b.examples = append(b.examples, models.PainPointExample{
					Text:  m.SampleText,
					Score: m.CompoundScore,
				})
			}
		}
	}

	labels := a.AspectLabels()
	points := make([]models.PainPoint, 0, len(buckets))
	for key, b := range buckets {
		points = append(points, models.PainPoint{
			AspectKey:            key,
			Label:                labels[key],
			NegativeMentionCount: len(b.scores),
			AvgNegativeScore:     round3(stat.Mean(b.scores, nil)),
			ExampleComplaints:    b.examples,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].NegativeMentionCount > points[j].NegativeMentionCount
	})
	return points
}

// Trends buckets aspect mentions by period and reports the mean compound
// and mention count per (period, aspect) pair, periods ascending.
func (a *Analyzer) Trends(analyzed []models.AnalyzedReview, freq models.Frequency) []models.AspectTrendPoint {
	type cell struct{ scores []float64 }
	periods := make(map[string]map[string]*cell)

	for _, r := range analyzed {
		if r.Date == nil || r.Date.IsZero() {
			continue
		}
		period := freq.Label(freq.Truncate(r.Date.Time))
		if periods[period] == nil {
			periods[period] = make(map[string]*cell)
		}
		for key, m := range r.Aspects {
			c := periods[period][key]
			if c == nil {
				c = &cell{}
				periods[period][key] = c
			}
			c.scores = append(c.scores, m.CompoundScore)
		}
	}

	labels := a.AspectLabels()
	var trend []models.AspectTrendPoint
	for period, byAspect := range periods {
		for key, c := range byAspect {
			trend = append(trend, models.AspectTrendPoint{
				Period:       period,
				Aspect:       labels[key],
				AvgSentiment: round3(stat.Mean(c.scores, nil)),
				MentionCount: len(c.scores),
			})
		}
	}

	sort.Slice(trend, func(i, j int) bool {
		if trend[i].Period != trend[j].Period {
			return trend[i].Period < trend[j].Period
		}
		return trend[i].Aspect < trend[j].Aspect
	})
	return trend
}
