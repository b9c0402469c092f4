// Package pipeline runs the full review analytics flow: per-review
// sentiment, aspect-level sentiment, corpus topic extraction, and the
// statistical analytics pass. The pipeline is synchronous and CPU-bound;
// hosting processes decide how to offload it.
package pipeline

import (
	"errors"
	"log/slog"

	"github.com/spacesedan/reviewpulse/internal/analytics"
	"github.com/spacesedan/reviewpulse/internal/aspects"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/sentiment"
	"github.com/spacesedan/reviewpulse/internal/topics"
)

// Options is the caller-facing configuration surface.
type Options struct {
	Industry           aspects.Industry
	TopicCount         int
	TopicMethod        topics.Method
	Frequency          models.Frequency
	AnomalyThreshold   float64
	PainThreshold      float64
	ImpactThreshold    float64
	SentimentThreshold float64
	ExtremeThreshold   float64
}

// DefaultOptions mirror the documented defaults of each component.
func DefaultOptions() Options {
	return Options{
		Industry:           aspects.IndustryGeneral,
		TopicCount:         topics.DefaultTopicCount,
		TopicMethod:        topics.MethodNMF,
		Frequency:          models.FrequencyWeekly,
		AnomalyThreshold:   analytics.DefaultAnomalyThreshold,
		PainThreshold:      aspects.DefaultPainThreshold,
		ImpactThreshold:    analytics.DefaultImpactThreshold,
		SentimentThreshold: analytics.DefaultSentimentThreshold,
		ExtremeThreshold:   sentiment.DefaultExtremeThreshold,
	}
}

// Run executes every pipeline stage over the corpus and assembles the
// report. Data-quality problems degrade to empty sections; only
// misconfiguration (bad topic method or count) is returned as an error.
func Run(reviews []models.Review, opts Options) (*models.Report, error) {
	if opts.TopicCount == 0 {
		opts.TopicCount = topics.DefaultTopicCount
	}
	if opts.PainThreshold == 0 {
		opts.PainThreshold = aspects.DefaultPainThreshold
	}
	if opts.ExtremeThreshold == 0 {
		opts.ExtremeThreshold = sentiment.DefaultExtremeThreshold
	}
	if opts.ImpactThreshold == 0 {
		opts.ImpactThreshold = analytics.DefaultImpactThreshold
	}

	extractor, err := topics.NewExtractor(opts.TopicCount, opts.TopicMethod)
	if err != nil {
		return nil, err
	}

	scorer := sentiment.NewAnalyzer()
	scored := scorer.ScoreMany(reviews)

	aspectAnalyzer := aspects.NewAnalyzer(opts.Industry, scorer)
	analyzed := aspectAnalyzer.AnalyzeAll(scored)

	report := &models.Report{
		Distribution: sentiment.Distribution(scored),
		ByRating:     sentiment.ByRating(scored),
		Extremes:     sentiment.Extremes(scored, opts.ExtremeThreshold),

		AspectSummary: aspectAnalyzer.Summary(analyzed),
		PainPoints:    aspectAnalyzer.PainPoints(analyzed, opts.PainThreshold),
		AspectTrends:  aspectAnalyzer.Trends(analyzed, opts.Frequency),

		Trends:         analytics.DetectAnomalies(scored, opts.Frequency, opts.AnomalyThreshold),
		NPS:            analytics.NPSProxy(scored),
		RatingSegments: analytics.SegmentByRating(scored),
		ByCategory:     analytics.SegmentByCategory(scored),
		KeyDrivers:     analytics.KeyDrivers(analyzed, opts.ImpactThreshold, opts.SentimentThreshold),
		Alerts:         analytics.Alerts(scored, opts.Frequency, 0),
		Summary:        analytics.Summarize(scored),
	}

	texts := make([]string, len(reviews))
	for i, r := range reviews {
		texts[i] = r.Text
	}
	report.Keywords = extractor.Keywords(texts, topics.DefaultKeywordCount)
	report.Bigrams = extractor.NGrams(texts, 2, topics.DefaultKeywordCount)

	topicResult, err := extractor.ExtractTopics(texts, topics.DefaultWordsPerTopic)
	switch {
	case errors.Is(err, topics.ErrInsufficientDocuments), errors.Is(err, topics.ErrEmptyVocabulary):
		slog.Warn("[Pipeline] Skipping topic modeling",
			slog.Int("reviews", len(reviews)),
			slog.String("reason", err.Error()))
	case err != nil:
		return nil, err
	default:
		report.Topics = topicResult
	}

	return report, nil
}
