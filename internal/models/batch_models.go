package models

// ReviewBatch is one unit of work on the review-batches topic.
type ReviewBatch struct {
	BatchID  string   `json:"batch_id"`
	Industry string   `json:"industry,omitempty"`
	Reviews  []Review `json:"reviews"`
}

// AnalysisResult is the pipeline output published for one batch.
type AnalysisResult struct {
	BatchID string  `json:"batch_id"`
	Report  *Report `json:"report"`
}

// Report is the full structured output of one pipeline run over a corpus.
type Report struct {
	Distribution SentimentDistribution `json:"sentiment_distribution"`
	ByRating     []RatingSentiment     `json:"sentiment_by_rating,omitempty"`
	Extremes     ExtremeReviews        `json:"extreme_reviews"`

	AspectSummary []AspectSummaryRow `json:"aspect_summary,omitempty"`
	PainPoints    []PainPoint        `json:"pain_points,omitempty"`
	AspectTrends  []AspectTrendPoint `json:"aspect_trends,omitempty"`

	Keywords []Keyword         `json:"keywords,omitempty"`
	Bigrams  []Bigram          `json:"bigrams,omitempty"`
	Topics   *TopicModelResult `json:"topics,omitempty"`

	Trends         []TrendPoint      `json:"trends,omitempty"`
	NPS            NPSProxy          `json:"nps_proxy"`
	RatingSegments []RatingSegment   `json:"rating_segments,omitempty"`
	ByCategory     []CategorySegment `json:"category_segments,omitempty"`
	KeyDrivers     []KeyDriver       `json:"key_drivers,omitempty"`
	Alerts         []Alert           `json:"alerts,omitempty"`
	Summary        ExecutiveSummary  `json:"executive_summary"`
}
