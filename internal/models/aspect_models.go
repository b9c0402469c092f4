package models

// AspectMention is the sentiment for one (review, aspect) pair. Only
// produced when at least one sentence matched one of the aspect's keywords.
type AspectMention struct {
	AspectKey     string  `json:"aspect_key"`
	Label         string  `json:"label"`
	Sentiment     Label   `json:"sentiment"`
	CompoundScore float64 `json:"compound_score"`
	Mentions      int     `json:"mentions"`
	SampleText    string  `json:"sample_text"`
}

// AspectReviewSummary aggregates the aspect mentions of a single review.
type AspectReviewSummary struct {
	PositiveAspects int     `json:"positive_aspects"`
	NegativeAspects int     `json:"negative_aspects"`
	NeutralAspects  int     `json:"neutral_aspects"`
	AverageScore    float64 `json:"average_score"`
	MostPositive    string  `json:"most_positive,omitempty"`
	MostNegative    string  `json:"most_negative,omitempty"`
}

// AspectAnalysis is the full aspect breakdown of one review.
type AspectAnalysis struct {
	Aspects               map[string]AspectMention `json:"aspects"`
	Summary               AspectReviewSummary      `json:"summary"`
	TotalAspectsMentioned int                      `json:"total_aspects_mentioned"`
}

// AspectSummaryRow is one aspect's corpus-wide aggregate.
type AspectSummaryRow struct {
	Aspect            string  `json:"aspect"`
	AspectKey         string  `json:"aspect_key"`
	TotalMentions     int     `json:"total_mentions"`
	ReviewsWithAspect int     `json:"reviews_with_aspect"`
	PositiveCount     int     `json:"positive_count"`
	NegativeCount     int     `json:"negative_count"`
	NeutralCount      int     `json:"neutral_count"`
	PositivePct       float64 `json:"positive_pct"`
	NegativePct       float64 `json:"negative_pct"`
	AvgSentiment      float64 `json:"avg_sentiment"`
}

// PainPointExample is one complaint sentence backing a pain point.
type PainPointExample struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// PainPoint is an aspect whose mentions fall below the pain threshold.
type PainPoint struct {
	AspectKey            string             `json:"aspect_key"`
	Label                string             `json:"label"`
	NegativeMentionCount int                `json:"negative_mention_count"`
	AvgNegativeScore     float64            `json:"avg_negative_score"`
	ExampleComplaints    []PainPointExample `json:"example_complaints"`
}

// AspectTrendPoint is the aggregate for one (period, aspect) pair.
type AspectTrendPoint struct {
	Period       string  `json:"period"`
	Aspect       string  `json:"aspect"`
	AvgSentiment float64 `json:"avg_sentiment"`
	MentionCount int     `json:"mention_count"`
}
