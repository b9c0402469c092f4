package models

// Label is a sentiment classification bucket.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// SentimentResult holds the polarity scores for a single text. Label is a
// pure function of Compound; Confidence is a pure function of Compound.
type SentimentResult struct {
	Compound   float64 `json:"sentiment_compound"`
	Positive   float64 `json:"sentiment_positive"`
	Negative   float64 `json:"sentiment_negative"`
	Neutral    float64 `json:"sentiment_neutral"`
	Label      Label   `json:"sentiment_label"`
	Confidence float64 `json:"sentiment_confidence"`
}

// SentimentDistribution summarizes labels across a scored corpus.
type SentimentDistribution struct {
	Counts          map[Label]int     `json:"counts"`
	Percentages     map[Label]float64 `json:"percentages"`
	Total           int               `json:"total"`
	AverageCompound float64           `json:"average_compound"`
}

// RatingSentiment is the sentiment aggregate for one star-rating level.
type RatingSentiment struct {
	Rating       int     `json:"rating"`
	AvgSentiment float64 `json:"avg_sentiment"`
	StdSentiment float64 `json:"std_sentiment"`
	Count        int     `json:"count"`
	PositivePct  float64 `json:"positive_pct"`
}

// ExtremeReviews holds the strongly polarized tails of a scored corpus.
// HighlyPositive is sorted by compound descending, HighlyNegative ascending.
type ExtremeReviews struct {
	HighlyPositive []ScoredReview `json:"highly_positive"`
	HighlyNegative []ScoredReview `json:"highly_negative"`
}
