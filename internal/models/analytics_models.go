package models

// AnomalyType labels a trend bucket relative to the series-wide z-score.
type AnomalyType string

const (
	AnomalyNormal        AnomalyType = "normal"
	AnomalyPositiveSpike AnomalyType = "positive_spike"
	AnomalyNegativeSpike AnomalyType = "negative_spike"
)

// TrendPoint is one time bucket of the sentiment trend series. Change and
// ChangePct are nil for the first bucket (no prior period to diff against).
type TrendPoint struct {
	Period       string      `json:"period"`
	AvgSentiment float64     `json:"avg_sentiment"`
	StdSentiment float64     `json:"std_sentiment"`
	ReviewCount  int         `json:"review_count"`
	PositivePct  float64     `json:"positive_pct"`
	MovingAvg    float64     `json:"moving_avg"`
	Change       *float64    `json:"change,omitempty"`
	ChangePct    *float64    `json:"change_pct,omitempty"`
	ZScore       float64     `json:"z_score"`
	IsAnomaly    bool        `json:"is_anomaly"`
	AnomalyType  AnomalyType `json:"anomaly_type"`
}

// NPSProxy is a Net-Promoter-Score-like segmentation derived from compound
// scores rather than survey answers. Score ranges [-100, 100].
type NPSProxy struct {
	Score         float64 `json:"nps_proxy"`
	Promoters     int     `json:"promoters"`
	PromotersPct  float64 `json:"promoters_pct"`
	Passives      int     `json:"passives"`
	PassivesPct   float64 `json:"passives_pct"`
	Detractors    int     `json:"detractors"`
	DetractorsPct float64 `json:"detractors_pct"`
	Total         int     `json:"total"`
}

// RatingSegment is sentiment aggregated over one star rating.
type RatingSegment struct {
	Rating       int     `json:"rating"`
	Count        int     `json:"count"`
	AvgSentiment float64 `json:"avg_sentiment"`
	PositivePct  float64 `json:"positive_pct"`
	NegativePct  float64 `json:"negative_pct"`
}

// CategorySegment is sentiment aggregated over one product category.
type CategorySegment struct {
	Category     string  `json:"category"`
	AvgSentiment float64 `json:"avg_sentiment"`
	StdSentiment float64 `json:"std_sentiment"`
	ReviewCount  int     `json:"review_count"`
	PositivePct  float64 `json:"positive_pct"`
}

// DriverPriority is the 2x2 impact/sentiment quadrant of an aspect.
type DriverPriority string

const (
	PriorityFixNow       DriverPriority = "fix_now"
	PriorityMaintain     DriverPriority = "maintain"
	PriorityMonitor      DriverPriority = "monitor"
	PriorityDeprioritize DriverPriority = "deprioritize"
)

// KeyDriver is one aspect's impact entry. ImpactScore is
// mention_count * |avg_sentiment|.
type KeyDriver struct {
	Aspect       string         `json:"aspect"`
	AvgSentiment float64        `json:"avg_sentiment"`
	MentionCount int            `json:"mention_count"`
	ImpactScore  float64        `json:"impact_score"`
	Priority     DriverPriority `json:"priority"`
}

// AlertSeverity is the urgency class of a fired alert rule.
type AlertSeverity string

const (
	AlertCritical AlertSeverity = "critical"
	AlertWarning  AlertSeverity = "warning"
)

// Alert is one fired rule over the scored corpus.
type Alert struct {
	Severity AlertSeverity `json:"type"`
	Message  string        `json:"message"`
	Metric   string        `json:"metric"`
	Value    float64       `json:"value"`
}

// PeriodStats summarizes one date range of a period comparison.
type PeriodStats struct {
	DateRange    string  `json:"date_range"`
	ReviewCount  int     `json:"review_count"`
	AvgSentiment float64 `json:"avg_sentiment"`
	PositivePct  float64 `json:"positive_pct"`
}

// PeriodComparison compares sentiment between two explicit date ranges.
type PeriodComparison struct {
	Period1            PeriodStats `json:"period1"`
	Period2            PeriodStats `json:"period2"`
	SentimentChange    float64     `json:"sentiment_change"`
	SentimentChangePct float64     `json:"sentiment_change_pct"`
	PositivePctChange  float64     `json:"positive_pct_change"`
	Trend              string      `json:"trend"`
}

// RecentTrend is the tail-end health block of the executive summary.
type RecentTrend struct {
	AvgSentiment float64 `json:"recent_avg_sentiment"`
	PositivePct  float64 `json:"recent_positive_pct"`
}

// ExecutiveSummary is the top-line rollup of an analyzed corpus.
type ExecutiveSummary struct {
	TotalReviews      int                   `json:"total_reviews"`
	AvgSentiment      float64               `json:"avg_sentiment"`
	Distribution      SentimentDistribution `json:"sentiment_distribution"`
	NPS               NPSProxy              `json:"nps_proxy"`
	RatingCorrelation *float64              `json:"rating_sentiment_correlation,omitempty"`
	RecentTrend       *RecentTrend          `json:"recent_trend,omitempty"`
}

// Heatmap is a category x period grid of mean compound scores. Cells with
// no reviews hold NaN.
type Heatmap struct {
	Categories []string    `json:"categories"`
	Periods    []string    `json:"periods"`
	Values     [][]float64 `json:"values"`
}
