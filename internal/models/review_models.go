package models

import (
	"fmt"
	"strings"
	"time"
)

// ReviewDate accepts both RFC 3339 timestamps and bare YYYY-MM-DD dates,
// which is what ingestion feeds actually send.
type ReviewDate struct {
	time.Time
}

func (d *ReviewDate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unparseable review date: %q", raw)
}

func (d ReviewDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

// Review is one normalized customer review as produced by the ingestion
// boundary. Immutable once ingested.
type Review struct {
	ID       string      `json:"id,omitempty"`
	Text     string      `json:"text"`
	Rating   *int        `json:"rating,omitempty"`
	Date     *ReviewDate `json:"date,omitempty"`
	Category string      `json:"category,omitempty"`
}

// ScoredReview is a Review with the per-review sentiment fields appended.
type ScoredReview struct {
	Review
	SentimentResult
}

// AnalyzedReview is a ScoredReview with aspect-level results appended.
type AnalyzedReview struct {
	ScoredReview
	AspectsMentioned int                      `json:"aspects_mentioned"`
	PositiveAspects  int                      `json:"positive_aspects"`
	NegativeAspects  int                      `json:"negative_aspects"`
	Aspects          map[string]AspectMention `json:"aspect_details,omitempty"`
}
