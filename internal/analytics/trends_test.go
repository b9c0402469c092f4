package analytics

import (
	"testing"
	"time"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func onDate(compound float64, label models.Label, t time.Time) models.ScoredReview {
	return models.ScoredReview{
		Review:          models.Review{Date: &models.ReviewDate{Time: t}},
		SentimentResult: models.SentimentResult{Compound: compound, Label: label},
	}
}

// Mondays of consecutive weeks in March 2026.
var (
	week1 = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	week2 = time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	week3 = time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC)
	week4 = time.Date(2026, time.March, 23, 10, 0, 0, 0, time.UTC)
)

func TestTrendsBucketsAndMovingAverage(t *testing.T) {
	scored := []models.ScoredReview{
		onDate(0.2, models.LabelPositive, week1),
		onDate(0.4, models.LabelPositive, week2),
		onDate(0.6, models.LabelPositive, week3),
		onDate(0.8, models.LabelPositive, week4),
		{SentimentResult: models.SentimentResult{Compound: 0.9}}, // undated, skipped
	}

	points := Trends(scored, models.FrequencyWeekly)
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4 weekly buckets", len(points))
	}

	if points[0].Period != "2026-03-02" {
		t.Errorf("points[0].Period = %q, want 2026-03-02", points[0].Period)
	}
	if points[0].Change != nil || points[0].ChangePct != nil {
		t.Error("first bucket must have nil change fields")
	}

	// Trailing 3-period window, shorter at the start of the series.
	wantMoving := []float64{0.2, 0.3, 0.4, 0.6}
	for i, want := range wantMoving {
		if points[i].MovingAvg != want {
			t.Errorf("points[%d].MovingAvg = %v, want %v", i, points[i].MovingAvg, want)
		}
	}

	if points[1].Change == nil || *points[1].Change != 0.2 {
		t.Errorf("points[1].Change = %v, want 0.2", points[1].Change)
	}
	if points[1].ChangePct == nil || *points[1].ChangePct != 100.0 {
		t.Errorf("points[1].ChangePct = %v, want 100.0", points[1].ChangePct)
	}
}

func TestTrendsChangePctUndefinedAtZeroBaseline(t *testing.T) {
	scored := []models.ScoredReview{
		onDate(0.0, models.LabelNeutral, week1),
		onDate(0.3, models.LabelPositive, week2),
	}

	points := Trends(scored, models.FrequencyWeekly)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[1].Change == nil || *points[1].Change != 0.3 {
		t.Errorf("Change = %v, want 0.3", points[1].Change)
	}
	if points[1].ChangePct != nil {
		t.Errorf("ChangePct = %v, want nil for zero baseline", *points[1].ChangePct)
	}
}

func TestTrendsChangePctSignedBaseline(t *testing.T) {
	scored := []models.ScoredReview{
		onDate(-0.2, models.LabelNegative, week1),
		onDate(-0.1, models.LabelNegative, week2),
	}

	points := Trends(scored, models.FrequencyWeekly)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[1].Change == nil || *points[1].Change != 0.1 {
		t.Errorf("Change = %v, want 0.1", points[1].Change)
	}
	// 0.1 over a -0.2 baseline: the percent change keeps the baseline's
	// sign, so the recovery reads as -50%.
	if points[1].ChangePct == nil || *points[1].ChangePct != -50.0 {
		t.Errorf("ChangePct = %v, want -50.0", points[1].ChangePct)
	}
}

func TestTrendsEmpty(t *testing.T) {
	if points := Trends(nil, models.FrequencyWeekly); points != nil {
		t.Errorf("Trends(nil) = %v, want nil", points)
	}
	undated := []models.ScoredReview{{SentimentResult: models.SentimentResult{Compound: 0.4}}}
	if points := Trends(undated, models.FrequencyWeekly); points != nil {
		t.Errorf("Trends(undated) = %v, want nil", points)
	}
}

func TestTrendsMonthlyLabels(t *testing.T) {
	scored := []models.ScoredReview{
		onDate(0.5, models.LabelPositive, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)),
		onDate(0.5, models.LabelPositive, time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)),
	}
	points := Trends(scored, models.FrequencyMonthly)
	if len(points) != 2 || points[0].Period != "2026-01" || points[1].Period != "2026-02" {
		t.Errorf("monthly periods = %+v", points)
	}
}

func TestDetectAnomaliesFlagsSpike(t *testing.T) {
	scored := []models.ScoredReview{
		onDate(0.5, models.LabelPositive, week1),
		onDate(0.5, models.LabelPositive, week1.AddDate(0, 0, 7)),
		onDate(0.5, models.LabelPositive, week1.AddDate(0, 0, 14)),
		onDate(0.5, models.LabelPositive, week1.AddDate(0, 0, 21)),
		onDate(0.5, models.LabelPositive, week1.AddDate(0, 0, 28)),
		onDate(0.5, models.LabelPositive, week1.AddDate(0, 0, 35)),
		onDate(-0.7, models.LabelNegative, week1.AddDate(0, 0, 42)),
	}

	points := DetectAnomalies(scored, models.FrequencyWeekly, DefaultAnomalyThreshold)
	if len(points) != 7 {
		t.Fatalf("got %d points, want 7", len(points))
	}

	last := points[len(points)-1]
	if !last.IsAnomaly || last.AnomalyType != models.AnomalyNegativeSpike {
		t.Errorf("last point = %+v, want negative spike", last)
	}
	for _, p := range points[:6] {
		if p.IsAnomaly {
			t.Errorf("steady bucket %s flagged as anomaly (z=%v)", p.Period, p.ZScore)
		}
	}
}

func TestDetectAnomaliesFlatSeries(t *testing.T) {
	scored := []models.ScoredReview{
		onDate(0.5, models.LabelPositive, week1),
		onDate(0.5, models.LabelPositive, week2),
		onDate(0.5, models.LabelPositive, week3),
	}

	points := DetectAnomalies(scored, models.FrequencyWeekly, DefaultAnomalyThreshold)
	for _, p := range points {
		if p.IsAnomaly || p.ZScore != 0 || p.AnomalyType != models.AnomalyNormal {
			t.Errorf("flat series bucket flagged: %+v", p)
		}
	}
}

func TestDetectAnomaliesIdempotent(t *testing.T) {
	scored := []models.ScoredReview{
		onDate(0.5, models.LabelPositive, week1),
		onDate(0.2, models.LabelPositive, week2),
		onDate(-0.4, models.LabelNegative, week3),
	}

	first := DetectAnomalies(scored, models.FrequencyWeekly, 0)
	second := DetectAnomalies(scored, models.FrequencyWeekly, 0)
	if len(first) != len(second) {
		t.Fatal("repeated runs disagree on length")
	}
	for i := range first {
		if first[i].ZScore != second[i].ZScore || first[i].IsAnomaly != second[i].IsAnomaly {
			t.Errorf("point %d differs between runs", i)
		}
	}
}
