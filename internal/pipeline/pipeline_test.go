package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/topics"
)

func review(id, text string, rating int, day time.Time) models.Review {
	return models.Review{
		ID:     id,
		Text:   text,
		Rating: &rating,
		Date:   &models.ReviewDate{Time: day},
	}
}

func TestRunSmallCorpus(t *testing.T) {
	base := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	reviews := []models.Review{
		review("r1", "Absolutely love it, perfect quality, exceeded expectations!", 5, base),
		review("r2", "Fantastic value, sturdy and durable, highly recommend.", 5, base.AddDate(0, 0, 1)),
		review("r3", "Fast shipping and the product works beautifully.", 4, base.AddDate(0, 0, 2)),
		review("r4", "It is a box.", 3, base.AddDate(0, 0, 3)),
		review("r5", "Terrible, broken on arrival, total scam, waste of money.", 1, base.AddDate(0, 0, 4)),
	}

	report, err := Run(reviews, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	dist := report.Distribution
	if dist.Total != 5 {
		t.Fatalf("Distribution.Total = %d, want 5", dist.Total)
	}
	if dist.Counts[models.LabelPositive] != 3 ||
		dist.Counts[models.LabelNeutral] != 1 ||
		dist.Counts[models.LabelNegative] != 1 {
		t.Errorf("Counts = %v, want 3 positive / 1 neutral / 1 negative", dist.Counts)
	}
	if dist.Percentages[models.LabelPositive] != 60.0 {
		t.Errorf("positive pct = %v, want 60.0", dist.Percentages[models.LabelPositive])
	}

	// Five documents cannot support the default six topics; the section is
	// skipped, not an error.
	if report.Topics != nil {
		t.Errorf("Topics = %+v, want nil for an undersized corpus", report.Topics)
	}

	if report.NPS.Total != 5 {
		t.Errorf("NPS.Total = %d, want 5", report.NPS.Total)
	}
	if report.Summary.TotalReviews != 5 {
		t.Errorf("Summary.TotalReviews = %d, want 5", report.Summary.TotalReviews)
	}
	if len(report.RatingSegments) == 0 {
		t.Error("RatingSegments empty for a rated corpus")
	}
	if len(report.Trends) == 0 {
		t.Error("Trends empty for a dated corpus")
	}
	if len(report.AspectSummary) == 0 {
		t.Error("AspectSummary empty; the corpus mentions quality and shipping")
	}
}

func TestRunWithTopics(t *testing.T) {
	base := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	texts := []string{
		"Shipping arrived late, courier delayed the shipping twice.",
		"Shipping courier delayed again, arrived slowly.",
		"Late shipping, courier left it arrived damaged.",
		"Shipping delayed, courier late, poor arrival.",
		"Battery charger drains the battery and overheats.",
		"Battery drains fast, overheats near the charger.",
		"Charger makes the battery overheat and drains fully.",
		"Battery charger drains quickly and overheats badly.",
	}
	reviews := make([]models.Review, len(texts))
	for i, text := range texts {
		reviews[i] = review("", text, 2, base.AddDate(0, 0, i))
	}

	opts := DefaultOptions()
	opts.TopicCount = 2

	report, err := Run(reviews, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Topics == nil {
		t.Fatal("Topics missing for a corpus large enough to model")
	}
	if len(report.Topics.Topics) != 2 {
		t.Errorf("got %d topics, want 2", len(report.Topics.Topics))
	}
	if report.Topics.DocumentCount != len(reviews) {
		t.Errorf("DocumentCount = %d, want %d", report.Topics.DocumentCount, len(reviews))
	}
	if len(report.Keywords) == 0 {
		t.Error("Keywords empty for a repetitive corpus")
	}
}

func TestRunEmptyCorpus(t *testing.T) {
	report, err := Run(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Run(nil): %v", err)
	}
	if report.Distribution.Total != 0 {
		t.Errorf("Distribution.Total = %d, want 0", report.Distribution.Total)
	}
	if report.Topics != nil || len(report.Alerts) != 0 {
		t.Errorf("empty corpus produced sections: topics=%v alerts=%v", report.Topics, report.Alerts)
	}
}

func TestRunInvalidTopicMethod(t *testing.T) {
	opts := DefaultOptions()
	opts.TopicMethod = "pca"

	_, err := Run([]models.Review{{Text: "fine"}}, opts)
	if !errors.Is(err, topics.ErrUnknownMethod) {
		t.Fatalf("error = %v, want ErrUnknownMethod", err)
	}
}
