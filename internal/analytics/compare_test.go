package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestComparePeriods(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	scored := []models.ScoredReview{
		onDate(0.2, models.LabelPositive, jan),
		onDate(0.2, models.LabelPositive, jan.AddDate(0, 0, 2)),
		onDate(0.4, models.LabelPositive, feb),
		onDate(0.4, models.LabelPositive, feb.AddDate(0, 0, 2)),
	}

	cmp, err := ComparePeriods(scored,
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("ComparePeriods: %v", err)
	}

	if cmp.Period1.ReviewCount != 2 || cmp.Period2.ReviewCount != 2 {
		t.Errorf("counts = %d/%d, want 2/2", cmp.Period1.ReviewCount, cmp.Period2.ReviewCount)
	}
	if cmp.SentimentChange != 0.2 {
		t.Errorf("SentimentChange = %v, want 0.2", cmp.SentimentChange)
	}
	if cmp.SentimentChangePct != 100.0 {
		t.Errorf("SentimentChangePct = %v, want 100.0", cmp.SentimentChangePct)
	}
	if cmp.Trend != "improving" {
		t.Errorf("Trend = %q, want improving", cmp.Trend)
	}
}

func TestComparePeriodsStable(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	scored := []models.ScoredReview{
		onDate(0.30, models.LabelPositive, jan),
		onDate(0.33, models.LabelPositive, feb),
	}

	cmp, err := ComparePeriods(scored,
		jan.AddDate(0, 0, -5), jan.AddDate(0, 0, 5),
		feb.AddDate(0, 0, -5), feb.AddDate(0, 0, 5),
	)
	if err != nil {
		t.Fatalf("ComparePeriods: %v", err)
	}
	if cmp.Trend != "stable" {
		t.Errorf("Trend = %q, want stable for a 0.03 shift", cmp.Trend)
	}
}

func TestComparePeriodsDeclining(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	scored := []models.ScoredReview{
		onDate(0.5, models.LabelPositive, jan),
		onDate(0.1, models.LabelNeutral, feb),
	}

	cmp, err := ComparePeriods(scored,
		jan.AddDate(0, 0, -5), jan.AddDate(0, 0, 5),
		feb.AddDate(0, 0, -5), feb.AddDate(0, 0, 5),
	)
	if err != nil {
		t.Fatalf("ComparePeriods: %v", err)
	}
	if cmp.Trend != "declining" || cmp.SentimentChange != -0.4 {
		t.Errorf("comparison = %+v, want declining by -0.4", cmp)
	}
}

func TestComparePeriodsInsufficientData(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	scored := []models.ScoredReview{onDate(0.5, models.LabelPositive, jan)}

	_, err := ComparePeriods(scored,
		jan.AddDate(0, 0, -5), jan.AddDate(0, 0, 5),
		jan.AddDate(0, 1, 0), jan.AddDate(0, 2, 0),
	)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}
