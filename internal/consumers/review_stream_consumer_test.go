package consumers

import (
	"testing"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestBuildReviewBatchFromBuffer(t *testing.T) {
	reviewBuffer.Add(models.Review{Text: "runs small"})
	reviewBuffer.Add(models.Review{Text: "soft fabric"})

	batch := buildReviewBatch(reviewBuffer.GetAndClear())
	if batch.BatchID == "" {
		t.Error("drained batch carries no ID")
	}
	if len(batch.Reviews) != 2 {
		t.Fatalf("batch holds %d reviews, want 2", len(batch.Reviews))
	}
	if batch.Reviews[0].Text != "runs small" || batch.Reviews[1].Text != "soft fabric" {
		t.Errorf("batch reviews = %+v, want buffer order preserved", batch.Reviews)
	}
	if reviewBuffer.HasData() {
		t.Error("buffer not empty after drain")
	}

	// The derived ID matches the batch consumer's dedupe scheme.
	if want := generateBatchID(&batch); batch.BatchID != want {
		t.Errorf("BatchID = %q, want %q", batch.BatchID, want)
	}
}

func TestBuildReviewBatchEmptyDrain(t *testing.T) {
	batch := buildReviewBatch(nil)
	if batch.BatchID != "" || batch.Reviews != nil {
		t.Errorf("empty drain produced %+v, want zero value", batch)
	}
}
