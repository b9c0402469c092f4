package consumers

import (
	"testing"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestGenerateBatchID(t *testing.T) {
	batch := &models.ReviewBatch{
		Industry: "fashion",
		Reviews: []models.Review{
			{Text: "runs small"},
			{Text: "soft fabric"},
		},
	}

	first := generateBatchID(batch)
	second := generateBatchID(batch)
	if first == "" || first != second {
		t.Errorf("batch ID not deterministic: %q vs %q", first, second)
	}

	other := &models.ReviewBatch{
		Industry: "fashion",
		Reviews:  []models.Review{{Text: "runs small"}, {Text: "scratchy fabric"}},
	}
	if generateBatchID(other) == first {
		t.Error("different batch contents produced the same ID")
	}
}
