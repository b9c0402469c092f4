package consumers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/reviewpulse/internal/clients/kafka_client"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/utils"
)

var (
	reviewBuffer = utils.NewBatchBuffer[models.Review]()

	streamOffsetMu sync.Mutex
	streamOffset   *kafka.Message
)

// StartReviewStreamConsumer buffers single-review messages into full
// batches and republishes them on the review-batches topic, where the
// batch consumer picks them up. Flushes when the buffer fills and on a
// timer so a quiet stream still drains.
func StartReviewStreamConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[ReviewStreamConsumer] Listening for messages...")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ReviewStreamConsumer] Consumer shutting down...")
			flushReviewBuffer(committer)
			return
		case <-ticker.C:
			flushReviewBuffer(committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var review models.Review
			if err := utils.DeserializeFromJSON(msg.Value, &review); err != nil {
				utils.HandleConsumerError(err)
				continue
			}
			if review.Text == "" {
				slog.Warn("[ReviewStreamConsumer] Skipping review without text")
				if err := committer.Commit(msg); err != nil {
					utils.HandleConsumerError(err)
				}
				continue
			}

			reviewBuffer.Add(review)
			rememberStreamOffset(msg)

			if reviewBuffer.Size() >= utils.DEFAULT_BATCH_CAPACITY {
				flushReviewBuffer(committer)
			}
		}
	}
}

// flushReviewBuffer drains the buffer into one batch, publishes it, and
// commits through the newest buffered offset. A failed publish leaves the
// offsets uncommitted so the reviews are redelivered.
func flushReviewBuffer(committer *kafka_client.KafkaCommitHandler) {
	batch := buildReviewBatch(reviewBuffer.GetAndClear())
	if batch.BatchID == "" {
		return
	}

	if err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_REVIEW_BATCHES, batch.BatchID, batch); err != nil {
		slog.Error("[ReviewStreamConsumer] Failed to publish review batch",
			slog.String("batch_id", batch.BatchID),
			slog.Int("reviews", len(batch.Reviews)),
			slog.String("error", err.Error()))
		return
	}

	if msg := takeStreamOffset(); msg != nil {
		if err := committer.Commit(msg); err != nil {
			slog.Warn("[ReviewStreamConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}

// buildReviewBatch wraps drained reviews into a batch with a
// content-derived ID. Returns the zero value for an empty drain.
func buildReviewBatch(reviews []models.Review) models.ReviewBatch {
	if len(reviews) == 0 {
		return models.ReviewBatch{}
	}
	batch := models.ReviewBatch{Reviews: reviews}
	batch.BatchID = generateBatchID(&batch)
	return batch
}

// rememberStreamOffset keeps only the newest consumed message; committing
// it covers every earlier buffered review on the partition.
func rememberStreamOffset(msg *kafka.Message) {
	streamOffsetMu.Lock()
	defer streamOffsetMu.Unlock()
	streamOffset = msg
}

func takeStreamOffset() *kafka.Message {
	streamOffsetMu.Lock()
	defer streamOffsetMu.Unlock()
	msg := streamOffset
	streamOffset = nil
	return msg
}
