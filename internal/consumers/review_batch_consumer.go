package consumers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/spacesedan/reviewpulse/internal/aspects"
	"github.com/spacesedan/reviewpulse/internal/clients"
	"github.com/spacesedan/reviewpulse/internal/clients/kafka_client"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/pipeline"
	"github.com/spacesedan/reviewpulse/internal/utils"
)

// StartReviewBatchConsumer runs the analytics pipeline for every review
// batch on the topic, publishes the report, and commits the offset only
// after the result is out.
func StartReviewBatchConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ReviewBatchConsumer] Consumer shutting down...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var batch models.ReviewBatch
			if err := utils.DeserializeFromJSON(msg.Value, &batch); err != nil {
				utils.HandleConsumerError(err)
				continue
			}
			if len(batch.Reviews) == 0 {
				slog.Warn("[ReviewBatchConsumer] Skipping empty batch")
				if err := committer.Commit(msg); err != nil {
					utils.HandleConsumerError(err)
				}
				continue
			}
			if batch.BatchID == "" {
				batch.BatchID = generateBatchID(&batch)
			}

			if clients.GetValkeyClient().IsBatchProcessed(ctx, batch.BatchID) {
				slog.Info("[ReviewBatchConsumer] Batch already processed, skipping",
					slog.String("batch_id", batch.BatchID))
				if err := committer.Commit(msg); err != nil {
					utils.HandleConsumerError(err)
				}
				continue
			}

			utils.TrackMessage(batch.BatchID, msg)

			opts := pipeline.DefaultOptions()
			opts.Industry = aspects.ParseIndustry(batch.Industry)

			report, err := pipeline.Run(batch.Reviews, opts)
			if err != nil {
				slog.Error("[ReviewBatchConsumer] Pipeline run failed",
					slog.String("batch_id", batch.BatchID),
					slog.String("error", err.Error()))
				continue
			}

			publishResult(ctx, committer, models.AnalysisResult{
				BatchID: batch.BatchID,
				Report:  report,
			})
		}
	}
}

func publishResult(ctx context.Context, committer *kafka_client.KafkaCommitHandler, result models.AnalysisResult) {
	if err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_ANALYSIS_RESULTS, result.BatchID, result); err != nil {
		slog.Error("[ReviewBatchConsumer] Failed to publish analysis result",
			slog.String("batch_id", result.BatchID),
			slog.String("error", err.Error()))
		return
	}

	if err := clients.GetValkeyClient().MarkBatchProcessed(ctx, result.BatchID); err != nil {
		slog.Warn("[ReviewBatchConsumer] Failed to mark batch as processed",
			slog.String("batch_id", result.BatchID),
			slog.String("error", err.Error()))
	}

	if trackedMsg, found := utils.GetMessageForBatch(result.BatchID); found {
		if err := committer.Commit(trackedMsg); err != nil {
			slog.Warn("[ReviewBatchConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}

// generateBatchID derives a stable ID from the batch content so retried
// deliveries of an unkeyed batch still dedupe.
func generateBatchID(batch *models.ReviewBatch) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s:%d", batch.Industry, len(batch.Reviews))
	for _, r := range batch.Reviews {
		h.Write([]byte(r.Text))
	}
	return hex.EncodeToString(h.Sum(nil))
}
