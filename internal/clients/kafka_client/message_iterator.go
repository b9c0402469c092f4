package kafka_client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// KafkaMessageIterator pulls messages off a consumer with bounded retries.
// A cancelled context or a dead broker set ends iteration; transient read
// errors are retried with a fixed delay.
type KafkaMessageIterator struct {
	consumer *kafka.Consumer
	ctx      context.Context
}

func NewKafkaMessageIterator(ctx context.Context, consumer *kafka.Consumer) *KafkaMessageIterator {
	return &KafkaMessageIterator{consumer: consumer, ctx: ctx}
}

// Next blocks until a message arrives or the retry budget is spent.
func (it *KafkaMessageIterator) Next() (*kafka.Message, error) {
	if it.consumer == nil {
		return nil, errors.New("[KafkaIterator] Kafka consumer has not been initialized")
	}

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		if err := it.ctx.Err(); err != nil {
			slog.Warn("[KafkaIterator] Context cancelled, stopping iterator")
			return nil, err
		}

		msg, err := it.consumer.ReadMessage(-1)
		if err == nil {
			return msg, nil
		}
		if isFatalKafkaError(err) {
			slog.Error("[KafkaIterator] All Kafka brokers are down. Aborting")
			return nil, err
		}

		slog.Warn("[KafkaIterator] Failed to read message, retrying...",
			slog.Int("attempt", attempt),
			slog.Int("max_retries", MAX_RETRIES),
			slog.String("error", err.Error()))
		time.Sleep(RETRY_DELAY)
	}
	return nil, fmt.Errorf("[KafkaIterator] Failed to read message after %d retries", MAX_RETRIES)
}

// isFatalKafkaError reports errors that no amount of retrying will fix.
func isFatalKafkaError(err error) bool {
	var kafkaErr kafka.Error
	if errors.As(err, &kafkaErr) {
		return kafkaErr.Code() == kafka.ErrAllBrokersDown
	}
	return false
}
