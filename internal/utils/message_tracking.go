package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

var messageMap sync.Map

// TrackMessage remembers which Kafka message carried a batch so its offset
// can be committed once the batch's report is published.
func TrackMessage(batchID string, msg *kafka.Message) {
	messageMap.Store(batchID, msg)
}

func GetMessageForBatch(batchID string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(batchID)
	if !ok {
		return nil, false
	}
	messageMap.Delete(batchID)
	return msg.(*kafka.Message), true
}
