package kafka_client

import "time"

const (
	KAFKA_TOPIC_REVIEWS          = "reviews"          // single normalized reviews from streaming ingestion
	KAFKA_TOPIC_REVIEW_BATCHES   = "review-batches"   // normalized review batches from the ingestion boundary
	KAFKA_TOPIC_ANALYSIS_RESULTS = "analysis-results" // full pipeline reports, one per batch
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)
