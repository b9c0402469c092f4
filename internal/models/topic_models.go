package models

// Keyword is a term ranked by its mean TF-IDF score across the corpus.
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Bigram is a phrase ranked by raw occurrence count.
type Bigram struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// WordCount is a single token frequency, for word-cloud style consumers.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopicWord is one weighted term of a topic.
type TopicWord struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// Topic is one latent topic discovered over a corpus. DocumentCount is the
// number of documents whose dominant topic is this one.
type Topic struct {
	Name          string      `json:"topic"`
	Words         []TopicWord `json:"words"`
	WordList      []string    `json:"word_list"`
	DocumentCount int         `json:"document_count"`
}

// TopicModelResult is the outcome of fitting the topic model on a corpus.
type TopicModelResult struct {
	Topics         []Topic     `json:"topics"`
	DocumentCount  int         `json:"n_documents"`
	DocumentTopics [][]float64 `json:"document_topics,omitempty"`
}

// TopicAssignment is the dominant topic of a single text. A zero value
// (empty Topic, zero confidence) means no assignment could be made.
type TopicAssignment struct {
	Topic        string    `json:"topic,omitempty"`
	TopicID      int       `json:"topic_id"`
	Confidence   float64   `json:"confidence"`
	Distribution []float64 `json:"distribution,omitempty"`
}

// TopicSummaryRow is the condensed listing of one topic.
type TopicSummaryRow struct {
	Topic         string `json:"topic"`
	TopWords      string `json:"top_words"`
	DocumentCount int    `json:"document_count"`
}

// TaggedReview is a ScoredReview with its topic assignment appended.
type TaggedReview struct {
	ScoredReview
	Topic           string  `json:"topic,omitempty"`
	TopicConfidence float64 `json:"topic_confidence"`
}
