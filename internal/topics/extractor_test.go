package topics

import (
	"errors"
	"testing"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Two disjoint vocabularies, four documents each. Enough shared terms per
// cluster to survive the document-frequency filters.
var topicCorpus = []string{
	"shipping arrived late courier delayed shipping",
	"shipping courier delayed arrived slowly",
	"late shipping courier arrived damaged",
	"shipping delayed courier late arrival",
	"battery charger drains battery overheats",
	"battery drains overheats charger quickly",
	"charger battery overheats drains fully",
	"battery charger drains quickly overheats",
}

// TopicAssignment carries a slice, so the zero value is checked field by
// field.
func isZeroAssignment(a models.TopicAssignment) bool {
	return a.Topic == "" && a.TopicID == 0 && a.Confidence == 0 && a.Distribution == nil
}

func TestNewExtractorValidation(t *testing.T) {
	if _, err := NewExtractor(0, MethodNMF); !errors.Is(err, ErrInvalidTopicCount) {
		t.Errorf("NewExtractor(0, nmf) error = %v, want ErrInvalidTopicCount", err)
	}
	if _, err := NewExtractor(-3, MethodLDA); !errors.Is(err, ErrInvalidTopicCount) {
		t.Errorf("NewExtractor(-3, lda) error = %v, want ErrInvalidTopicCount", err)
	}
	if _, err := NewExtractor(3, "pca"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("NewExtractor(3, pca) error = %v, want ErrUnknownMethod", err)
	}

	e, err := NewExtractor(3, "")
	if err != nil {
		t.Fatalf("NewExtractor(3, \"\"): %v", err)
	}
	if e.method != MethodNMF {
		t.Errorf("empty method resolved to %v, want nmf", e.method)
	}
}

func TestExtractTopicsInsufficientDocuments(t *testing.T) {
	e, err := NewExtractor(3, MethodNMF)
	if err != nil {
		t.Fatal(err)
	}

	_, err = e.ExtractTopics([]string{"battery drains fast", "charger broke"}, 5)
	if !errors.Is(err, ErrInsufficientDocuments) {
		t.Fatalf("error = %v, want ErrInsufficientDocuments", err)
	}
	if e.fitted {
		t.Error("failed fit must leave the extractor unfit")
	}
}

func TestAssignTopicUnfit(t *testing.T) {
	e, err := NewExtractor(2, MethodNMF)
	if err != nil {
		t.Fatal(err)
	}

	if got := e.AssignTopic("battery drains fast"); !isZeroAssignment(got) {
		t.Errorf("unfit AssignTopic = %+v, want zero assignment", got)
	}
	if rows := e.Summary(); rows != nil {
		t.Errorf("unfit Summary = %v, want nil", rows)
	}
}

func TestExtractTopicsNMF(t *testing.T) {
	e, err := NewExtractor(2, MethodNMF)
	if err != nil {
		t.Fatal(err)
	}

	result, err := e.ExtractTopics(topicCorpus, 5)
	if err != nil {
		t.Fatalf("ExtractTopics: %v", err)
	}
	if result.DocumentCount != len(topicCorpus) {
		t.Errorf("DocumentCount = %d, want %d", result.DocumentCount, len(topicCorpus))
	}
	if len(result.Topics) != 2 {
		t.Fatalf("got %d topics, want 2", len(result.Topics))
	}

	var totalDocs int
	for i, topic := range result.Topics {
		if topic.Name == "" {
			t.Errorf("topic %d has no name", i)
		}
		if len(topic.Words) == 0 || len(topic.Words) > 5 {
			t.Errorf("topic %d has %d words, want 1..5", i, len(topic.Words))
		}
		for j := 1; j < len(topic.Words); j++ {
			if topic.Words[j].Weight > topic.Words[j-1].Weight {
				t.Errorf("topic %d words not sorted by weight", i)
			}
		}
		totalDocs += topic.DocumentCount
	}
	if totalDocs != len(topicCorpus) {
		t.Errorf("dominant-topic counts sum to %d, want %d", totalDocs, len(topicCorpus))
	}

	// The two vocabulary clusters must land in different topics.
	shipping := e.AssignTopic("shipping courier delayed late")
	battery := e.AssignTopic("battery charger drains overheats")
	if shipping.Topic == "" || battery.Topic == "" {
		t.Fatal("in-vocabulary texts must receive an assignment")
	}
	if shipping.TopicID == battery.TopicID {
		t.Error("disjoint clusters assigned the same topic")
	}
	if shipping.Confidence <= 0 || shipping.Confidence > 1 {
		t.Errorf("Confidence = %v, want within (0, 1]", shipping.Confidence)
	}

	if got := e.AssignTopic("zebra xylophone"); !isZeroAssignment(got) {
		t.Errorf("out-of-vocabulary AssignTopic = %+v, want zero assignment", got)
	}
}

func TestExtractTopicsDeterministic(t *testing.T) {
	run := func() *models.TopicModelResult {
		e, err := NewExtractor(2, MethodNMF)
		if err != nil {
			t.Fatal(err)
		}
		result, err := e.ExtractTopics(topicCorpus, 5)
		if err != nil {
			t.Fatal(err)
		}
		return result
	}

	first, second := run(), run()
	for i := range first.Topics {
		if first.Topics[i].DocumentCount != second.Topics[i].DocumentCount {
			t.Errorf("topic %d document count differs between runs", i)
		}
		for j := range first.Topics[i].Words {
			if first.Topics[i].Words[j] != second.Topics[i].Words[j] {
				t.Errorf("topic %d word %d differs between runs", i, j)
			}
		}
	}
}

func TestExtractTopicsLDA(t *testing.T) {
	e, err := NewExtractor(2, MethodLDA)
	if err != nil {
		t.Fatal(err)
	}

	result, err := e.ExtractTopics(topicCorpus, 5)
	if err != nil {
		t.Fatalf("ExtractTopics: %v", err)
	}
	if result.DocumentCount != len(topicCorpus) || len(result.Topics) != 2 {
		t.Fatalf("result = %d docs / %d topics, want 8/2", result.DocumentCount, len(result.Topics))
	}

	// Topic proportions per document sum to one.
	for d, row := range result.DocumentTopics {
		var sum float64
		for _, p := range row {
			sum += p
		}
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("document %d proportions sum to %v, want 1.0", d, sum)
		}
	}

	assignment := e.AssignTopic("battery charger drains")
	if assignment.Topic == "" {
		t.Error("in-vocabulary text must receive an assignment after LDA fit")
	}
}

func TestAssignAll(t *testing.T) {
	e, err := NewExtractor(2, MethodNMF)
	if err != nil {
		t.Fatal(err)
	}

	scored := make([]models.ScoredReview, len(topicCorpus))
	for i, text := range topicCorpus {
		scored[i] = models.ScoredReview{Review: models.Review{Text: text}}
	}

	tagged, err := e.AssignAll(scored, 5)
	if err != nil {
		t.Fatalf("AssignAll: %v", err)
	}
	if len(tagged) != len(scored) {
		t.Fatalf("tagged %d reviews, want %d", len(tagged), len(scored))
	}
	for i, tr := range tagged {
		if tr.Topic == "" {
			t.Errorf("review %d received no topic", i)
		}
		if tr.Text != scored[i].Text {
			t.Errorf("review %d lost its text", i)
		}
	}
}

func TestKeywords(t *testing.T) {
	e, err := NewExtractor(2, MethodNMF)
	if err != nil {
		t.Fatal(err)
	}

	keywords := e.Keywords(topicCorpus, 5)
	if len(keywords) != 5 {
		t.Fatalf("got %d keywords, want topN cap of 5", len(keywords))
	}
	for i := 1; i < len(keywords); i++ {
		if keywords[i].Score > keywords[i-1].Score {
			t.Errorf("keywords not sorted descending at %d", i)
		}
	}

	seen := make(map[string]bool)
	for _, kw := range keywords {
		seen[kw.Term] = true
	}
	if !seen["battery"] && !seen["shipping"] {
		t.Errorf("expected a cluster anchor among top keywords, got %v", keywords)
	}

	if got := e.Keywords(nil, 5); got != nil {
		t.Errorf("Keywords(nil) = %v, want nil", got)
	}
}

func TestNGramsTopPhrases(t *testing.T) {
	e, err := NewExtractor(2, MethodNMF)
	if err != nil {
		t.Fatal(err)
	}

	texts := []string{
		"battery life battery life battery life",
		"battery life disappointing",
	}
	grams := e.NGrams(texts, 2, 3)
	if len(grams) == 0 {
		t.Fatal("no bigrams extracted")
	}
	if grams[0].Phrase != "battery life" || grams[0].Count != 4 {
		t.Errorf("top bigram = %+v, want {battery life 4}", grams[0])
	}

	if got := e.NGrams(texts, 0, 3); got != nil {
		t.Errorf("NGrams with n=0 = %v, want nil", got)
	}
}

func TestWordFrequencies(t *testing.T) {
	e, err := NewExtractor(2, MethodNMF)
	if err != nil {
		t.Fatal(err)
	}

	texts := []string{"battery drains battery", "battery charger", "charger drains"}
	freqs := e.WordFrequencies(texts, 0)
	if len(freqs) != 3 {
		t.Fatalf("got %d words, want 3", len(freqs))
	}
	if freqs[0].Word != "battery" || freqs[0].Count != 3 {
		t.Errorf("freqs[0] = %+v, want {battery 3}", freqs[0])
	}
	// Ties break alphabetically.
	if freqs[1].Word != "charger" || freqs[2].Word != "drains" {
		t.Errorf("tie order = %q, %q; want charger then drains", freqs[1].Word, freqs[2].Word)
	}

	capped := e.WordFrequencies(texts, 2)
	if len(capped) != 2 {
		t.Errorf("topN cap kept %d words, want 2", len(capped))
	}
}

func TestSummaryAfterFit(t *testing.T) {
	e, err := NewExtractor(2, MethodNMF)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.ExtractTopics(topicCorpus, 8); err != nil {
		t.Fatal(err)
	}

	rows := e.Summary()
	if len(rows) != 2 {
		t.Fatalf("Summary returned %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Topic == "" || row.TopWords == "" {
			t.Errorf("incomplete summary row %+v", row)
		}
	}
}
