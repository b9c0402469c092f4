// Package topics extracts keywords, n-grams and latent topics from a
// review corpus using TF-IDF weighting and NMF or LDA factorization.
package topics

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Method selects the topic factorization algorithm.
type Method string

const (
	MethodNMF Method = "nmf"
	MethodLDA Method = "lda"
)

const (
	// DefaultTopicCount is the number of topics extracted when the caller
	// does not choose one.
	DefaultTopicCount = 6
	// DefaultWordsPerTopic is the ranked word-list length per topic.
	DefaultWordsPerTopic = 10
	// DefaultKeywordCount caps the keyword listing.
	DefaultKeywordCount = 20
)

var (
	// ErrInsufficientDocuments means fewer non-empty documents survived
	// preprocessing than topics were requested.
	ErrInsufficientDocuments = errors.New("topics: not enough documents for topic modeling")
	// ErrUnknownMethod is a construction-time configuration error.
	ErrUnknownMethod = errors.New("topics: unknown topic modeling method")
	// ErrInvalidTopicCount is a construction-time configuration error.
	ErrInvalidTopicCount = errors.New("topics: topic count must be positive")
)

// Extractor discovers keywords and latent topics over a corpus. It has two
// lifecycle phases: unfit (configuration only) and fit (vocabulary and
// components present, per-text queries allowed). One extractor serves one
// corpus; concurrent unrelated corpora need their own instances.
type Extractor struct {
	nTopics int
	method  Method

	vec        *vectorizer
	components *mat.Dense
	topics     []models.Topic
	fitted     bool
}

// NewExtractor validates configuration and returns an unfit extractor.
// Misconfiguration fails fast here; data problems never do.
func NewExtractor(nTopics int, method Method) (*Extractor, error) {
	if nTopics <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopicCount, nTopics)
	}
	switch method {
	case MethodNMF, MethodLDA:
	case "":
		method = MethodNMF
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return &Extractor{nTopics: nTopics, method: method}, nil
}

// Keywords ranks terms by mean TF-IDF score across the corpus, descending.
// Uses a throwaway vectorizer so it never disturbs a fitted topic model.
func (e *Extractor) Keywords(texts []string, topN int) []models.Keyword {
	docs := tokenizeAll(texts)
	if len(docs) == 0 {
		return nil
	}

	vec := newTFIDFVectorizer()
	m, err := vec.fitTransform(docs)
	if err != nil {
		return nil
	}

	sums := columnSums(m)
	keywords := make([]models.Keyword, len(sums))
	for i, sum := range sums {
		keywords[i] = models.Keyword{
			Term:  vec.terms[i],
			Score: round4(sum / float64(len(docs))),
		}
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Score > keywords[j].Score
	})
	if topN > 0 && len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

// NGrams counts fixed-size phrases across the corpus, top K by raw count.
func (e *Extractor) NGrams(texts []string, n, topK int) []models.Bigram {
	if n <= 0 {
		return nil
	}
	docs := tokenizeAll(texts)
	if len(docs) == 0 {
		return nil
	}

	vec := newNGramVectorizer(n)
	m, err := vec.fitTransform(docs)
	if err != nil {
		return nil
	}

	sums := columnSums(m)
	grams := make([]models.Bigram, len(sums))
	for i, sum := range sums {
		grams[i] = models.Bigram{Phrase: vec.terms[i], Count: int(sum)}
	}

	sort.SliceStable(grams, func(i, j int) bool {
		return grams[i].Count > grams[j].Count
	})
	if topK > 0 && len(grams) > topK {
		grams = grams[:topK]
	}
	return grams
}

// ExtractTopics fits the topic model over the corpus and moves the
// extractor to its fit phase. Requires at least nTopics non-empty
// documents after preprocessing.
func (e *Extractor) ExtractTopics(texts []string, wordsPerTopic int) (*models.TopicModelResult, error) {
	if wordsPerTopic <= 0 {
		wordsPerTopic = DefaultWordsPerTopic
	}

	docs := tokenizeAll(texts)
	if len(docs) < e.nTopics {
		return nil, fmt.Errorf("%w: %d documents, %d topics", ErrInsufficientDocuments, len(docs), e.nTopics)
	}

	if e.method == MethodNMF {
		e.vec = newTFIDFVectorizer()
	} else {
		e.vec = newCountVectorizer()
	}
	dtm, err := e.vec.fitTransform(docs)
	if err != nil {
		return nil, err
	}

	var docTopics *mat.Dense
	if e.method == MethodNMF {
		docTopics, e.components = nmf(dtm, e.nTopics, nmfIterations)
	} else {
		docTopics, e.components = lda(dtm, e.nTopics, ldaIterations)
	}

	dominantCounts := make([]int, e.nTopics)
	nDocs, _ := docTopics.Dims()
	rows := make([][]float64, nDocs)
	for d := 0; d < nDocs; d++ {
		row := make([]float64, e.nTopics)
		for z := 0; z < e.nTopics; z++ {
			row[z] = docTopics.At(d, z)
		}
		rows[d] = row
		dominantCounts[argmax(row)]++
	}

	e.topics = make([]models.Topic, e.nTopics)
	for z := 0; z < e.nTopics; z++ {
		words := e.topWords(z, wordsPerTopic)
		wordList := make([]string, len(words))
		for i, w := range words {
			wordList[i] = w.Word
		}
		e.topics[z] = models.Topic{
			Name:          fmt.Sprintf("Topic %d", z+1),
			Words:         words,
			WordList:      wordList,
			DocumentCount: dominantCounts[z],
		}
	}
	e.fitted = true

	return &models.TopicModelResult{
		Topics:         e.topics,
		DocumentCount:  nDocs,
		DocumentTopics: rows,
	}, nil
}

// topWords ranks one component's terms by weight, descending.
func (e *Extractor) topWords(topic, count int) []models.TopicWord {
	_, m := e.components.Dims()
	indices := make([]int, m)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return e.components.At(topic, indices[i]) > e.components.At(topic, indices[j])
	})

	if count > m {
		count = m
	}
	words := make([]models.TopicWord, count)
	for i := 0; i < count; i++ {
		words[i] = models.TopicWord{
			Word:   e.vec.terms[indices[i]],
			Weight: round4(e.components.At(topic, indices[i])),
		}
	}
	return words
}

// AssignTopic finds the dominant topic for a single text. A zero
// assignment (empty topic name, zero confidence) means the model is unfit
// or the text carries no vocabulary terms.
func (e *Extractor) AssignTopic(text string) models.TopicAssignment {
	if !e.fitted {
		return models.TopicAssignment{}
	}
	tokens := tokenize(text)
	if tokens == nil {
		return models.TopicAssignment{}
	}

	dtm := e.vec.transform([][]string{tokens})

	var row *mat.Dense
	if e.method == MethodNMF {
		row = transformNMF(dtm, e.components, nmfIterations)
	} else {
		row = transformLDA(dtm, e.components)
	}

	dist := make([]float64, e.nTopics)
	var total float64
	for z := 0; z < e.nTopics; z++ {
		dist[z] = row.At(0, z)
		total += dist[z]
	}
	if total == 0 {
		return models.TopicAssignment{}
	}

	dominant := argmax(dist)
	return models.TopicAssignment{
		Topic:        fmt.Sprintf("Topic %d", dominant+1),
		TopicID:      dominant,
		Confidence:   round3(dist[dominant] / total),
		Distribution: dist,
	}
}

// AssignAll fits the model on the corpus and tags every review with its
// dominant topic.
func (e *Extractor) AssignAll(scored []models.ScoredReview, wordsPerTopic int) ([]models.TaggedReview, error) {
	texts := make([]string, len(scored))
	for i, r := range scored {
		texts[i] = r.Text
	}
	if _, err := e.ExtractTopics(texts, wordsPerTopic); err != nil {
		return nil, err
	}

	tagged := make([]models.TaggedReview, len(scored))
	for i, r := range scored {
		assignment := e.AssignTopic(r.Text)
		tagged[i] = models.TaggedReview{
			ScoredReview:    r,
			Topic:           assignment.Topic,
			TopicConfidence: assignment.Confidence,
		}
	}
	return tagged, nil
}

// WordFrequencies counts tokens across the corpus after preprocessing,
// top N by count.
func (e *Extractor) WordFrequencies(texts []string, topN int) []models.WordCount {
	counts := make(map[string]int)
	for _, tokens := range tokenizeAll(texts) {
		for _, w := range tokens {
			counts[w]++
		}
	}

	out := make([]models.WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, models.WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Summary lists the fitted topics with their top five words. Nil before
// the model is fit.
func (e *Extractor) Summary() []models.TopicSummaryRow {
	if !e.fitted {
		return nil
	}
	rows := make([]models.TopicSummaryRow, len(e.topics))
	for i, t := range e.topics {
		top := t.WordList
		if len(top) > 5 {
			top = top[:5]
		}
		rows[i] = models.TopicSummaryRow{
			Topic:         t.Name,
			TopWords:      strings.Join(top, ", "),
			DocumentCount: t.DocumentCount,
		}
	}
	return rows
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
