package topics

import (
	"errors"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptyVocabulary means no term survived the document-frequency filters.
var ErrEmptyVocabulary = errors.New("topics: empty vocabulary after pruning")

// vectorizer turns token slices into a document-term matrix. With tfidf
// set it produces L2-normalized TF-IDF rows, otherwise raw counts. Two
// lifecycle phases: unfit (configuration only) and fit (vocabulary plus
// idf weights, accepts transform calls).
type vectorizer struct {
	ngramMin    int
	ngramMax    int
	minDF       int
	maxDFRatio  float64
	maxFeatures int
	tfidf       bool

	terms  []string
	index  map[string]int
	idf    []float64
	fitted bool
}

func newTFIDFVectorizer() *vectorizer {
	return &vectorizer{ngramMin: 1, ngramMax: 2, minDF: 2, maxDFRatio: 0.95, maxFeatures: 1000, tfidf: true}
}

func newCountVectorizer() *vectorizer {
	return &vectorizer{ngramMin: 1, ngramMax: 2, minDF: 2, maxDFRatio: 0.95, maxFeatures: 1000}
}

func newNGramVectorizer(n int) *vectorizer {
	return &vectorizer{ngramMin: n, ngramMax: n, minDF: 1, maxDFRatio: 1.0, maxFeatures: 500}
}

// ngrams expands a token slice into the configured n-gram terms.
func (v *vectorizer) ngrams(tokens []string) []string {
	var out []string
	for n := v.ngramMin; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// fit builds the vocabulary over a corpus: document-frequency pruning,
// frequency-capped feature selection, alphabetical term order, smoothed
// idf weights.
func (v *vectorizer) fit(docs [][]string) error {
	df := make(map[string]int)
	tf := make(map[string]int)

	for _, tokens := range docs {
		seen := make(map[string]struct{})
		for _, term := range v.ngrams(tokens) {
			tf[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	maxDF := int(math.Floor(v.maxDFRatio * float64(len(docs))))
	if v.maxDFRatio >= 1.0 {
		maxDF = len(docs)
	}

	kept := make([]string, 0, len(df))
	for term, count := range df {
		if count >= v.minDF && count <= maxDF {
			kept = append(kept, term)
		}
	}
	if len(kept) == 0 {
		return ErrEmptyVocabulary
	}

	if len(kept) > v.maxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if tf[kept[i]] != tf[kept[j]] {
				return tf[kept[i]] > tf[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:v.maxFeatures]
	}
	sort.Strings(kept)

	v.terms = kept
	v.index = make(map[string]int, len(kept))
	for i, term := range kept {
		v.index[term] = i
	}

	v.idf = make([]float64, len(kept))
	n := float64(len(docs))
	for i, term := range kept {
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	v.fitted = true
	return nil
}

// transform maps documents into the fitted term space. Unknown terms are
// ignored, exactly like querying a fixed vocabulary.
func (v *vectorizer) transform(docs [][]string) *mat.Dense {
	m := mat.NewDense(len(docs), len(v.terms), nil)

	for row, tokens := range docs {
		for _, term := range v.ngrams(tokens) {
			if col, ok := v.index[term]; ok {
				m.Set(row, col, m.At(row, col)+1)
			}
		}
		if !v.tfidf {
			continue
		}
		var norm float64
		for col := range v.terms {
			weighted := m.At(row, col) * v.idf[col]
			m.Set(row, col, weighted)
			norm += weighted * weighted
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for col := range v.terms {
				m.Set(row, col, m.At(row, col)/norm)
			}
		}
	}
	return m
}

func (v *vectorizer) fitTransform(docs [][]string) (*mat.Dense, error) {
	if err := v.fit(docs); err != nil {
		return nil, err
	}
	return v.transform(docs), nil
}

// columnSums totals each term column of a document-term matrix.
func columnSums(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	sums := make([]float64, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sums[c] += m.At(r, c)
		}
	}
	return sums
}
