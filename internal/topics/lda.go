package topics

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	ldaIterations = 20
	ldaBeta       = 0.01
)

// lda runs collapsed Gibbs sampling over a count document-term matrix and
// returns document-topic proportions (n x k) and per-topic term counts
// (k x m). Deterministic via the shared model seed; alpha defaults to 1/k
// as in the common library parameterization.
func lda(counts *mat.Dense, k, iterations int) (docTopics, components *mat.Dense) {
	n, m := counts.Dims()
	alpha := 1.0 / float64(k)
	rng := rand.New(rand.NewSource(modelSeed))

	// Expand the count matrix into individual token occurrences.
	type occurrence struct{ doc, term, topic int }
	var tokens []occurrence
	for d := 0; d < n; d++ {
		for t := 0; t < m; t++ {
			for c := 0; c < int(counts.At(d, t)); c++ {
				tokens = append(tokens, occurrence{doc: d, term: t})
			}
		}
	}

	docTopicCount := mat.NewDense(n, k, nil)
	topicTermCount := mat.NewDense(k, m, nil)
	topicTotals := make([]float64, k)

	for i := range tokens {
		z := rng.Intn(k)
		tokens[i].topic = z
		docTopicCount.Set(tokens[i].doc, z, docTopicCount.At(tokens[i].doc, z)+1)
		topicTermCount.Set(z, tokens[i].term, topicTermCount.At(z, tokens[i].term)+1)
		topicTotals[z]++
	}

	weights := make([]float64, k)
	betaSum := ldaBeta * float64(m)

	for iter := 0; iter < iterations; iter++ {
		for i := range tokens {
			tok := &tokens[i]

			docTopicCount.Set(tok.doc, tok.topic, docTopicCount.At(tok.doc, tok.topic)-1)
			topicTermCount.Set(tok.topic, tok.term, topicTermCount.At(tok.topic, tok.term)-1)
			topicTotals[tok.topic]--

			var total float64
			for z := 0; z < k; z++ {
				w := (docTopicCount.At(tok.doc, z) + alpha) *
					(topicTermCount.At(z, tok.term) + ldaBeta) /
					(topicTotals[z] + betaSum)
				weights[z] = w
				total += w
			}

			target := rng.Float64() * total
			z := 0
			for ; z < k-1; z++ {
				target -= weights[z]
				if target <= 0 {
					break
				}
			}

			tok.topic = z
			docTopicCount.Set(tok.doc, z, docTopicCount.At(tok.doc, z)+1)
			topicTermCount.Set(z, tok.term, topicTermCount.At(z, tok.term)+1)
			topicTotals[z]++
		}
	}

	// Normalize document rows into topic proportions.
	docTopics = mat.NewDense(n, k, nil)
	for d := 0; d < n; d++ {
		var rowTotal float64
		for z := 0; z < k; z++ {
			rowTotal += docTopicCount.At(d, z) + alpha
		}
		for z := 0; z < k; z++ {
			docTopics.Set(d, z, (docTopicCount.At(d, z)+alpha)/rowTotal)
		}
	}
	return docTopics, topicTermCount
}

// transformLDA assigns topic proportions to new documents against fixed
// topic-term counts, a single E-step style pass per document.
func transformLDA(counts *mat.Dense, components *mat.Dense) *mat.Dense {
	n, m := counts.Dims()
	k, _ := components.Dims()

	// Per-topic term distributions with beta smoothing.
	topicTotals := make([]float64, k)
	for z := 0; z < k; z++ {
		for t := 0; t < m; t++ {
			topicTotals[z] += components.At(z, t)
		}
		topicTotals[z] += ldaBeta * float64(m)
	}

	out := mat.NewDense(n, k, nil)
	for d := 0; d < n; d++ {
		var rowTotal float64
		for z := 0; z < k; z++ {
			var score float64
			for t := 0; t < m; t++ {
				c := counts.At(d, t)
				if c == 0 {
					continue
				}
				score += c * (components.At(z, t) + ldaBeta) / topicTotals[z]
			}
			out.Set(d, z, score)
			rowTotal += score
		}
		if rowTotal > 0 {
			for z := 0; z < k; z++ {
				out.Set(d, z, out.At(d, z)/rowTotal)
			}
		}
	}
	return out
}
