// Package aspects attributes review sentences to predefined e-commerce
// aspects and scores the sentiment of each aspect separately, answering
// why customers feel the way they do.
package aspects

import (
	"math"
	"regexp"
	"strings"

	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/sentiment"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Analyzer holds the immutable aspect configuration for one industry plus
// the sentiment scorer. Safe for concurrent use after construction.
type Analyzer struct {
	industry Industry
	defs     []Definition
	scorer   *sentiment.Analyzer
}

// NewAnalyzer builds an analyzer for the given industry. The base aspect
// set is always active; unknown industries get only the base set.
func NewAnalyzer(industry Industry, scorer *sentiment.Analyzer) *Analyzer {
	if scorer == nil {
		scorer = sentiment.NewAnalyzer()
	}
	return &Analyzer{
		industry: industry,
		defs:     definitionsFor(industry),
		scorer:   scorer,
	}
}

// Industry reports the configured industry.
func (a *Analyzer) Industry() Industry { return a.industry }

// AspectLabels maps every active aspect key to its display label.
func (a *Analyzer) AspectLabels() map[string]string {
	labels := make(map[string]string, len(a.defs))
	for _, def := range a.defs {
		labels[def.Key] = def.Label
	}
	return labels
}

// splitSentences splits on sentence-ending punctuation runs, trimming and
// dropping empties.
func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// findMentions attributes whole sentences to aspects. A sentence can hit
// several aspects but is attributed at most once per aspect.
func (a *Analyzer) findMentions(text string) map[string][]string {
	sentences := splitSentences(text)
	mentions := make(map[string][]string)

	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, def := range a.defs {
			for _, keyword := range def.Keywords {
				if strings.Contains(lower, keyword) {
					mentions[def.Key] = append(mentions[def.Key], s)
					break
				}
			}
		}
	}
	return mentions
}

// Analyze scores every aspect mentioned in the text. The aspect score is a
// single run over the joined attributed sentences, not an average of
// per-sentence scores.
func (a *Analyzer) Analyze(text string) models.AspectAnalysis {
	analysis := models.AspectAnalysis{Aspects: map[string]models.AspectMention{}}
	if text == "" {
		return analysis
	}

	labels := a.AspectLabels()
	for key, sentences := range a.findMentions(text) {
		joined := strings.Join(sentences, " ")
		result := a.scorer.Score(joined)
		label, _ := sentiment.Classify(result.Compound)

		analysis.Aspects[key] = models.AspectMention{
			AspectKey:     key,
			Label:         labels[key],
			Sentiment:     label,
			CompoundScore: round3(result.Compound),
			Mentions:      len(sentences),
			SampleText:    sentences[0],
		}
	}

	analysis.Summary = summarize(analysis.Aspects)
	analysis.TotalAspectsMentioned = len(analysis.Aspects)
	return analysis
}

// summarize rolls the per-review aspect mentions up into counts and the
// most polarized aspects.
func summarize(aspects map[string]models.AspectMention) models.AspectReviewSummary {
	var summary models.AspectReviewSummary
	if len(aspects) == 0 {
		return summary
	}

	var sum float64
	bestScore, worstScore := math.Inf(-1), math.Inf(1)
	for key, m := range aspects {
		sum += m.CompoundScore
		switch m.Sentiment {
		case models.LabelPositive:
			summary.PositiveAspects++
		case models.LabelNegative:
			summary.NegativeAspects++
		default:
			summary.NeutralAspects++
		}
		if m.CompoundScore > bestScore {
			bestScore, summary.MostPositive = m.CompoundScore, key
		}
		if m.CompoundScore < worstScore {
			worstScore, summary.MostNegative = m.CompoundScore, key
		}
	}
	summary.AverageScore = round3(sum / float64(len(aspects)))
	return summary
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
