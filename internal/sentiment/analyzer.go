package sentiment

import (
	"math"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Classification thresholds on the compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Analyzer scores review text with VADER extended by the e-commerce
// lexicon. The merged lexicon is built once at construction and never
// mutated afterwards, so a shared Analyzer is safe for concurrent reads.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer builds an analyzer with the domain overrides installed into
// its own lexicon copy.
func NewAnalyzer() *Analyzer {
	v := govader.NewSentimentIntensityAnalyzer()
	for term, valence := range ecommerceLexicon {
		v.Lexicon[term] = valence
	}
	return &Analyzer{vader: v}
}

// Score analyzes a single text. Empty input yields a zeroed neutral result
// rather than an error; malformed reviews are expected in production feeds.
func (a *Analyzer) Score(text string) models.SentimentResult {
	if text == "" {
		return models.SentimentResult{Label: models.LabelNeutral}
	}

	cleaned := Preprocess(text)
	if cleaned == "" {
		return models.SentimentResult{Label: models.LabelNeutral}
	}

	scores := a.vader.PolarityScores(cleaned)
	label, confidence := Classify(scores.Compound)

	return models.SentimentResult{
		Compound:   scores.Compound,
		Positive:   scores.Positive,
		Negative:   scores.Negative,
		Neutral:    scores.Neutral,
		Label:      label,
		Confidence: confidence,
	}
}

// Classify maps a compound score to its label and confidence. The neutral
// confidence decays linearly from 0.5 toward the +/-0.05 boundary; the
// formula is kept unclamped for compatibility with the historical output.
func Classify(compound float64) (models.Label, float64) {
	switch {
	case compound >= positiveThreshold:
		return models.LabelPositive, round3(math.Min(1.0, (compound-positiveThreshold)/0.95*0.5+0.5))
	case compound <= negativeThreshold:
		return models.LabelNegative, round3(math.Min(1.0, (math.Abs(compound)-positiveThreshold)/0.95*0.5+0.5))
	default:
		return models.LabelNeutral, round3(0.5 - math.Abs(compound)*5)
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
