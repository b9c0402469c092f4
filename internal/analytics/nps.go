package analytics

import "github.com/spacesedan/reviewpulse/internal/models"

// NPS segmentation cutoffs on the compound score.
const (
	promoterThreshold  = 0.5
	detractorThreshold = -0.2
)

// NPSProxy segments the corpus into promoters, passives and detractors by
// compound score and derives a Net-Promoter-style score in [-100, 100].
// An empty corpus yields all zeros.
func NPSProxy(scored []models.ScoredReview) models.NPSProxy {
	total := len(scored)
	if total == 0 {
		return models.NPSProxy{}
	}

	var promoters, detractors int
	for _, r := range scored {
		switch {
		case r.Compound >= promoterThreshold:
			promoters++
		case r.Compound <= detractorThreshold:
			detractors++
		}
	}
	passives := total - promoters - detractors

	return models.NPSProxy{
		Score:         round1(float64(promoters-detractors) / float64(total) * 100),
		Promoters:     promoters,
		PromotersPct:  round1(float64(promoters) / float64(total) * 100),
		Passives:      passives,
		PassivesPct:   round1(float64(passives) / float64(total) * 100),
		Detractors:    detractors,
		DetractorsPct: round1(float64(detractors) / float64(total) * 100),
		Total:         total,
	}
}
