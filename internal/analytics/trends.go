// Package analytics computes time-series trends, anomalies, segmentation
// and key-driver prioritization over a scored review corpus. Every
// function is stateless; results are recomputed fresh per call.
package analytics

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// DefaultAnomalyThreshold is the |z| cutoff for flagging a trend bucket.
const DefaultAnomalyThreshold = 2.0

const movingAvgWindow = 3

// Trends buckets the corpus at the given frequency and computes per-bucket
// sentiment statistics, a trailing 3-period moving average, and
// period-over-period changes. Reviews without a date are skipped. Buckets
// are returned ascending by time; the first bucket has nil Change.
func Trends(scored []models.ScoredReview, freq models.Frequency) []models.TrendPoint {
	type bucket struct {
		start     time.Time
		compounds []float64
		positives int
	}
	buckets := make(map[time.Time]*bucket)

	for _, r := range scored {
		if r.Date == nil || r.Date.IsZero() {
			continue
		}
		start := freq.Truncate(r.Date.Time)
		b := buckets[start]
		if b == nil {
			b = &bucket{start: start}
			buckets[start] = b
		}
		b.compounds = append(b.compounds, r.Compound)
		if r.Label == models.LabelPositive {
			b.positives++
		}
	}
	if len(buckets) == 0 {
		return nil
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].start.Before(ordered[j].start) })

	points := make([]models.TrendPoint, len(ordered))
	for i, b := range ordered {
		points[i] = models.TrendPoint{
			Period:       freq.Label(b.start),
			AvgSentiment: round3(stat.Mean(b.compounds, nil)),
			StdSentiment: round3(sampleStd(b.compounds)),
			ReviewCount:  len(b.compounds),
			PositivePct:  round2(float64(b.positives) / float64(len(b.compounds)) * 100),
			AnomalyType:  models.AnomalyNormal,
		}
	}

	for i := range points {
		window := points[max(0, i-movingAvgWindow+1) : i+1]
		var sum float64
		for _, p := range window {
			sum += p.AvgSentiment
		}
		points[i].MovingAvg = round3(sum / float64(len(window)))

		if i > 0 {
			change := round3(points[i].AvgSentiment - points[i-1].AvgSentiment)
			points[i].Change = &change
			// Signed baseline: a recovery from a negative period reads as
			// a negative percent change, matching pct_change semantics.
			if prev := points[i-1].AvgSentiment; prev != 0 {
				pct := round1((points[i].AvgSentiment - prev) / prev * 100)
				points[i].ChangePct = &pct
			}
		}
	}
	return points
}

// DetectAnomalies recomputes the trend series and z-scores every bucket
// against the mean and standard deviation of the whole series. Buckets
// with |z| above the threshold are flagged as spikes. A flat series (zero
// std) flags nothing.
func DetectAnomalies(scored []models.ScoredReview, freq models.Frequency, threshold float64) []models.TrendPoint {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}
	points := Trends(scored, freq)
	if len(points) == 0 {
		return points
	}

	avgs := make([]float64, len(points))
	for i, p := range points {
		avgs[i] = p.AvgSentiment
	}
	mean := stat.Mean(avgs, nil)
	std := sampleStd(avgs)

	for i := range points {
		if std == 0 {
			points[i].ZScore = 0
			points[i].AnomalyType = models.AnomalyNormal
			continue
		}
		z := round2((points[i].AvgSentiment - mean) / std)
		points[i].ZScore = z
		switch {
		case z > threshold:
			points[i].IsAnomaly = true
			points[i].AnomalyType = models.AnomalyPositiveSpike
		case z < -threshold:
			points[i].IsAnomaly = true
			points[i].AnomalyType = models.AnomalyNegativeSpike
		default:
			points[i].AnomalyType = models.AnomalyNormal
		}
	}
	return points
}

func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
