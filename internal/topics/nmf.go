package topics

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	nmfIterations = 200
	nmfEpsilon    = 1e-10
	modelSeed     = 42
)

// nmf factorizes a non-negative document-term matrix V (n x m) into
// document-topic weights W (n x k) and topic-term components H (k x m)
// using multiplicative updates on the Frobenius objective. Deterministic
// via a fixed seed.
func nmf(v *mat.Dense, k, iterations int) (w, h *mat.Dense) {
	n, m := v.Dims()
	rng := rand.New(rand.NewSource(modelSeed))

	// Scaled uniform init keeps W*H near V's magnitude at iteration zero.
	scale := math.Sqrt(matrixMean(v)/float64(k)) + nmfEpsilon
	w = randomDense(n, k, scale, rng)
	h = randomDense(k, m, scale, rng)

	// One receiver per product shape: gonum's Mul panics on a non-empty
	// receiver whose dimensions do not match the result.
	var (
		wt, ht     mat.Dense
		hNum, hDen mat.Dense
		wNum, wDen mat.Dense
		wh         mat.Dense
	)

	for iter := 0; iter < iterations; iter++ {
		// H <- H .* (Wt V) ./ (Wt W H)
		wt.CloneFrom(w.T())
		hNum.Mul(&wt, v)
		wh.Mul(w, h)
		hDen.Mul(&wt, &wh)
		updateFactor(h, &hNum, &hDen)

		// W <- W .* (V Ht) ./ (W H Ht)
		ht.CloneFrom(h.T())
		wNum.Mul(v, &ht)
		wh.Mul(w, h)
		wDen.Mul(&wh, &ht)
		updateFactor(w, &wNum, &wDen)
	}
	return w, h
}

// updateFactor applies f <- f .* num ./ (den + eps) in place.
func updateFactor(f, num, den *mat.Dense) {
	rows, cols := f.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.Set(r, c, f.At(r, c)*num.At(r, c)/(den.At(r, c)+nmfEpsilon))
		}
	}
}

// transformNMF projects new rows into an existing component space by
// running the W update alone with H held fixed.
func transformNMF(v *mat.Dense, h *mat.Dense, iterations int) *mat.Dense {
	n, _ := v.Dims()
	k, _ := h.Dims()
	rng := rand.New(rand.NewSource(modelSeed))

	scale := math.Sqrt(matrixMean(v)/float64(k)) + nmfEpsilon
	w := randomDense(n, k, scale, rng)

	var ht, num, den, wh mat.Dense
	ht.CloneFrom(h.T())
	for iter := 0; iter < iterations; iter++ {
		num.Mul(v, &ht)
		wh.Mul(w, h)
		den.Mul(&wh, &ht)
		updateFactor(w, &num, &den)
	}
	return w
}

func randomDense(rows, cols int, scale float64, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64() * scale
	}
	return mat.NewDense(rows, cols, data)
}

func matrixMean(m *mat.Dense) float64 {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return 0
	}
	var sum float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sum += m.At(r, c)
		}
	}
	return sum / float64(rows*cols)
}
