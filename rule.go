package woods

import "math/rand"

// Split is the record produced by fitting a single decision rule: the
// winning feature/threshold pair, the combined impurity it achieves,
// and the two side means that serve as leaf predictions.
type Split struct {
	Feature   int
	Threshold float64
	Impurity  float64
	// Values holds the side means, side-indexed: Values[0] is the
	// left-side (c[feature] <= threshold) mean, Values[1] the right.
	Values [2]float64
}

// PredictPoint evaluates the split on one row of a column view.
func (s Split) PredictPoint(columns Columns, row int) float64 {
	if columns[s.Feature][row] <= s.Threshold {
		return s.Values[0]
	}
	return s.Values[1]
}

// Partition splits view into left/right index views by this split's
// test, preserving row order on each side.
func (s Split) Partition(view indexView, columns Columns) (left, right indexView) {
	return partitionRows(view.rows(), columns[s.Feature], s.Threshold)
}

// fitRule implements spec §4.4: for each feature, draw candidate
// thresholds under strategy and keep the lowest-impurity one (ties
// keep the earliest candidate); then keep the lowest-impurity feature
// (ties keep the earliest feature index). splitIterations is the
// configured split_iterations (§6); it is honored by Uniform and
// TruncatedNormal only (see thresholdSampler.iterations).
//
// view must be non-empty; the caller (the tree builder) is
// responsible for never invoking this on an empty subset.
func fitRule(columns Columns, target []float64, view indexView, strategy Strategy, splitIterations int, seed uint32) Split {
	idx := view.rows()
	rng := rand.New(rand.NewSource(int64(seed)))

	var best Split
	haveBest := false

	for feature, column := range columns {
		values := make([]float64, len(idx))
		for i, r := range idx {
			values[i] = column[r]
		}

		sampler := newThresholdSampler(strategy, rng, values, splitIterations)
		k := sampler.iterations()
		if k <= 0 {
			// Single-row subset (or, degenerately, an empty Best
			// sweep): collapse to the constant-column rule of §4.4 —
			// one candidate at the column's own value.
			k = 1
		}

		var featureBest Split
		featureHave := false
		for t := 0; t < k; t++ {
			threshold := sampler.threshold(t)
			muL, vL, muR, vR := partialImpurity(column, target, idx, threshold)
			impurity := vL + vR
			if !featureHave || impurity < featureBest.Impurity {
				featureBest = Split{
					Feature:   feature,
					Threshold: threshold,
					Impurity:  impurity,
					Values:    [2]float64{muL, muR},
				}
				featureHave = true
			}
		}

		if !haveBest || featureBest.Impurity < best.Impurity {
			best = featureBest
			haveBest = true
		}
	}

	return best
}
