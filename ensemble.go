package woods

import "math/rand"

// ensembleState is the fitted form of a gradient-boosted ensemble
// (spec §3, §4.6): a mean offset plus an ordered sequence of
// fixed-depth trees, each fit to the running residual.
type ensembleState struct {
	depth        int
	strategy     Strategy
	splitIts     int
	learningRate float64
	iterations   int

	mean0 float64
	trees []*flatTree
}

// fit implements spec §4.6: start the residual at target - mean(target),
// then for iterations rounds train a fresh depth-tree on the residual,
// subtract learning_rate * that tree's in-sample prediction from the
// residual, and append the tree. iterations == 0 is allowed and leaves
// the ensemble as the bare mean (spec §8 invariant 6).
func (e *ensembleState) fit(columns Columns, target []float64, seed uint32) {
	n := len(target)
	e.mean0 = meanOf(target)

	residual := make([]float64, n)
	for i, v := range target {
		residual[i] = v - e.mean0
	}

	master := rand.New(rand.NewSource(int64(seed)))
	trees := make([]*flatTree, 0, e.iterations)

	for round := 0; round < e.iterations; round++ {
		treeSeed := master.Uint32()

		tree := newFlatTree(e.depth, e.strategy, e.splitIts)
		tree.fit(columns, residual, treeSeed)

		pred := tree.predict(columns, n)
		for i := range residual {
			residual[i] -= e.learningRate * pred[i]
		}

		trees = append(trees, tree)
	}

	e.trees = trees
}

// predict implements spec §4.6: p[i] = mean0 + learning_rate * sum_k T_k(x_i).
func (e *ensembleState) predict(columns Columns, nSamples int) []float64 {
	out := make([]float64, nSamples)
	for i := range out {
		out[i] = e.mean0
	}
	for _, tree := range e.trees {
		pred := tree.predict(columns, nSamples)
		for i, v := range pred {
			out[i] += e.learningRate * v
		}
	}
	return out
}

// meanOf returns the arithmetic mean of values; it is the µ0 seed of
// the boosting loop, not the host-exposed scalar-mean utility named
// out of scope in spec §1.
func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
