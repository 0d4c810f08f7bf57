package woods

import "testing"

// TestTreeDepth2MeanStepFunction is scenario C of spec §8.
func TestTreeDepth2MeanStepFunction(t *testing.T) {
	columns := Columns{{0, 1, 2, 3}}
	target := []float64{0, 0, 10, 10}

	tr := newFlatTree(2, StrategyMean, 1)
	tr.fit(columns, target, 0)

	got := tr.predict(columns, 4)
	want := []float64{0, 0, 10, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("predict = %v, want %v", got, want)
		}
	}
}

// TestTreeDepth1ConstantTarget is scenario D of spec §8.
func TestTreeDepth1ConstantTarget(t *testing.T) {
	columns := Columns{{0, 1, 2}}
	target := []float64{7, 7, 7}

	tr := newFlatTree(1, StrategyMean, 1)
	tr.fit(columns, target, 0)

	got := tr.predict(columns, 3)
	for i, v := range got {
		if v != 7 {
			t.Fatalf("predict[%d] = %v, want 7 (got %v)", i, v, got)
		}
	}
}

// TestTreeRoutesStructuralInvariant checks spec §8 invariant 3: every
// non-sentinel routes[i][s] is strictly greater than i.
func TestTreeRoutesStructuralInvariant(t *testing.T) {
	columns := Columns{{0, 1, 2, 3, 4, 5, 6, 7}}
	target := []float64{0, 1, 2, 3, 10, 11, 12, 13}

	tr := newFlatTree(3, StrategyUniform, 2)
	tr.fit(columns, target, 99)

	for i, pair := range tr.routes {
		for side, child := range pair {
			if child != -1 && child <= i {
				t.Fatalf("routes[%d][%d] = %d, want either -1 or > %d", i, side, child, i)
			}
		}
	}

	if len(tr.routes) != len(tr.splits) {
		t.Fatalf("len(routes) = %d, len(splits) = %d, want equal", len(tr.routes), len(tr.splits))
	}
}

// TestTreeDepth1MatchesDirectRule is spec §8 invariant 9: a depth-1
// tree's prediction equals applying the underlying rule directly.
func TestTreeDepth1MatchesDirectRule(t *testing.T) {
	columns := Columns{{5, 2, 9, 1, 7}}
	target := []float64{1, 2, 3, 4, 5}
	const seed = uint32(123)

	tr := newFlatTree(1, StrategyUniform, 1)
	tr.fit(columns, target, seed)

	split := fitRule(columns, target, newRootView(5), StrategyUniform, 1, seed)

	treePred := tr.predict(columns, 5)
	for row := 0; row < 5; row++ {
		want := split.PredictPoint(columns, row)
		if treePred[row] != want {
			t.Fatalf("row %d: tree = %v, direct rule = %v", row, treePred[row], want)
		}
	}
}

func TestTreeDeterministicAcrossFits(t *testing.T) {
	columns := Columns{{3, 1, 4, 1, 5, 9, 2, 6}}
	target := []float64{0, 1, 0, 1, 0, 1, 0, 1}

	a := newFlatTree(3, StrategyTruncatedNormal, 4)
	a.fit(columns, target, 7)

	b := newFlatTree(3, StrategyTruncatedNormal, 4)
	b.fit(columns, target, 7)

	predA := a.predict(columns, 8)
	predB := b.predict(columns, 8)
	for i := range predA {
		if predA[i] != predB[i] {
			t.Fatalf("row %d: fit #1 = %v, fit #2 = %v, want identical (determinism)", i, predA[i], predB[i])
		}
	}
}
