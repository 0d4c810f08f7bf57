package woods

import "testing"

// TestRuleMeanTrivial is scenario A of spec §8: a two-row, one-feature
// dataset under the Mean strategy has an exact, strategy-independent
// optimum.
func TestRuleMeanTrivial(t *testing.T) {
	columns := Columns{{0, 1}}
	target := []float64{0, 10}
	view := newRootView(2)

	split := fitRule(columns, target, view, StrategyMean, 1, 0)

	if split.Feature != 0 {
		t.Fatalf("feature = %d, want 0", split.Feature)
	}
	if split.Threshold != 0.5 {
		t.Fatalf("threshold = %v, want 0.5", split.Threshold)
	}
	if split.Values[0] != 0 || split.Values[1] != 10 {
		t.Fatalf("values = %v, want [0 10]", split.Values)
	}
	if split.Impurity != 0 {
		t.Fatalf("impurity = %v, want 0", split.Impurity)
	}

	for row, want := range []float64{0, 10} {
		if got := split.PredictPoint(columns, row); got != want {
			t.Fatalf("PredictPoint(%d) = %v, want %v", row, got, want)
		}
	}
}

// TestRuleUniformTwoFeatures is scenario B of spec §8: feature 1 is
// constant (every row goes left with mean 0.5, the right side is empty
// with mean 0, impurity 1.0); feature 0
// can reach impurity 0. The rule need not find the optimum under
// Uniform, but it must never settle for worse than the constant
// feature's baseline.
func TestRuleUniformTwoFeatures(t *testing.T) {
	columns := Columns{
		{0, 1, 2, 3},
		{5, 5, 5, 5},
	}
	target := []float64{0, 0, 1, 1}
	view := newRootView(4)

	split := fitRule(columns, target, view, StrategyUniform, 1, 42)

	const baseline = 1.0
	if split.Impurity > baseline+1e-9 {
		t.Fatalf("impurity = %v, want <= baseline %v", split.Impurity, baseline)
	}
}

// TestRuleConstantColumnCollapsesToMidpoint exercises §4.4's
// single-row/constant-column edge case: m == M, so every strategy
// collapses to theta = m, one side carries every row, and impurity is
// 0.
func TestRuleConstantColumnCollapsesToMidpoint(t *testing.T) {
	columns := Columns{{4, 4, 4}}
	target := []float64{1, 2, 3}
	view := newRootView(3)

	split := fitRule(columns, target, view, StrategyUniform, 1, 0)

	if split.Threshold != 4 {
		t.Fatalf("threshold = %v, want 4", split.Threshold)
	}
	if split.Impurity != 0 {
		t.Fatalf("impurity = %v, want 0", split.Impurity)
	}
}

func TestSplitPartitionPreservesOrder(t *testing.T) {
	columns := Columns{{3, 1, 4, 1, 5}}
	split := Split{Feature: 0, Threshold: 2}
	view := newRootView(5)

	left, right := split.Partition(view, columns)

	wantLeft := []int{1, 3}
	wantRight := []int{0, 2, 4}

	if !intSliceEqual(left.rows(), wantLeft) {
		t.Fatalf("left = %v, want %v", left.rows(), wantLeft)
	}
	if !intSliceEqual(right.rows(), wantRight) {
		t.Fatalf("right = %v, want %v", right.rows(), wantRight)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
