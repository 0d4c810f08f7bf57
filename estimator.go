package woods

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// RuleModel is the single-split estimator of spec §4.4/§4.7: one
// decision rule, fit once and reused for every prediction.
type RuleModel struct {
	Strategy        Strategy
	SplitIterations int

	fitted    bool
	nFeatures int
	split     Split
}

// NewRuleModel builds an unfitted rule estimator. SplitIterations is
// the configured split_iterations of spec §6; it only changes the
// candidate count for Uniform/TruncatedNormal (§4.3's Mean/Median are
// single-valued, Best always sweeps exhaustively).
func NewRuleModel(strategy Strategy, splitIterations int) *RuleModel {
	return &RuleModel{Strategy: strategy, SplitIterations: splitIterations}
}

// Fit implements spec §4.4/§4.7: validate shapes, ingest (X, y) into a
// column view, and select the best (feature, threshold) over the
// whole row range. On any error the receiver is left exactly as it
// was before the call (spec §7).
func (m *RuleModel) Fit(x, y *mat.Dense, seed uint32) error {
	if m.SplitIterations <= 0 {
		return errors.Wrap(ErrParameter, "split_iterations must be positive")
	}

	ds, err := ingestTrain(x, y)
	if err != nil {
		return err
	}

	split := fitRule(ds.columns, ds.target, newRootView(ds.nSamples), m.Strategy, m.SplitIterations, seed)

	m.nFeatures = ds.nFeatures
	m.split = split
	m.fitted = true
	return nil
}

// Predict implements spec §4.7: a length-X.shape[0] vector of the
// split's side values, one per row.
func (m *RuleModel) Predict(x *mat.Dense) (*mat.Dense, error) {
	if !m.fitted {
		return nil, errors.Wrap(ErrNotFitted, "RuleModel.Predict called before Fit")
	}
	columns, nSamples, err := ingestPredict(x, m.nFeatures)
	if err != nil {
		return nil, err
	}

	out := make([]float64, nSamples)
	for r := 0; r < nSamples; r++ {
		out[r] = m.split.PredictPoint(columns, r)
	}
	return mat.NewDense(nSamples, 1, out), nil
}

// GetSplit exposes the chosen split, as required of the rule facade
// by spec §4.7.
func (m *RuleModel) GetSplit() (threshold float64, feature int) {
	return m.split.Threshold, m.split.Feature
}

// TreeModel is the recursively-grown, fixed-depth estimator of spec
// §4.5/§4.7.
type TreeModel struct {
	Depth           int
	Strategy        Strategy
	SplitIterations int

	fitted    bool
	nFeatures int
	tree      *flatTree
}

// NewTreeModel builds an unfitted tree estimator.
func NewTreeModel(depth int, strategy Strategy, splitIterations int) *TreeModel {
	return &TreeModel{Depth: depth, Strategy: strategy, SplitIterations: splitIterations}
}

// Fit implements spec §4.5/§4.7.
func (m *TreeModel) Fit(x, y *mat.Dense, seed uint32) error {
	if m.Depth <= 0 {
		return errors.Wrap(ErrParameter, "depth must be positive")
	}
	if m.SplitIterations <= 0 {
		return errors.Wrap(ErrParameter, "split_iterations must be positive")
	}

	ds, err := ingestTrain(x, y)
	if err != nil {
		return err
	}

	tree := newFlatTree(m.Depth, m.Strategy, m.SplitIterations)
	tree.fit(ds.columns, ds.target, seed)

	m.nFeatures = ds.nFeatures
	m.tree = tree
	m.fitted = true
	return nil
}

// Predict implements spec §4.5/§4.7.
func (m *TreeModel) Predict(x *mat.Dense) (*mat.Dense, error) {
	if !m.fitted {
		return nil, errors.Wrap(ErrNotFitted, "TreeModel.Predict called before Fit")
	}
	columns, nSamples, err := ingestPredict(x, m.nFeatures)
	if err != nil {
		return nil, err
	}
	out := m.tree.predict(columns, nSamples)
	return mat.NewDense(nSamples, 1, out), nil
}

// EnsembleModel is the gradient-boosted estimator of spec §4.6/§4.7.
type EnsembleModel struct {
	Depth           int
	Strategy        Strategy
	SplitIterations int
	LearningRate    float64
	Iterations      int

	fitted    bool
	nFeatures int
	ensemble  *ensembleState
}

// NewEnsembleModel builds an unfitted gradient-boosted estimator.
// Iterations may be 0 (spec §8 invariant 6: predict then returns the
// bare mean); a negative value is a ParameterError, as is a
// non-positive depth or learning rate.
func NewEnsembleModel(depth int, strategy Strategy, splitIterations int, learningRate float64, iterations int) *EnsembleModel {
	return &EnsembleModel{
		Depth:           depth,
		Strategy:        strategy,
		SplitIterations: splitIterations,
		LearningRate:    learningRate,
		Iterations:      iterations,
	}
}

// Fit implements spec §4.6/§4.7.
func (m *EnsembleModel) Fit(x, y *mat.Dense, seed uint32) error {
	if m.Depth <= 0 {
		return errors.Wrap(ErrParameter, "depth must be positive")
	}
	if m.LearningRate <= 0 {
		return errors.Wrap(ErrParameter, "learning_rate must be positive")
	}
	if m.Iterations < 0 {
		return errors.Wrap(ErrParameter, "iterations must not be negative")
	}
	if m.SplitIterations <= 0 {
		return errors.Wrap(ErrParameter, "split_iterations must be positive")
	}

	ds, err := ingestTrain(x, y)
	if err != nil {
		return err
	}

	ensemble := &ensembleState{
		depth:        m.Depth,
		strategy:     m.Strategy,
		splitIts:     m.SplitIterations,
		learningRate: m.LearningRate,
		iterations:   m.Iterations,
	}
	ensemble.fit(ds.columns, ds.target, seed)

	m.nFeatures = ds.nFeatures
	m.ensemble = ensemble
	m.fitted = true
	return nil
}

// Predict implements spec §4.6/§4.7.
func (m *EnsembleModel) Predict(x *mat.Dense) (*mat.Dense, error) {
	if !m.fitted {
		return nil, errors.Wrap(ErrNotFitted, "EnsembleModel.Predict called before Fit")
	}
	columns, nSamples, err := ingestPredict(x, m.nFeatures)
	if err != nil {
		return nil, err
	}
	out := m.ensemble.predict(columns, nSamples)
	return mat.NewDense(nSamples, 1, out), nil
}

// FirstTree exposes the first boosted tree for visualization (§4.10);
// it returns nil if the ensemble was fit with zero iterations.
func (m *EnsembleModel) FirstTree() *flatTree {
	if !m.fitted || len(m.ensemble.trees) == 0 {
		return nil
	}
	return m.ensemble.trees[0]
}

// Mean0 exposes the boosting loop's starting mean, for diagnostics.
func (m *EnsembleModel) Mean0() float64 {
	return m.ensemble.mean0
}

// Trees exposes the fitted ensemble's trees, for visualization.
func (m *EnsembleModel) Trees() []*flatTree {
	if !m.fitted {
		return nil
	}
	return m.ensemble.trees
}
