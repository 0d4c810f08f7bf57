package woods

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Columns is the per-feature contiguous-column view of a training
// matrix: Columns[j][i] is the value of feature j on row i.
type Columns [][]float64

// dataset is the ingested, column-major form of a training call's
// (X, y) pair. It is immutable once built.
type dataset struct {
	columns   Columns
	target    []float64
	nSamples  int
	nFeatures int
}

// ingestTrain validates and transposes a row-major (X, y) pair into a
// dataset. X and y are *mat.Dense because gonum stores Dense values
// row-major internally, which matches the byte-layout contract of
// spec §6 exactly.
func ingestTrain(x, y *mat.Dense) (*dataset, error) {
	if x == nil || y == nil {
		return nil, errors.Wrap(ErrShape, "x and y must be non-nil")
	}
	nSamples, nFeatures := x.Dims()
	yRows, yCols := y.Dims()
	if yCols != 1 {
		return nil, errors.Wrapf(ErrShape, "y must have exactly one column, got %d", yCols)
	}
	if nSamples != yRows {
		return nil, errors.Wrapf(ErrShape, "x has %d rows but y has %d", nSamples, yRows)
	}
	if nSamples == 0 || nFeatures == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "x shape is (%d, %d)", nSamples, nFeatures)
	}

	target := make([]float64, nSamples)
	for r := 0; r < nSamples; r++ {
		target[r] = y.At(r, 0)
	}

	return &dataset{
		columns:   columnsFromDense(x, nSamples, nFeatures),
		target:    target,
		nSamples:  nSamples,
		nFeatures: nFeatures,
	}, nil
}

// ingestPredict transposes a prediction-time matrix, requiring it to
// carry the same feature count the estimator was fitted on.
func ingestPredict(x *mat.Dense, nFeatures int) (Columns, int, error) {
	if x == nil {
		return nil, 0, errors.Wrap(ErrShape, "x must be non-nil")
	}
	nSamples, cols := x.Dims()
	if cols != nFeatures {
		return nil, 0, errors.Wrapf(ErrShape, "x has %d features, estimator was fitted on %d", cols, nFeatures)
	}
	if nSamples == 0 {
		return nil, 0, errors.Wrap(ErrEmptyInput, "x has zero rows")
	}
	return columnsFromDense(x, nSamples, nFeatures), nSamples, nil
}

// columnsFromDense places X[r][c] into columns[c][r]. This is the
// arithmetic the spec mandates for the row-major -> column-major
// rearrangement: for row r and column c, columns[c][r] == X[r][c],
// regardless of how X happens to be laid out in memory underneath
// mat.Dense.
func columnsFromDense(x *mat.Dense, nSamples, nFeatures int) Columns {
	columns := make(Columns, nFeatures)
	for c := range columns {
		columns[c] = make([]float64, nSamples)
	}
	for r := 0; r < nSamples; r++ {
		for c := 0; c < nFeatures; c++ {
			columns[c][r] = x.At(r, c)
		}
	}
	return columns
}
