// Package cv models cross-validation folds and the raw per-fold outputs of
// external feature-selection training.
package cv

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/omicsgo/featselect/importance"
)

// FoldResult is everything one training fold produced for one method: the
// evaluation score, the model-native feature importances, optionally the
// permutation importances (nil when that pass was not run) and the feature
// set the fold actually retained.
type FoldResult struct {
	Score            float64
	Importances      importance.FoldValues
	PermImportances  importance.FoldValues
	SelectedFeatures []string
}

// MethodResult is one method's finished, fold-ordered results. All folds
// must be present before the method is aggregated.
type MethodResult struct {
	Method string
	Folds  []FoldResult
}

// Scores returns the per-fold scores in fold order.
func (r MethodResult) Scores() []float64 {
	scores := make([]float64, len(r.Folds))
	for i, f := range r.Folds {
		scores[i] = f.Score
	}
	return scores
}

// ImportanceFolds returns the per-fold model-native importance maps in fold
// order.
func (r MethodResult) ImportanceFolds() []importance.FoldValues {
	folds := make([]importance.FoldValues, len(r.Folds))
	for i, f := range r.Folds {
		folds[i] = f.Importances
	}
	return folds
}

// PermImportanceFolds returns the per-fold permutation importance maps in
// fold order, or nil when no fold ran a permutation pass.
func (r MethodResult) PermImportanceFolds() []importance.FoldValues {
	any := false
	folds := make([]importance.FoldValues, len(r.Folds))
	for i, f := range r.Folds {
		folds[i] = f.PermImportances
		if f.PermImportances != nil {
			any = true
		}
	}
	if !any {
		return nil
	}
	return folds
}

// Runner is the handle to the external training/grid-search collaborator.
// It is passed in explicitly wherever training is needed; this library never
// reaches for process-wide state. Implementations may parallelize fold
// training internally but must return folds in splitter order.
type Runner interface {
	Run(ctx context.Context, method string, X, y mat.Matrix, folds []Fold) (MethodResult, error)
}
