// Package featselect aggregates and compares the results of gene
// feature-selection pipelines run over expression data.
//
// Training and grid search happen elsewhere (an external ML runner produces
// per-fold scores and feature importances); featselect turns those raw,
// per-fold outputs into ranked per-method summaries, cross-method gene-list
// comparisons and a persistable results container.
//
// # Packages
//
//   - evaluation: per-fold cross-validation scores -> ranked MethodScore records
//   - importance: per-fold feature importances (model-native and permutation)
//     -> ranked per-method importance tables
//   - geneset: gene lists in three identifier namespaces and their pairwise
//     Jaccard / Szymkiewicz-Simpson overlap matrices
//   - results: the immutable per-run container with gob persistence
//   - cv: fold splitters and the raw fold-result model handed over by the
//     external training runner
//   - report: gonum/plot charts and text summaries of a finished run
//
// # Quick Start
//
//	scores, err := evaluation.AggregateScores(map[string][]float64{
//	    "boruta": {0.92, 0.93, 0.91},
//	    "lasso":  {0.90, 0.92, 0.89},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	best, _ := evaluation.BestMethod(scores)
//	fmt.Println("best method:", best.Method)
//
// All aggregations are pure, synchronous reductions; failures are caller
// contract violations surfaced as the typed errors in pkg/errors.
package featselect
