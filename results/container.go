// Package results bundles the outputs of a finished feature-selection
// pipeline run into one immutable container for inspection, reporting and
// persistence.
package results

import (
	"context"

	"github.com/omicsgo/featselect/cv"
	"github.com/omicsgo/featselect/evaluation"
	"github.com/omicsgo/featselect/geneset"
	"github.com/omicsgo/featselect/importance"
	"github.com/omicsgo/featselect/pkg/errors"
)

// Selection records which method won and under what criterion.
type Selection struct {
	Method    string
	Criterion string // e.g. "mean_cv_score"
}

// MethodMetrics is one method's row in a test-metrics table.
type MethodMetrics struct {
	Method string
	Values map[string]float64 // metric name -> value
}

// TestMetrics is the tagged test-evaluation variant. Exactly two cases
// exist: a single MetricsTable, or per-split tables (SplitMetrics). A
// container built without test metrics reports them as absent rather than
// holding an empty table, so "not computed" stays distinguishable from
// "computed, empty".
type TestMetrics interface {
	testMetrics()
}

// MetricsTable is test metrics evaluated once over the full held-out set.
type MetricsTable struct {
	Rows []MethodMetrics
}

func (MetricsTable) testMetrics() {}

// SplitMetrics is test metrics evaluated per split, one table per split.
type SplitMetrics struct {
	Splits []MetricsTable
}

func (SplitMetrics) testMetrics() {}

// PipelineResults aggregates a run's outputs: the best-method selection, the
// raw per-fold CV results, both importance collections, the ranked score
// records and (optionally) test metrics. Constructed once and never
// mutated; downstream changes produce a new container.
type PipelineResults struct {
	selection   Selection
	cvResults   map[string]cv.MethodResult
	tables      *importance.Tables
	scores      []evaluation.MethodScore
	testMetrics TestMetrics
}

// New builds a container from the finished pipeline outputs. testMetrics may
// be nil when test evaluation has not run. Inputs are copied, so later
// mutation by the caller cannot leak in.
func New(
	selection Selection,
	cvResults map[string]cv.MethodResult,
	tables *importance.Tables,
	scores []evaluation.MethodScore,
	testMetrics TestMetrics,
) (*PipelineResults, error) {
	if tables == nil {
		return nil, errors.NewValidationError("tables", "importance tables are required", nil)
	}
	if len(scores) == 0 {
		return nil, errors.NewEmptyInputError("results.New", "scores")
	}

	cvCopy := make(map[string]cv.MethodResult, len(cvResults))
	for method, r := range cvResults {
		cvCopy[method] = cloneMethodResult(r)
	}

	scoresCopy := make([]evaluation.MethodScore, len(scores))
	copy(scoresCopy, scores)

	return &PipelineResults{
		selection:   selection,
		cvResults:   cvCopy,
		tables:      importance.FromSnapshot(tables.Snapshot()),
		scores:      scoresCopy,
		testMetrics: cloneTestMetrics(testMetrics),
	}, nil
}

// Selection returns the best-method selection.
func (p *PipelineResults) Selection() Selection {
	return p.selection
}

// Scores returns a copy of the ranked per-method score records.
func (p *PipelineResults) Scores() []evaluation.MethodScore {
	out := make([]evaluation.MethodScore, len(p.scores))
	copy(out, p.scores)
	return out
}

// CVResult returns a copy of one method's raw fold results.
func (p *PipelineResults) CVResult(method string) (cv.MethodResult, error) {
	r, ok := p.cvResults[method]
	if !ok {
		return cv.MethodResult{}, errors.NewMethodNotFoundError(method, "")
	}
	return cloneMethodResult(r), nil
}

// CVResults returns a copy of all raw fold results keyed by method.
func (p *PipelineResults) CVResults() map[string]cv.MethodResult {
	out := make(map[string]cv.MethodResult, len(p.cvResults))
	for method, r := range p.cvResults {
		out[method] = cloneMethodResult(r)
	}
	return out
}

// Importances returns the aggregated importance tables. The tables are
// read-only and hand out record copies, so sharing them is safe.
func (p *PipelineResults) Importances() *importance.Tables {
	return p.tables
}

// TestMetrics returns a copy of the test metrics and whether test
// evaluation ran.
func (p *PipelineResults) TestMetrics() (TestMetrics, bool) {
	if p.testMetrics == nil {
		return nil, false
	}
	return cloneTestMetrics(p.testMetrics), true
}

// TopGeneLists derives each method's top-n selected genes of the given kind
// and translates them into aligned three-namespace gene lists, ready for
// overlap analysis via geneset.ComputeOverlap.
func (p *PipelineResults) TopGeneLists(ctx context.Context, kind importance.Kind, n int, translator geneset.Translator) (map[string]geneset.GeneList, error) {
	methods := p.tables.Methods(kind)
	if len(methods) == 0 {
		return nil, errors.NewEmptyInputError("TopGeneLists", string(kind))
	}

	lists := make(map[string]geneset.GeneList, len(methods))
	for _, method := range methods {
		symbols, err := p.tables.TopFeatures(method, kind, n)
		if err != nil {
			return nil, err
		}
		gl, err := geneset.BuildGeneList(ctx, symbols, translator)
		if err != nil {
			return nil, errors.Wrapf(err, "building gene list for method %q", method)
		}
		lists[method] = gl
	}
	return lists, nil
}

func cloneMethodResult(r cv.MethodResult) cv.MethodResult {
	out := cv.MethodResult{
		Method: r.Method,
		Folds:  make([]cv.FoldResult, len(r.Folds)),
	}
	for i, f := range r.Folds {
		out.Folds[i] = cv.FoldResult{
			Score:            f.Score,
			Importances:      cloneFoldValues(f.Importances),
			PermImportances:  cloneFoldValues(f.PermImportances),
			SelectedFeatures: append([]string(nil), f.SelectedFeatures...),
		}
	}
	return out
}

// cloneTestMetrics deep-copies either variant so the inner metric maps never
// alias caller memory. Preserves nilness so gob round trips stay exact.
func cloneTestMetrics(m TestMetrics) TestMetrics {
	switch v := m.(type) {
	case MetricsTable:
		return cloneMetricsTable(v)
	case SplitMetrics:
		if v.Splits == nil {
			return SplitMetrics{}
		}
		out := SplitMetrics{Splits: make([]MetricsTable, len(v.Splits))}
		for i, split := range v.Splits {
			out.Splits[i] = cloneMetricsTable(split)
		}
		return out
	default:
		return m
	}
}

func cloneMetricsTable(t MetricsTable) MetricsTable {
	if t.Rows == nil {
		return MetricsTable{}
	}
	out := MetricsTable{Rows: make([]MethodMetrics, len(t.Rows))}
	for i, row := range t.Rows {
		out.Rows[i] = MethodMetrics{Method: row.Method}
		if row.Values != nil {
			out.Rows[i].Values = make(map[string]float64, len(row.Values))
			for name, v := range row.Values {
				out.Rows[i].Values[name] = v
			}
		}
	}
	return out
}

func cloneFoldValues(fv importance.FoldValues) importance.FoldValues {
	if fv == nil {
		return nil
	}
	out := make(importance.FoldValues, len(fv))
	for feature, v := range fv {
		out[feature] = v
	}
	return out
}
