// Package report renders pipeline results as plots and text summaries.
package report

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/omicsgo/featselect/evaluation"
	"github.com/omicsgo/featselect/geneset"
	"github.com/omicsgo/featselect/pkg/errors"
)

// ScoreBarChart renders one bar per method, in rank order, from a ranked
// score collection.
func ScoreBarChart(records []evaluation.MethodScore) (*plot.Plot, error) {
	if len(records) == 0 {
		return nil, errors.NewEmptyInputError("ScoreBarChart", "")
	}

	values := make(plotter.Values, len(records))
	names := make([]string, len(records))
	for i, rec := range records {
		values[i] = rec.MeanScore
		names[i] = rec.Method
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, errors.Wrap(err, "building score bar chart")
	}

	p := plot.New()
	p.Title.Text = "Cross-validation scores by method"
	p.Y.Label.Text = "Mean CV score"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// overlapGrid adapts an overlap matrix to the plotter heat-map interface.
type overlapGrid struct {
	sym *mat.SymDense
}

func (g overlapGrid) Dims() (c, r int)   { n := g.sym.SymmetricDim(); return n, n }
func (g overlapGrid) Z(c, r int) float64 { return g.sym.At(r, c) }
func (g overlapGrid) X(c int) float64    { return float64(c) }
func (g overlapGrid) Y(r int) float64    { return float64(r) }

// OverlapHeatMap renders the pairwise gene-list similarity matrix as a heat
// map, rows and columns in the matrix's method order.
func OverlapHeatMap(m *geneset.OverlapMatrix) (*plot.Plot, error) {
	if m == nil {
		return nil, errors.NewValidationError("m", "overlap matrix is required", nil)
	}

	grid := overlapGrid{sym: m.Sym()}
	heat := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	// Similarities are bounded; pin the color scale so plots compare
	// across runs.
	heat.Min = 0
	heat.Max = 1

	p := plot.New()
	p.Title.Text = "Gene-list overlap (" + string(m.Coefficient()) + ")"
	p.Add(heat)

	methods := m.Methods()
	p.NominalX(methods...)
	p.NominalY(methods...)
	return p, nil
}
