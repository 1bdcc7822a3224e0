package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/omicsgo/featselect/geneset"
	"github.com/omicsgo/featselect/importance"
	"github.com/omicsgo/featselect/pkg/errors"
	"github.com/omicsgo/featselect/results"
)

// WriteSummary writes a plain-text digest of a pipeline run: the ranked
// score table, each method's top features and, when supplied, the overlap
// matrix. overlap may be nil.
func WriteSummary(w io.Writer, container *results.PipelineResults, overlap *geneset.OverlapMatrix, topN int) error {
	if container == nil {
		return errors.NewValidationError("container", "pipeline results are required", nil)
	}
	if topN <= 0 {
		return errors.NewValidationError("topN", "must be positive", topN)
	}

	selection := container.Selection()
	fmt.Fprintf(w, "Best method: %s (criterion: %s)\n\n", selection.Method, selection.Criterion)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tmethod\tmean\tstd")
	for _, rec := range container.Scores() {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\n", rec.Rank, rec.Method, rec.MeanScore, rec.StdScore)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "writing score table")
	}

	tables := container.Importances()
	for _, kind := range []importance.Kind{importance.ModelNative, importance.Permutation} {
		methods := tables.Methods(kind)
		if len(methods) == 0 {
			continue
		}
		fmt.Fprintf(w, "\nTop %d features (%s):\n", topN, kind)
		for _, method := range methods {
			features, err := tables.TopFeatures(method, kind, topN)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s:", method)
			for _, f := range features {
				fmt.Fprintf(w, " %s", f)
			}
			fmt.Fprintln(w)
		}
	}

	if overlap != nil {
		fmt.Fprintf(w, "\nGene-list overlap (%s):\n", overlap.Coefficient())
		methods := overlap.Methods()
		otw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprint(otw, "\t")
		for _, m := range methods {
			fmt.Fprintf(otw, "%s\t", m)
		}
		fmt.Fprintln(otw)
		for _, a := range methods {
			fmt.Fprintf(otw, "%s\t", a)
			for _, b := range methods {
				v, err := overlap.At(a, b)
				if err != nil {
					return err
				}
				fmt.Fprintf(otw, "%.3f\t", v)
			}
			fmt.Fprintln(otw)
		}
		if err := otw.Flush(); err != nil {
			return errors.Wrap(err, "writing overlap table")
		}
	}

	if metrics, ok := container.TestMetrics(); ok {
		fmt.Fprintln(w, "\nTest metrics:")
		switch m := metrics.(type) {
		case results.MetricsTable:
			writeMetricsTable(w, m, "")
		case results.SplitMetrics:
			for i, split := range m.Splits {
				fmt.Fprintf(w, "  split %d:\n", i)
				writeMetricsTable(w, split, "  ")
			}
		}
	} else {
		fmt.Fprintln(w, "\nTest metrics: not computed")
	}

	return nil
}

func writeMetricsTable(w io.Writer, table results.MetricsTable, indent string) {
	for _, row := range table.Rows {
		fmt.Fprintf(w, "%s  %s:", indent, row.Method)
		for name, v := range row.Values {
			fmt.Fprintf(w, " %s=%.4f", name, v)
		}
		fmt.Fprintln(w)
	}
}
