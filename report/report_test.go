package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicsgo/featselect/evaluation"
	"github.com/omicsgo/featselect/geneset"
	"github.com/omicsgo/featselect/importance"
	"github.com/omicsgo/featselect/pkg/errors"
	"github.com/omicsgo/featselect/results"
)

func testContainer(t *testing.T) *results.PipelineResults {
	t.Helper()

	tables, err := importance.Aggregate(map[string][]importance.FoldValues{
		"boruta": {{"TP53": 3, "EGFR": 1}},
		"lasso":  {{"TP53": 0.9, "KRAS": 0.1}},
	}, nil)
	require.NoError(t, err)

	scores, err := evaluation.AggregateScores(map[string][]float64{
		"boruta": {0.92, 0.93},
		"lasso":  {0.90, 0.91},
	})
	require.NoError(t, err)

	container, err := results.New(
		results.Selection{Method: "boruta", Criterion: "mean_cv_score"},
		nil, tables, scores, nil,
	)
	require.NoError(t, err)
	return container
}

func testOverlap(t *testing.T) *geneset.OverlapMatrix {
	t.Helper()

	a, err := geneset.NewGeneList([]string{"TP53", "EGFR"}, []string{"e1", "e2"}, []string{"1", "2"})
	require.NoError(t, err)
	b, err := geneset.NewGeneList([]string{"TP53", "KRAS"}, []string{"e1", "e3"}, []string{"1", "3"})
	require.NoError(t, err)

	m, err := geneset.ComputeOverlap(map[string]geneset.GeneList{"boruta": a, "lasso": b}, geneset.Jaccard)
	require.NoError(t, err)
	return m
}

func TestScoreBarChart(t *testing.T) {
	records := testContainer(t).Scores()

	p, err := ScoreBarChart(records)
	require.NoError(t, err)
	assert.Equal(t, "Cross-validation scores by method", p.Title.Text)

	_, err = ScoreBarChart(nil)
	var emptyErr *errors.EmptyInputError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestOverlapHeatMap(t *testing.T) {
	p, err := OverlapHeatMap(testOverlap(t))
	require.NoError(t, err)
	assert.Contains(t, p.Title.Text, "jaccard")

	_, err = OverlapHeatMap(nil)
	var valErr *errors.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, testContainer(t), testOverlap(t), 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Best method: boruta")
	assert.Contains(t, out, "rank")
	assert.Contains(t, out, "TP53")
	assert.Contains(t, out, "Gene-list overlap (jaccard)")
	assert.Contains(t, out, "Test metrics: not computed")

	// Rank order: boruta before lasso.
	assert.Less(t, strings.Index(out, "boruta"), strings.Index(out, "lasso"))
}

func TestWriteSummaryValidation(t *testing.T) {
	var buf bytes.Buffer
	var valErr *errors.ValidationError

	err := WriteSummary(&buf, nil, nil, 2)
	assert.ErrorAs(t, err, &valErr)

	err = WriteSummary(&buf, testContainer(t), nil, 0)
	assert.ErrorAs(t, err, &valErr)
}

func TestWriteSummaryTestMetricsVariants(t *testing.T) {
	tables, err := importance.Aggregate(map[string][]importance.FoldValues{
		"boruta": {{"TP53": 1}},
	}, nil)
	require.NoError(t, err)

	scores, err := evaluation.AggregateScores(map[string][]float64{"boruta": {0.9}})
	require.NoError(t, err)

	container, err := results.New(
		results.Selection{Method: "boruta", Criterion: "mean_cv_score"},
		nil, tables, scores,
		results.SplitMetrics{Splits: []results.MetricsTable{
			{Rows: []results.MethodMetrics{{Method: "boruta", Values: map[string]float64{"f1": 0.9}}}},
		}},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, container, nil, 1))
	assert.Contains(t, buf.String(), "split 0")
	assert.Contains(t, buf.String(), "f1=0.9000")
}
