package evaluation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicsgo/featselect/pkg/errors"
)

func TestAggregateScoresMeanAndStd(t *testing.T) {
	records, err := AggregateScores(map[string][]float64{
		"lasso": {0.90, 0.92, 0.94},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "lasso", records[0].Method)
	assert.InDelta(t, 0.92, records[0].MeanScore, 1e-12)

	// Sample standard deviation with n-1 in the denominator.
	want := math.Sqrt((0.02*0.02 + 0.02*0.02) / 2.0)
	assert.InDelta(t, want, records[0].StdScore, 1e-12)
	assert.Equal(t, 1, records[0].Rank)
}

func TestAggregateScoresRanking(t *testing.T) {
	records, err := AggregateScores(map[string][]float64{
		"boruta":       {0.9210, 0.9210, 0.9210},
		"Lasso":        {0.9153, 0.9153},
		"RandomForest": {0.9128, 0.9128},
		"Univariate":   {0.9046, 0.9046},
	})
	require.NoError(t, err)
	require.Len(t, records, 4)

	wantOrder := []string{"boruta", "Lasso", "RandomForest", "Univariate"}
	for i, want := range wantOrder {
		assert.Equal(t, want, records[i].Method, "rank %d", i+1)
		assert.Equal(t, i+1, records[i].Rank)
	}

	// Rank order is monotonically non-increasing in mean score.
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i].MeanScore, records[i-1].MeanScore)
	}
}

func TestAggregateScoresTieBreaking(t *testing.T) {
	// Equal means: the more stable method wins. The fold values are exactly
	// representable in binary so both means are exactly 0.875.
	records, err := AggregateScores(map[string][]float64{
		"noisy":  {0.75, 1.0},
		"stable": {0.875, 0.875},
	})
	require.NoError(t, err)
	assert.Equal(t, "stable", records[0].Method)
	assert.Equal(t, "noisy", records[1].Method)

	// Equal mean and std: lexical order of the method identifier.
	records, err = AggregateScores(map[string][]float64{
		"b-method": {0.5},
		"a-method": {0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "a-method", records[0].Method)
	assert.Equal(t, "b-method", records[1].Method)
}

func TestAggregateScoresSingleFoldStdZero(t *testing.T) {
	records, err := AggregateScores(map[string][]float64{
		"univariate": {0.88},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, records[0].StdScore)
	assert.Equal(t, 0.88, records[0].MeanScore)
}

func TestAggregateScoresEmptyInputs(t *testing.T) {
	_, err := AggregateScores(nil)
	var emptyErr *errors.EmptyInputError
	require.ErrorAs(t, err, &emptyErr)

	_, err = AggregateScores(map[string][]float64{
		"lasso":  {0.9},
		"boruta": {},
	})
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "boruta", emptyErr.Key)
}

func TestBestMethod(t *testing.T) {
	records, err := AggregateScores(map[string][]float64{
		"lasso":  {0.91},
		"boruta": {0.93},
	})
	require.NoError(t, err)

	best, err := BestMethod(records)
	require.NoError(t, err)
	assert.Equal(t, "boruta", best.Method)

	_, err = BestMethod(nil)
	var emptyErr *errors.EmptyInputError
	assert.ErrorAs(t, err, &emptyErr)
}
