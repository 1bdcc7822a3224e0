package importance

import (
	"gonum.org/v1/gonum/stat"

	"github.com/omicsgo/featselect/pkg/errors"
)

// PermutationValue reduces one fold's shuffle samples for a single feature
// into its permutation importance: the baseline score minus the score after
// shuffling, averaged over the configured number of shuffles. Positive
// values mean the model got worse without the feature's signal.
func PermutationValue(baseline float64, shuffledScores []float64) (float64, error) {
	if len(shuffledScores) == 0 {
		return 0, errors.NewEmptyInputError("PermutationValue", "")
	}

	drops := make([]float64, len(shuffledScores))
	for i, s := range shuffledScores {
		drops[i] = baseline - s
	}
	return stat.Mean(drops, nil), nil
}
