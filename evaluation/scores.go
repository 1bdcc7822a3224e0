// Package evaluation reduces per-fold cross-validation scores into ranked
// per-method summaries.
package evaluation

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/omicsgo/featselect/pkg/errors"
)

// MethodScore summarizes one feature-selection method's cross-validation
// performance. Records are immutable once built; rank 1 is the best method.
type MethodScore struct {
	Method    string
	MeanScore float64
	StdScore  float64
	Rank      int
}

// AggregateScores reduces per-fold scores into one ranked MethodScore per
// method. The mean is the arithmetic mean over folds and the std is the
// sample standard deviation (zero when a single fold contributed, matching
// the convention that one observation has no spread).
//
// Ranking is by mean score descending; ties prefer the smaller std (the more
// stable method), then the lexically smaller method identifier so the result
// is deterministic. Returns EmptyInputError if any method has zero folds.
func AggregateScores(foldScores map[string][]float64) ([]MethodScore, error) {
	if len(foldScores) == 0 {
		return nil, errors.NewEmptyInputError("AggregateScores", "")
	}

	records := make([]MethodScore, 0, len(foldScores))
	for method, scores := range foldScores {
		if len(scores) == 0 {
			return nil, errors.NewEmptyInputError("AggregateScores", method)
		}

		std := 0.0
		if len(scores) > 1 {
			std = stat.StdDev(scores, nil)
		}
		records = append(records, MethodScore{
			Method:    method,
			MeanScore: stat.Mean(scores, nil),
			StdScore:  std,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].MeanScore != records[j].MeanScore {
			return records[i].MeanScore > records[j].MeanScore
		}
		if records[i].StdScore != records[j].StdScore {
			return records[i].StdScore < records[j].StdScore
		}
		return records[i].Method < records[j].Method
	})
	for i := range records {
		records[i].Rank = i + 1
	}

	return records, nil
}

// BestMethod returns the rank-1 record from a ranked collection.
func BestMethod(records []MethodScore) (MethodScore, error) {
	if len(records) == 0 {
		return MethodScore{}, errors.NewEmptyInputError("BestMethod", "")
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.Rank < best.Rank {
			best = r
		}
	}
	return best, nil
}
