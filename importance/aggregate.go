// Package importance reduces per-fold feature-importance values into ranked
// per-method tables.
//
// Two kinds of importance are aggregated independently. Model-native values
// are read from a trained model's internal state and arrive on incompatible
// scales across algorithms (split-reduction sums, absolute coefficient
// magnitudes), so each fold's vector is normalized to sum to one before
// averaging. Permutation values are already in score units and comparable
// across methods, so they are averaged as-is.
package importance

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/omicsgo/featselect/core/parallel"
	"github.com/omicsgo/featselect/pkg/errors"
)

// Kind distinguishes the two independently computed importance flavors.
type Kind string

const (
	// ModelNative is importance read from a trained model's internal state.
	ModelNative Kind = "model_native"
	// Permutation is importance estimated from score degradation after
	// shuffling one feature's values.
	Permutation Kind = "permutation"
)

// FoldValues maps feature identifier to its raw importance within one fold.
// A feature missing from the map was not evaluated in that fold; it must not
// be confused with a feature that scored zero.
type FoldValues map[string]float64

// Record aggregates one feature's importance within one method/kind group.
//
// StdImportance is defined only when at least two folds contributed
// (StdDefined reports this); a single observation has no spread and the
// value must not be read as zero. FoldRanks maps fold index to the feature's
// rank in that fold, with folds the feature never appeared in absent from
// the map entirely.
type Record struct {
	Feature        string
	MeanImportance float64
	StdImportance  float64
	StdDefined     bool
	FoldCount      int
	FoldRanks      map[int]int
}

// Tables holds ranked importance records grouped by method and kind.
// Built once by Aggregate; read-only afterwards.
type Tables struct {
	groups map[groupKey][]Record
}

type groupKey struct {
	method string
	kind   Kind
}

// Aggregate reduces per-fold importance maps into ranked records for every
// method present in either input. modelNative and permutation each map
// method identifier to its ordered per-fold feature->importance maps; a
// method may appear in only one of them (permutation runs are optional).
//
// Methods are aggregated independently and may run in parallel; the output
// is keyed and ordered by method identifier, so completion order never
// affects content. Returns EmptyInputError if both inputs are empty or any
// listed method has zero folds.
func Aggregate(modelNative, permutation map[string][]FoldValues) (*Tables, error) {
	keys := make([]groupKey, 0, len(modelNative)+len(permutation))
	for method, folds := range modelNative {
		if len(folds) == 0 {
			return nil, errors.NewEmptyInputError("importance.Aggregate", method)
		}
		keys = append(keys, groupKey{method: method, kind: ModelNative})
	}
	for method, folds := range permutation {
		if len(folds) == 0 {
			return nil, errors.NewEmptyInputError("importance.Aggregate", method)
		}
		keys = append(keys, groupKey{method: method, kind: Permutation})
	}
	if len(keys) == 0 {
		return nil, errors.NewEmptyInputError("importance.Aggregate", "")
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].method != keys[j].method {
			return keys[i].method < keys[j].method
		}
		return keys[i].kind < keys[j].kind
	})

	// Each slot is owned by exactly one worker, so assembly stays
	// deterministic regardless of scheduling.
	slots := make([][]Record, len(keys))
	parallel.ParallelizeWithThreshold(len(keys), 4, func(start, end int) {
		for i := start; i < end; i++ {
			key := keys[i]
			var folds []FoldValues
			if key.kind == ModelNative {
				folds = modelNative[key.method]
			} else {
				folds = permutation[key.method]
			}
			slots[i] = aggregateGroup(key, folds)
		}
	})

	groups := make(map[groupKey][]Record, len(keys))
	for i, key := range keys {
		groups[key] = slots[i]
	}
	return &Tables{groups: groups}, nil
}

// aggregateGroup reduces one method/kind group. Pure; safe to call
// concurrently for distinct groups.
func aggregateGroup(key groupKey, folds []FoldValues) []Record {
	perFeature := make(map[string][]float64)
	foldRanks := make(map[string]map[int]int)

	for foldIdx, fold := range folds {
		values := fold
		if key.kind == ModelNative {
			values = normalizeFold(key.method, foldIdx, fold)
		}

		for feature, v := range values {
			perFeature[feature] = append(perFeature[feature], v)
		}

		for feature, rank := range rankFold(values) {
			m, ok := foldRanks[feature]
			if !ok {
				m = make(map[int]int)
				foldRanks[feature] = m
			}
			m[foldIdx] = rank
		}
	}

	records := make([]Record, 0, len(perFeature))
	for feature, samples := range perFeature {
		rec := Record{
			Feature:        feature,
			MeanImportance: stat.Mean(samples, nil),
			FoldCount:      len(samples),
			FoldRanks:      foldRanks[feature],
		}
		if len(samples) >= 2 {
			rec.StdImportance = stat.StdDev(samples, nil)
			rec.StdDefined = true
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].MeanImportance != records[j].MeanImportance {
			return records[i].MeanImportance > records[j].MeanImportance
		}
		return records[i].Feature < records[j].Feature
	})

	return records
}

// normalizeFold rescales one fold's model-native vector to sum to one.
// A zero-sum vector cannot be normalized; it is kept as all zeros and a
// warning is emitted.
func normalizeFold(method string, foldIdx int, fold FoldValues) FoldValues {
	if len(fold) == 0 {
		// A fold that retained no features has nothing to normalize.
		return FoldValues{}
	}

	features := make([]string, 0, len(fold))
	raw := make([]float64, 0, len(fold))
	for feature, v := range fold {
		features = append(features, feature)
		raw = append(raw, v)
	}

	total := floats.Sum(raw)
	normalized := make(FoldValues, len(fold))
	if total == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(
			"normalized_importance",
			fmt.Sprintf("zero-sum importance vector for method %s fold %d", method, foldIdx),
			0.0,
		))
		for _, feature := range features {
			normalized[feature] = 0
		}
		return normalized
	}

	for i, feature := range features {
		normalized[feature] = raw[i] / total
	}
	return normalized
}

// rankFold assigns rank 1 to the highest importance in the fold, breaking
// ties by feature identifier. Only features present in the fold are ranked.
func rankFold(fold FoldValues) map[string]int {
	features := make([]string, 0, len(fold))
	for feature := range fold {
		features = append(features, feature)
	}
	sort.Slice(features, func(i, j int) bool {
		if fold[features[i]] != fold[features[j]] {
			return fold[features[i]] > fold[features[j]]
		}
		return features[i] < features[j]
	})

	ranks := make(map[string]int, len(features))
	for i, feature := range features {
		ranks[feature] = i + 1
	}
	return ranks
}

// Methods returns the method identifiers that have records of the given
// kind, in lexical order.
func (t *Tables) Methods(kind Kind) []string {
	methods := make([]string, 0, len(t.groups))
	for key := range t.groups {
		if key.kind == kind {
			methods = append(methods, key.method)
		}
	}
	sort.Strings(methods)
	return methods
}

// Records returns a copy of the ranked records for a method/kind group,
// ordered by mean importance descending. Returns MethodNotFoundError when
// the group has no records.
func (t *Tables) Records(method string, kind Kind) ([]Record, error) {
	records, ok := t.groups[groupKey{method: method, kind: kind}]
	if !ok {
		return nil, errors.NewMethodNotFoundError(method, string(kind))
	}
	return cloneRecords(records), nil
}

// TopFeatures returns the n features with the highest mean importance for a
// method/kind group, ties broken by feature identifier. When fewer than n
// features exist, all of them are returned.
func (t *Tables) TopFeatures(method string, kind Kind, n int) ([]string, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "must be positive", n)
	}

	records, ok := t.groups[groupKey{method: method, kind: kind}]
	if !ok {
		return nil, errors.NewMethodNotFoundError(method, string(kind))
	}

	if n > len(records) {
		n = len(records)
	}
	features := make([]string, n)
	for i := 0; i < n; i++ {
		features[i] = records[i].Feature
	}
	return features, nil
}
