// Standard attribute keys for feature-selection pipeline logging.
//
// Keys follow a hierarchical naming convention ("method.name", "cv.fold") so
// that structured logs from different pipeline stages can be filtered and
// joined during analysis.

package log

// Method and operation context.
const (
	// MethodKey identifies the feature-selection method being processed.
	// Examples: "lasso", "random_forest", "univariate", "boruta"
	MethodKey = "method.name"

	// OperationKey specifies the aggregation operation being performed.
	// Standard values: "aggregate_scores", "aggregate_importance",
	// "overlap_matrix", "build_container"
	OperationKey = "agg.operation"

	// KindKey identifies the importance kind under aggregation.
	// Values: "model_native", "permutation"
	KindKey = "importance.kind"
)

// Cross-validation context.
const (
	// FoldKey indicates the zero-based cross-validation fold index.
	FoldKey = "cv.fold"

	// FoldsKey indicates the total number of folds for a method.
	FoldsKey = "cv.folds"

	// SplitsKey indicates the number of splits a splitter produces.
	SplitsKey = "cv.splits"
)

// Data characteristics.
const (
	// FeaturesKey indicates the number of distinct features in a group.
	FeaturesKey = "data.features"

	// GenesKey indicates the size of a gene list.
	GenesKey = "data.genes"

	// MethodsKey indicates the number of methods in a collection.
	MethodsKey = "data.methods"
)

// Performance metrics.
const (
	// DurationMsKey records elapsed wall time in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// MeanScoreKey records a method's mean cross-validation score.
	MeanScoreKey = "score.mean"

	// StdScoreKey records a method's score standard deviation.
	StdScoreKey = "score.std"
)
