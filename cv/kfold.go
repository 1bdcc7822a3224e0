package cv

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Splitter produces cross-validation folds over a dataset.
type Splitter interface {
	Split(X, y mat.Matrix) []Fold
	NSplits() int
}

// Fold holds the train/test row indices of one cross-validation split.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold splits rows into k consecutive (optionally shuffled) folds.
type KFold struct {
	K       int
	Shuffle bool
	Seed    int
}

// NewKFold creates a k-fold splitter. Fewer than two splits falls back to
// the conventional five.
func NewKFold(k int, shuffle bool, seed int) *KFold {
	if k < 2 {
		k = 5
	}
	return &KFold{K: k, Shuffle: shuffle, Seed: seed}
}

// NSplits returns the number of folds produced.
func (kf *KFold) NSplits() int {
	return kf.K
}

// Split generates the train/test indices for each fold. Splitting is
// deterministic for a fixed seed.
func (kf *KFold) Split(X, _ mat.Matrix) []Fold {
	nSamples, _ := X.Dims()

	indices := permutation(nSamples, kf.Shuffle, kf.Seed)
	bounds := foldBounds(nSamples, kf.K)

	folds := make([]Fold, kf.K)
	for i := 0; i < kf.K; i++ {
		lo, hi := bounds[i], bounds[i+1]

		test := make([]int, hi-lo)
		copy(test, indices[lo:hi])

		train := make([]int, 0, nSamples-len(test))
		train = append(train, indices[:lo]...)
		train = append(train, indices[hi:]...)

		folds[i] = Fold{TrainIndices: train, TestIndices: test}
	}
	return folds
}

// StratifiedKFold splits rows into k folds while preserving each class's
// proportion per fold. Class labels are read from column 0 of y.
type StratifiedKFold struct {
	K       int
	Shuffle bool
	Seed    int
}

// NewStratifiedKFold creates a stratified k-fold splitter.
func NewStratifiedKFold(k int, shuffle bool, seed int) *StratifiedKFold {
	if k < 2 {
		k = 5
	}
	return &StratifiedKFold{K: k, Shuffle: shuffle, Seed: seed}
}

// NSplits returns the number of folds produced.
func (skf *StratifiedKFold) NSplits() int {
	return skf.K
}

// Split generates stratified train/test indices for each fold.
func (skf *StratifiedKFold) Split(X, y mat.Matrix) []Fold {
	nSamples, _ := X.Dims()

	classIndices := make(map[float64][]int)
	var classOrder []float64
	for i := 0; i < nSamples; i++ {
		label := y.At(i, 0)
		if _, seen := classIndices[label]; !seen {
			classOrder = append(classOrder, label)
		}
		classIndices[label] = append(classIndices[label], i)
	}

	if skf.Shuffle {
		r := rand.New(rand.NewPCG(uint64(skf.Seed), uint64(skf.Seed)))
		for _, label := range classOrder {
			indices := classIndices[label]
			r.Shuffle(len(indices), func(i, j int) {
				indices[i], indices[j] = indices[j], indices[i]
			})
		}
	}

	folds := make([]Fold, skf.K)

	// Deal each class across the folds so every fold keeps roughly the
	// class proportions of the whole dataset.
	for _, label := range classOrder {
		indices := classIndices[label]
		bounds := foldBounds(len(indices), skf.K)
		for i := 0; i < skf.K; i++ {
			folds[i].TestIndices = append(folds[i].TestIndices, indices[bounds[i]:bounds[i+1]]...)
		}
	}

	for i := range folds {
		inTest := make(map[int]bool, len(folds[i].TestIndices))
		for _, idx := range folds[i].TestIndices {
			inTest[idx] = true
		}
		folds[i].TrainIndices = make([]int, 0, nSamples-len(folds[i].TestIndices))
		for j := 0; j < nSamples; j++ {
			if !inTest[j] {
				folds[i].TrainIndices = append(folds[i].TrainIndices, j)
			}
		}
	}

	return folds
}

// permutation returns [0, n) in order, or shuffled with a seeded PCG.
func permutation(n int, shuffle bool, seed int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if shuffle {
		r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		r.Shuffle(n, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}
	return indices
}

// foldBounds returns k+1 offsets partitioning n items into k chunks whose
// sizes differ by at most one, larger chunks first.
func foldBounds(n, k int) []int {
	bounds := make([]int, k+1)
	base := n / k
	rem := n % k
	for i := 0; i < k; i++ {
		size := base
		if i < rem {
			size++
		}
		bounds[i+1] = bounds[i] + size
	}
	return bounds
}
