package geneset

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/omicsgo/featselect/pkg/errors"
)

// Coefficient selects the set-similarity measure used for an overlap matrix.
type Coefficient string

const (
	// Jaccard is |A∩B| / |A∪B|, taken as 1 when both sets are empty.
	Jaccard Coefficient = "jaccard"
	// SzymkiewiczSimpson is |A∩B| / min(|A|,|B|), taken as 1 when both sets
	// are empty and 0 when exactly one is. An empty selection shares nothing
	// with a non-empty one rather than vacuously everything.
	SzymkiewiczSimpson Coefficient = "overlap"
)

// OverlapMatrix is the symmetric pairwise similarity of a fixed collection of
// named gene lists, with 1.0 on the diagonal. Read-only after construction.
type OverlapMatrix struct {
	methods []string
	index   map[string]int
	coef    Coefficient
	sym     *mat.SymDense
}

// ComputeOverlap builds the pairwise similarity matrix over the symbol
// namespace of the given per-method gene lists. Returns EmptyCollectionError
// when fewer than two lists are supplied.
func ComputeOverlap(lists map[string]GeneList, coef Coefficient) (*OverlapMatrix, error) {
	if len(lists) < 2 {
		return nil, errors.NewEmptyCollectionError("ComputeOverlap", 2, len(lists))
	}
	if coef != Jaccard && coef != SzymkiewiczSimpson {
		return nil, errors.NewValidationError("coef", "unknown overlap coefficient", string(coef))
	}

	methods := make([]string, 0, len(lists))
	for method := range lists {
		methods = append(methods, method)
	}
	sort.Strings(methods)

	index := make(map[string]int, len(methods))
	sets := make([]map[string]struct{}, len(methods))
	for i, method := range methods {
		index[method] = i
		sets[i] = lists[method].SymbolSet()
	}

	sym := mat.NewSymDense(len(methods), nil)
	for i := range methods {
		sym.SetSym(i, i, 1.0)
		for j := i + 1; j < len(methods); j++ {
			var v float64
			switch coef {
			case Jaccard:
				v = jaccard(sets[i], sets[j])
			case SzymkiewiczSimpson:
				v = szymkiewiczSimpson(sets[i], sets[j])
			}
			sym.SetSym(i, j, v)
		}
	}

	return &OverlapMatrix{
		methods: methods,
		index:   index,
		coef:    coef,
		sym:     sym,
	}, nil
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for s := range a {
		if _, ok := b[s]; ok {
			n++
		}
	}
	return n
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	inter := intersectionSize(a, b)
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func szymkiewiczSimpson(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	return float64(intersectionSize(a, b)) / float64(smaller)
}

// Methods returns the matrix row/column labels in lexical order.
func (m *OverlapMatrix) Methods() []string {
	out := make([]string, len(m.methods))
	copy(out, m.methods)
	return out
}

// Coefficient returns the similarity measure the matrix was built with.
func (m *OverlapMatrix) Coefficient() Coefficient {
	return m.coef
}

// At returns the similarity between two named methods. Order of the
// arguments does not matter.
func (m *OverlapMatrix) At(a, b string) (float64, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, errors.NewMethodNotFoundError(a, "")
	}
	j, ok := m.index[b]
	if !ok {
		return 0, errors.NewMethodNotFoundError(b, "")
	}
	return m.sym.At(i, j), nil
}

// Sym returns a copy of the underlying symmetric matrix, row/column order
// matching Methods().
func (m *OverlapMatrix) Sym() *mat.SymDense {
	out := mat.NewSymDense(m.sym.SymmetricDim(), nil)
	out.CopySym(m.sym)
	return out
}
