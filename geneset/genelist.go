// Package geneset models selected-gene lists and their pairwise overlap.
package geneset

import (
	"context"

	"github.com/omicsgo/featselect/pkg/errors"
)

// GeneList is one method's selected features in three parallel identifier
// namespaces: gene symbols (e.g. TP53), stable database accessions (e.g.
// ENSG00000141510) and numeric ids (e.g. Entrez 7157). Position i refers to
// the same underlying gene in all three sequences.
type GeneList struct {
	Symbols    []string
	StableIDs  []string
	NumericIDs []string
}

// NewGeneList builds a GeneList after checking that all three namespaces are
// positionally aligned. Returns DimensionError on any length mismatch.
func NewGeneList(symbols, stableIDs, numericIDs []string) (GeneList, error) {
	if len(stableIDs) != len(symbols) {
		return GeneList{}, errors.NewDimensionError("NewGeneList", len(symbols), len(stableIDs), 0)
	}
	if len(numericIDs) != len(symbols) {
		return GeneList{}, errors.NewDimensionError("NewGeneList", len(symbols), len(numericIDs), 0)
	}

	gl := GeneList{
		Symbols:    make([]string, len(symbols)),
		StableIDs:  make([]string, len(stableIDs)),
		NumericIDs: make([]string, len(numericIDs)),
	}
	copy(gl.Symbols, symbols)
	copy(gl.StableIDs, stableIDs)
	copy(gl.NumericIDs, numericIDs)
	return gl, nil
}

// Len returns the number of genes in the list.
func (gl GeneList) Len() int {
	return len(gl.Symbols)
}

// SymbolSet returns the deduplicated symbol namespace as a set.
func (gl GeneList) SymbolSet() map[string]struct{} {
	set := make(map[string]struct{}, len(gl.Symbols))
	for _, s := range gl.Symbols {
		set[s] = struct{}{}
	}
	return set
}

// Translator maps gene symbols into the stable and numeric identifier
// namespaces. Implementations typically call an external annotation service,
// hence the context. Both returned slices must align positionally with the
// input symbols.
type Translator interface {
	Translate(ctx context.Context, symbols []string) (stableIDs, numericIDs []string, err error)
}

// BuildGeneList translates a single-namespace selection into a fully aligned
// GeneList. Translator output that does not align with the input surfaces as
// a DimensionError.
func BuildGeneList(ctx context.Context, symbols []string, translator Translator) (GeneList, error) {
	stableIDs, numericIDs, err := translator.Translate(ctx, symbols)
	if err != nil {
		return GeneList{}, errors.Wrap(err, "translating gene identifiers")
	}
	return NewGeneList(symbols, stableIDs, numericIDs)
}
