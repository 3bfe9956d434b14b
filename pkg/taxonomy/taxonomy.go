// Package taxonomy defines the taxonomic-hierarchy capability consumed
// by the search engine. The hierarchy is a read-only snapshot; the only
// operation is the expansion of a taxon to its descendant closure.
package taxonomy

import (
	"context"
	"fmt"

	"github.com/gnames/gnlib"
)

// Resolver expands a taxon to the set of its descendants.
// Implementations are injected at construction time so tests can
// substitute a fake hierarchy.
type Resolver interface {
	// Expand returns the taxon itself plus every descendant taxon,
	// intermediate nodes included, subspecies not collapsed. The result
	// is sorted ascending and deterministic for a fixed hierarchy
	// snapshot. A leaf taxon yields just itself. An identifier absent
	// from the hierarchy yields UnknownTaxonError.
	Expand(ctx context.Context, taxonID int32) ([]int32, error)
}

// UnknownTaxonError is returned when a taxon identifier does not exist
// in the hierarchy. It is distinct from a valid leaf taxon, which
// expands to itself.
type UnknownTaxonError struct {
	error
	gnlib.MessageBase
	TaxonID int32
}

// NewUnknownTaxonError creates an error for a taxon id absent from the
// hierarchy snapshot.
func NewUnknownTaxonError(taxonID int32) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Unknown Taxon</title>
<warn>Taxonomy ID <em>%d</em> does not exist in the taxonomy snapshot.</warn>

<em>How to fix:</em>
  1. Verify the taxonomy ID at https://www.ncbi.nlm.nih.gov/taxonomy
  2. Make sure the taxa table was loaded for this release
`,
		Vars: []any{taxonID},
	}

	return UnknownTaxonError{
		error:       fmt.Errorf("taxon %d not found in hierarchy", taxonID),
		MessageBase: msgBase,
		TaxonID:     taxonID,
	}
}
