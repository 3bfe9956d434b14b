package search

import (
	"context"

	"github.com/vogtools/vogdb/pkg/schema"
)

// ProteinSummary is the full protein record returned by summary
// fetches: the protein row joined with its species name.
type ProteinSummary struct {
	ID          string `gorm:"column:id"`
	VOGID       string `gorm:"column:vog_id"`
	TaxonID     int32  `gorm:"column:taxon_id"`
	SpeciesName string `gorm:"column:species_name"`
}

// Searcher is the query engine exposed to callers. Search operations
// return ordered identifier lists (ascending by identifier, stable for
// pagination and reproducible tests); summary fetches return full
// records for explicit id lists.
//
// Operations are request-scoped and stateless between calls; each owns
// its store session for the duration of the call. Zero matches is a
// normal outcome, not an error. Summary fetches silently absorb
// duplicate and unknown ids - callers compare cardinalities to detect
// partial misses.
type Searcher interface {
	// SearchSpecies returns taxon ids of species matching the criteria.
	SearchSpecies(
		ctx context.Context, cr SpeciesCriteria,
	) ([]int32, error)

	// SearchVOGs returns ids of groups matching the criteria.
	SearchVOGs(ctx context.Context, cr VOGCriteria) ([]string, error)

	// SearchProteins returns ids of proteins matching the criteria.
	SearchProteins(
		ctx context.Context, cr ProteinCriteria,
	) ([]string, error)

	// SpeciesByIDs returns full species records for the listed taxon
	// ids. An empty list yields NoIdentifiersError.
	SpeciesByIDs(
		ctx context.Context, taxonIDs []int32,
	) ([]schema.Species, error)

	// VOGsByIDs returns full group records for the listed ids.
	VOGsByIDs(ctx context.Context, ids []string) ([]schema.VOG, error)

	// ProteinsByIDs returns protein records joined with species names.
	ProteinsByIDs(
		ctx context.Context, ids []string,
	) ([]ProteinSummary, error)

	// AASeqsByIDs returns amino-acid sequences for the listed protein
	// ids.
	AASeqsByIDs(
		ctx context.Context, ids []string,
	) ([]schema.AASeq, error)

	// NTSeqsByIDs returns nucleotide sequences for the listed protein
	// ids.
	NTSeqsByIDs(
		ctx context.Context, ids []string,
	) ([]schema.NTSeq, error)
}
