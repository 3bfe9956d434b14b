package search

import (
	"context"
	"errors"

	"github.com/vogtools/vogdb/pkg/taxonomy"
)

// TaxonSet is one requested taxon together with its descendant
// closure. In intersection mode the whole set counts as a single item:
// a VOG must have a member under every requested taxon, not under
// every expanded id.
type TaxonSet struct {
	ID          int32
	Descendants []int32
}

// MembershipResolver answers multi-hop membership questions through
// the protein→species relation. Implementations live next to the
// store; an empty result set is a valid, non-error outcome.
type MembershipResolver interface {
	// VOGsBySpecies returns ids of groups whose member proteins belong
	// to species matching the name substrings, combined per mode.
	VOGsBySpecies(
		ctx context.Context, names []string, mode CombinationMode,
	) ([]string, error)

	// VOGsByTaxa returns ids of groups whose member proteins belong to
	// the taxon sets, one item per requested taxon, combined per mode.
	VOGsByTaxa(
		ctx context.Context, sets []TaxonSet, mode CombinationMode,
	) ([]string, error)

	// VOGsByProteins returns ids of groups containing any of the listed
	// proteins.
	VOGsByProteins(ctx context.Context, ids []string) ([]string, error)

	// ProteinsBySpecies returns ids of proteins whose species matches
	// any of the name substrings.
	ProteinsBySpecies(
		ctx context.Context, names []string,
	) ([]string, error)
}

// Compiler turns criteria bags into ordered condition lists. The
// taxonomy and membership capabilities are injected at construction
// time so tests can substitute fakes.
type Compiler struct {
	taxa    taxonomy.Resolver
	members MembershipResolver
}

// NewCompiler creates a Compiler with the given capabilities.
func NewCompiler(
	taxa taxonomy.Resolver,
	members MembershipResolver,
) *Compiler {
	return &Compiler{taxa: taxa, members: members}
}

// CompileSpecies compiles species criteria. Species search is
// single-hop: every criterion is a direct column comparison, so no
// membership or taxonomy resolution is involved.
func (c *Compiler) CompileSpecies(
	_ context.Context,
	cr SpeciesCriteria,
) ([]Condition, error) {
	var res []Condition

	if len(cr.TaxonIDs) > 0 {
		res = append(res, cond("taxon_id IN ?", cr.TaxonIDs))
	}
	if cr.Name != nil {
		res = append(res, cond("name ILIKE ?", likePattern(*cr.Name)))
	}
	if cr.Phage != nil {
		res = append(res, cond("phage = ?", *cr.Phage))
	}
	if cr.Source != nil {
		res = append(res,
			cond("source ILIKE ?", likePattern(*cr.Source)))
	}
	if cr.Version != nil {
		res = append(res, cond("version = ?", *cr.Version))
	}

	return res, nil
}

// CompileVOG compiles VOG criteria: validate, emit direct column
// conditions, then resolve membership constraints. Validation failures
// surface before any query executes.
func (c *Compiler) CompileVOG(
	ctx context.Context,
	cr VOGCriteria,
) ([]Condition, error) {
	if err := cr.Validate(); err != nil {
		return nil, err
	}

	var res []Condition

	if len(cr.IDs) > 0 {
		res = append(res, cond("id IN ?", cr.IDs))
	}

	res = append(res,
		rangeConditions("species_count", cr.SpeciesCount)...)
	res = append(res,
		rangeConditions("protein_count", cr.ProteinCount)...)
	res = append(res,
		rangeConditions("genomes_total_in_lca", cr.GenomesTotal)...)
	res = append(res,
		rangeConditions("genomes_in_group", cr.GenomesInGroup)...)

	// Multi-term text criteria conjoin: a group must match every term.
	for _, term := range cr.FunctionalCategories {
		res = append(res,
			cond("functional_category ILIKE ?", likePattern(term)))
	}
	for _, term := range cr.ConsensusFunctions {
		res = append(res,
			cond("consensus_function ILIKE ?", likePattern(term)))
	}
	for _, term := range cr.Ancestors {
		res = append(res, cond("ancestors ILIKE ?", likePattern(term)))
	}

	if cr.StringencyHigh != nil {
		res = append(res, cond("h_stringency = ?", *cr.StringencyHigh))
	}
	if cr.StringencyMedium != nil {
		res = append(res,
			cond("m_stringency = ?", *cr.StringencyMedium))
	}
	if cr.StringencyLow != nil {
		res = append(res, cond("l_stringency = ?", *cr.StringencyLow))
	}
	if cr.VirusSpecific != nil {
		res = append(res, cond("virus_specific = ?", *cr.VirusSpecific))
	}
	if cr.PhageClass != nil {
		res = append(res,
			cond("phages_nonphages ILIKE ?", likePattern(*cr.PhageClass)))
	}

	if len(cr.ProteinIDs) > 0 {
		ids, err := c.members.VOGsByProteins(ctx, cr.ProteinIDs)
		if err != nil {
			return nil, err
		}
		res = append(res, cond("id IN ?", ids))
	}

	if len(cr.SpeciesNames) > 0 {
		ids, err := c.members.VOGsBySpecies(ctx, cr.SpeciesNames, cr.Mode)
		if err != nil {
			return nil, err
		}
		res = append(res, cond("id IN ?", ids))
	}

	if len(cr.TaxonIDs) > 0 {
		sets, err := c.expandTaxa(ctx, cr.TaxonIDs)
		if err != nil {
			return nil, err
		}
		ids, err := c.members.VOGsByTaxa(ctx, sets, cr.Mode)
		if err != nil {
			return nil, err
		}
		res = append(res, cond("id IN ?", ids))
	}

	return res, nil
}

// CompileProteins compiles protein criteria. Species-name constraints
// resolve through the species join; taxon and group ids are direct
// column filters.
func (c *Compiler) CompileProteins(
	ctx context.Context,
	cr ProteinCriteria,
) ([]Condition, error) {
	var res []Condition

	if len(cr.SpeciesNames) > 0 {
		ids, err := c.members.ProteinsBySpecies(ctx, cr.SpeciesNames)
		if err != nil {
			return nil, err
		}
		res = append(res, cond("id IN ?", ids))
	}
	if len(cr.TaxonIDs) > 0 {
		res = append(res, cond("taxon_id IN ?", cr.TaxonIDs))
	}
	if len(cr.VOGIDs) > 0 {
		res = append(res, cond("vog_id IN ?", cr.VOGIDs))
	}

	return res, nil
}

// expandTaxa expands each requested taxon id to its descendant
// closure. An unknown id fails the whole search; order of the sets
// follows the request.
func (c *Compiler) expandTaxa(
	ctx context.Context,
	taxonIDs []int32,
) ([]TaxonSet, error) {
	res := make([]TaxonSet, 0, len(taxonIDs))
	for _, id := range taxonIDs {
		descendants, err := c.taxa.Expand(ctx, id)
		if err != nil {
			var unknown taxonomy.UnknownTaxonError
			if errors.As(err, &unknown) {
				return nil, NewInvalidTaxonError(id, err)
			}
			return nil, NewStoreError(err)
		}
		res = append(res, TaxonSet{ID: id, Descendants: descendants})
	}
	return res, nil
}
