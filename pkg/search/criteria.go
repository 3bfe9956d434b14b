// Package search implements the filter-compilation core of vogdb.
//
// A search arrives as a typed bag of optional criteria. The Compiler
// validates the bag, resolves membership-style constraints through the
// injected taxonomy and membership capabilities, and emits an ordered
// list of independent conditions that the query executor conjoins.
// Every recognized filter is a named field; there is no dynamic
// attribute dispatch.
package search

// CombinationMode selects how multiple species or taxon constraints
// combine during membership resolution. The same mode applies at both
// nesting levels: per item inside a criterion set and across the
// per-taxon result sets.
type CombinationMode int

const (
	// ModeIntersection requires a VOG to match every item of the
	// criterion set. This is the default.
	ModeIntersection CombinationMode = iota

	// ModeUnion accepts a VOG that matches any item of the criterion
	// set.
	ModeUnion
)

// String returns a short name of the mode.
func (m CombinationMode) String() string {
	if m == ModeUnion {
		return "union"
	}
	return "intersection"
}

// Range is an optional inclusive numeric interval. A nil bound means
// the side is unconstrained.
type Range struct {
	Min *int
	Max *int
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// SpeciesCriteria are the optional filters of a species search.
// All supplied filters are conjoined.
type SpeciesCriteria struct {
	// TaxonIDs restricts results to the listed taxon ids (exact match,
	// no descendant expansion).
	TaxonIDs []int32

	// Name is a case-insensitive substring of the species name.
	Name *string

	// Phage filters by the bacteriophage flag.
	Phage *bool

	// Source is a case-insensitive substring of the data source name.
	Source *string

	// Version filters by the source release version.
	Version *int
}

// VOGCriteria are the optional filters of a VOG search.
// All supplied filters are conjoined; only membership resolution in
// ModeUnion introduces disjunction, and only within one criterion set.
type VOGCriteria struct {
	// IDs restricts results to the listed group ids.
	IDs []string

	// ProteinCount bounds the number of member proteins.
	ProteinCount Range

	// SpeciesCount bounds the number of distinct member species.
	SpeciesCount Range

	// GenomesTotal bounds the total genome count under the group LCA.
	GenomesTotal Range

	// GenomesInGroup bounds the genome count inside the group.
	GenomesInGroup Range

	// FunctionalCategories are case-insensitive substrings of the
	// functional category; a group must match every term.
	FunctionalCategories []string

	// ConsensusFunctions are case-insensitive substrings of the
	// consensus functional description; a group must match every term.
	ConsensusFunctions []string

	// Ancestors are case-insensitive substrings of the LCA lineage;
	// a group must match every term.
	Ancestors []string

	// StringencyHigh, StringencyMedium and StringencyLow filter by the
	// three virus-specificity confidence tiers.
	StringencyHigh   *bool
	StringencyMedium *bool
	StringencyLow    *bool

	// VirusSpecific filters by the derived virus-specific flag.
	VirusSpecific *bool

	// PhageClass is a case-insensitive substring of the phage/nonphage
	// classification ("phages_only", "np_only", "mixed").
	PhageClass *string

	// ProteinIDs keeps groups that contain any of the listed proteins.
	ProteinIDs []string

	// SpeciesNames keeps groups whose member proteins belong to species
	// matching the listed name substrings, combined per Mode.
	SpeciesNames []string

	// TaxonIDs keeps groups whose member proteins belong to the listed
	// taxa or their descendants, combined per Mode. Each id is expanded
	// through the taxonomy before the membership test.
	TaxonIDs []int32

	// Mode selects union or intersection semantics for SpeciesNames and
	// TaxonIDs. Zero value is ModeIntersection.
	Mode CombinationMode
}

// ProteinCriteria are the optional filters of a protein search.
type ProteinCriteria struct {
	// SpeciesNames keeps proteins of species matching any of the listed
	// name substrings.
	SpeciesNames []string

	// TaxonIDs restricts results to proteins of the listed taxa
	// (exact match, no descendant expansion).
	TaxonIDs []int32

	// VOGIDs restricts results to members of the listed groups.
	VOGIDs []string
}
