package search

// namedRange pairs a range with the criterion name used in error
// messages.
type namedRange struct {
	field string
	r     Range
}

// validateRanges rejects inverted pairs and negative bounds. Checks
// run in the declared order so the first bad pair names the error,
// independent of which field it applies to.
func validateRanges(pairs []namedRange) error {
	for _, p := range pairs {
		min, max := p.r.Min, p.r.Max
		if min != nil && max != nil && *max < *min {
			return NewInvalidRangeError(p.field, min, max)
		}
		if min != nil && *min < 0 {
			return NewInvalidRangeError(p.field, min, max)
		}
		if max != nil && *max < 0 {
			return NewInvalidRangeError(p.field, min, max)
		}
	}
	return nil
}

// validateUnion checks the preconditions of union mode: at least one
// of species/taxa present, and every supplied set carrying at least
// two distinct members. Intersection mode has no preconditions.
func validateUnion(
	mode CombinationMode,
	speciesNames []string,
	taxonIDs []int32,
) error {
	if mode != ModeUnion {
		return nil
	}

	if len(speciesNames) == 0 && len(taxonIDs) == 0 {
		return NewMissingUnionTargetError()
	}

	if len(speciesNames) > 0 {
		if n := distinctStrings(speciesNames); n < 2 {
			return NewUnionCardinalityError("species", n)
		}
	}

	if len(taxonIDs) > 0 {
		if n := distinctInt32s(taxonIDs); n < 2 {
			return NewUnionCardinalityError("taxonomy IDs", n)
		}
	}

	return nil
}

// Validate checks a VOG criteria bag without compiling it. It is a
// pure function of its input; the Compiler runs the same checks before
// any membership resolution.
func (c VOGCriteria) Validate() error {
	err := validateRanges([]namedRange{
		{"species count", c.SpeciesCount},
		{"protein count", c.ProteinCount},
		{"total genomes", c.GenomesTotal},
		{"group genomes", c.GenomesInGroup},
	})
	if err != nil {
		return err
	}

	return validateUnion(c.Mode, c.SpeciesNames, c.TaxonIDs)
}

func distinctStrings(ss []string) int {
	seen := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		seen[s] = struct{}{}
	}
	return len(seen)
}

func distinctInt32s(ii []int32) int {
	seen := make(map[int32]struct{}, len(ii))
	for _, i := range ii {
		seen[i] = struct{}{}
	}
	return len(seen)
}
