package search

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// InvalidRangeError is returned when a numeric range pair is inverted
// or carries a negative bound. It is detected before any query runs.
type InvalidRangeError struct {
	error
	gnlib.MessageBase
	Field string
}

// NewInvalidRangeError creates an error for a bad min/max pair.
func NewInvalidRangeError(field string, min, max *int) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Invalid Range</title>
<warn>The %s range is invalid.</warn>

A range requires <em>0 <= min <= max</em>.
`,
		Vars: []any{field},
	}

	return InvalidRangeError{
		error: fmt.Errorf("invalid %s range: min %s, max %s",
			field, fmtBound(min), fmtBound(max)),
		MessageBase: msgBase,
		Field:       field,
	}
}

// MissingUnionTargetError is returned when union mode is requested
// without a species or taxon criterion to apply it to.
type MissingUnionTargetError struct {
	error
	gnlib.MessageBase
}

// NewMissingUnionTargetError creates an error for a degenerate union
// request.
func NewMissingUnionTargetError() error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Missing Union Target</title>
<warn>Union mode was requested, but no species or taxonomy IDs were provided.</warn>
`,
		Vars: nil,
	}

	return MissingUnionTargetError{
		error: fmt.Errorf(
			"union requested without species or taxon criteria"),
		MessageBase: msgBase,
	}
}

// UnionCardinalityError is returned when union mode is requested over
// a criterion set with fewer than two distinct members.
type UnionCardinalityError struct {
	error
	gnlib.MessageBase
	Field string
	Count int
}

// NewUnionCardinalityError creates an error for a union over fewer
// than two items.
func NewUnionCardinalityError(field string, count int) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Union Needs Two Items</title>
<warn>Union mode was requested, but only %d distinct %s given.</warn>

A union over a single item is meaningless; drop the union flag or add items.
`,
		Vars: []any{count, field},
	}

	return UnionCardinalityError{
		error: fmt.Errorf("union over %d %s, need at least 2",
			count, field),
		MessageBase: msgBase,
		Field:       field,
		Count:       count,
	}
}

// InvalidTaxonError is returned when a requested taxon id is unknown
// to the taxonomy hierarchy. The whole search fails; no partial
// execution happens.
type InvalidTaxonError struct {
	error
	gnlib.MessageBase
	TaxonID int32
}

// NewInvalidTaxonError creates an error naming the offending taxon id.
func NewInvalidTaxonError(taxonID int32, cause error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Invalid Taxonomy ID</title>
<warn>The provided taxonomy ID <em>%d</em> is invalid.</warn>
`,
		Vars: []any{taxonID},
	}

	return InvalidTaxonError{
		error:       fmt.Errorf("invalid taxon %d: %w", taxonID, cause),
		MessageBase: msgBase,
		TaxonID:     taxonID,
	}
}

// NoIdentifiersError is returned when a summary fetch is called with
// an empty identifier list.
type NoIdentifiersError struct {
	error
	gnlib.MessageBase
}

// NewNoIdentifiersError creates an error for an empty id list.
func NewNoIdentifiersError() error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>No Identifiers</title>
<warn>No IDs were given.</warn>
`,
		Vars: nil,
	}

	return NoIdentifiersError{
		error:       fmt.Errorf("no ids were given"),
		MessageBase: msgBase,
	}
}

// StoreError wraps any underlying relational-access failure that is
// not otherwise classified. It is never retried at this layer.
type StoreError struct {
	error
	gnlib.MessageBase
}

// NewStoreError wraps a store-level failure.
func NewStoreError(cause error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Database Query Failed</title>
<warn>The search could not be executed against the database.</warn>

<em>How to fix:</em>
  1. Verify the database connection is active
  2. Check that the database was populated for this release
  3. Check PostgreSQL logs for query errors
`,
		Vars: nil,
	}

	return StoreError{
		error:       fmt.Errorf("store failure: %w", cause),
		MessageBase: msgBase,
	}
}

func fmtBound(b *int) string {
	if b == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *b)
}
