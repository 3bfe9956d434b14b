package iotaxa

import (
	"errors"
	"fmt"

	"github.com/gnames/gnlib"
)

var errNotConnected = errors.New("database operator is not connected")

// QueryError is returned when descendant expansion fails at the store
// level. It is distinct from taxonomy.UnknownTaxonError.
type QueryError struct {
	error
	gnlib.MessageBase
	TaxonID int32
}

// NewQueryError creates an error for a failed expansion query.
func NewQueryError(taxonID int32, cause error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Taxonomy Lookup Failed</title>
<warn>Could not expand taxonomy ID <em>%d</em>.</warn>

<em>How to fix:</em>
  1. Verify the database connection is active
  2. Check that the taxa table was loaded for this release
`,
		Vars: []any{taxonID},
	}

	return QueryError{
		error: fmt.Errorf("failed to expand taxon %d: %w",
			taxonID, cause),
		MessageBase: msgBase,
		TaxonID:     taxonID,
	}
}
