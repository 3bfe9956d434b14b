// Package blob defines the capability for fetching large precomputed
// artifacts (HMM profiles, multiple sequence alignments) that live as
// compressed flat files outside the relational store.
package blob

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// Kind selects the artifact type to fetch.
type Kind int

const (
	// HMM is a Hidden Markov Model profile of a VOG.
	HMM Kind = iota
	// MSA is a multiple sequence alignment of a VOG.
	MSA
)

// String returns a short human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case HMM:
		return "HMM"
	case MSA:
		return "MSA"
	default:
		return "unknown"
	}
}

// Reader fetches artifacts by VOG identifier. Identifiers are
// uppercased before lookup; files follow a fixed naming convention.
type Reader interface {
	// Fetch returns the decompressed artifact content for one id.
	// A missing file yields NotFoundError, distinct from read errors.
	Fetch(kind Kind, id string) (string, error)

	// FetchBatch resolves each id independently and returns a
	// best-effort partial result keyed by id. A per-id not-found never
	// aborts sibling lookups; other read errors do.
	FetchBatch(kind Kind, ids []string) (map[string]string, error)
}

// NotFoundError is returned when no artifact file exists for an id.
type NotFoundError struct {
	error
	gnlib.MessageBase
	Kind Kind
	ID   string
}

// NewNotFoundError creates an error for a missing artifact file.
func NewNotFoundError(kind Kind, id string, cause error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Artifact Not Found</title>
<warn>No %s file exists for <em>%s</em>.</warn>

<em>How to fix:</em>
  1. Check the id against the output of <em>vogdb search vog</em>
  2. Verify the data directory is complete for this release
`,
		Vars: []any{kind.String(), id},
	}

	return NotFoundError{
		error:       fmt.Errorf("no %s for %s: %w", kind, id, cause),
		MessageBase: msgBase,
		Kind:        kind,
		ID:          id,
	}
}
