package ioblob

import (
	"fmt"

	"github.com/gnames/gnlib"
	"github.com/vogtools/vogdb/pkg/blob"
)

// ReadError is returned when an artifact file exists but cannot be
// read or decompressed.
type ReadError struct {
	error
	gnlib.MessageBase
	Kind blob.Kind
	ID   string
}

// NewReadError creates an error for a failed artifact read.
func NewReadError(kind blob.Kind, id string, cause error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Artifact Read Failed</title>
<warn>Could not read the %s file for <em>%s</em>.</warn>

<em>How to fix:</em>
  1. Check file permissions under the data directory
  2. Re-download the release archive if the file is corrupt
`,
		Vars: []any{kind.String(), id},
	}

	return ReadError{
		error: fmt.Errorf("failed to read %s for %s: %w",
			kind, id, cause),
		MessageBase: msgBase,
		Kind:        kind,
		ID:          id,
	}
}
