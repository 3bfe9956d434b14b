package cmd

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// BadTaxonIDError is returned when a taxon identifier argument is not
// a number.
type BadTaxonIDError struct {
	error
	gnlib.MessageBase
	Arg string
}

// NewBadTaxonIDError creates an error for a non-numeric taxon id
// argument.
func NewBadTaxonIDError(arg string, err error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Bad Taxon ID</title>
<warn>The argument <em>%s</em> is not a taxon ID.</warn>

Taxon IDs are NCBI taxonomy numbers, for example <em>10239</em>.
`,
		Vars: []any{arg},
	}

	return BadTaxonIDError{
		error:       fmt.Errorf("bad taxon id %q: %w", arg, err),
		MessageBase: msgBase,
		Arg:         arg,
	}
}
