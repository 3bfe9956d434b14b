package iosearch

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// NotConnectedError is returned when a query engine is created before
// the database operator connected its pool.
type NotConnectedError struct {
	error
	gnlib.MessageBase
}

// NewNotConnectedError creates an error for a missing connection pool.
func NewNotConnectedError() error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Database Not Connected</title>
<warn>Search attempted without a database connection.</warn>

<em>How to fix:</em>
  1. Check that PostgreSQL is running
  2. Verify the connection settings in ~/.config/vogdb/config.yaml
`,
	}

	return NotConnectedError{
		error:       fmt.Errorf("operator pool is not initialized"),
		MessageBase: msgBase,
	}
}

// GORMConnectionError is returned when the ORM session cannot be
// opened over an already connected pool.
type GORMConnectionError struct {
	error
	gnlib.MessageBase
}

// NewGORMConnectionError creates an error for a failed ORM session.
func NewGORMConnectionError(cause error) error {
	msgBase := gnlib.MessageBase{
		Msg: `<title>Query Session Failed</title>
<warn>Could not open an ORM session over the connection pool.</warn>

<em>How to fix:</em>
  1. Check the database logs for details
  2. Re-run with <em>--log-level debug</em> for the full trace
`,
	}

	return GORMConnectionError{
		error:       fmt.Errorf("failed to open gorm session: %w", cause),
		MessageBase: msgBase,
	}
}
