package iodb

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// ConnectionError is returned when database connection fails.
type ConnectionError struct {
	error
	gnlib.MessageBase
}

// NewConnectionError creates a connection error with user-friendly message.
func NewConnectionError(
	host string, port int, database, user string, cause error,
) error {
	userBase := gnlib.NewMessage(
		`<title>Database Connection Failed</title>

<warning>Could not connect to PostgreSQL database.</warning>

<em>Possible causes:</em>
  • PostgreSQL is not running
  • Database configuration is incorrect
  • Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>

  3. Check your configuration file:
     <em>~/.config/vogdb/config.yaml</em>

  4. Review connection settings:
     Host: %s
     Port: %d
     Database: %s
     User: %s
`,
		[]any{
			host, port,
			host, user,
			host, port, database, user,
		},
	)

	return ConnectionError{
		error: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, cause),
		MessageBase: userBase,
	}
}

// NotConnectedError is returned when an operation runs before Connect.
type NotConnectedError struct {
	error
	gnlib.MessageBase
}

// NewNotConnectedError creates an error for a missing connection pool.
func NewNotConnectedError() error {
	userBase := gnlib.NewMessage(
		`<title>Database Not Connected</title>

<warning>A database operation ran before a connection was established.</warning>
`,
		nil,
	)

	return NotConnectedError{
		error:       fmt.Errorf("database operator is not connected"),
		MessageBase: userBase,
	}
}

// TableCheckError is returned when checking for tables fails.
type TableCheckError struct {
	error
	gnlib.MessageBase
}

// NewTableCheckError creates an error for when table existence check fails.
func NewTableCheckError(cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Database Check Failed</title>

<warning>Could not verify database state.</warning>
`,
		nil,
	)

	return TableCheckError{
		error: fmt.Errorf(
			"failed to check database tables: %w", cause),
		MessageBase: userBase,
	}
}
