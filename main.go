// Package main provides the vogdb CLI application.
// vogdb exposes searchable collections of viral ortholog groups (VOGs),
// species and proteins stored in PostgreSQL.
package main

import "github.com/vogtools/vogdb/cmd"

func main() {
	cmd.Execute()
}
