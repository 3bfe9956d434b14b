// Package vogdb holds application-wide metadata and high-level
// lifecycle contracts for the VOG database service.
package vogdb

import "context"

var (
	// Version is set by the build via ldflags.
	Version = "v0.1.0"
	// Build is a timestamp of the build, set via ldflags.
	Build = "n/a"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates the initial database schema using GORM AutoMigrate.
	// Also applies collation settings for deterministic identifier sorting.
	Create(ctx context.Context) error

	// Migrate updates the database schema to the latest version.
	Migrate(ctx context.Context) error
}
