package ioschema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vogtools/vogdb/internal/iodb"
	"github.com/vogtools/vogdb/internal/ioschema"
	"github.com/vogtools/vogdb/internal/iotesting"
)

func TestCreate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig()))
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))

	sm := ioschema.NewManager(op)
	require.NoError(t, sm.Create(ctx))

	hasTables, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, hasTables)

	// Create is idempotent over an existing schema.
	assert.NoError(t, sm.Migrate(ctx))
}

func TestCreateNotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	sm := ioschema.NewManager(op)

	err := sm.Create(context.Background())
	assert.Error(t, err)
}
