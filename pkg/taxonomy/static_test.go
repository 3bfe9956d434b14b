package taxonomy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vogtools/vogdb/pkg/taxonomy"
)

func testTree() *taxonomy.Static {
	// 1
	// ├── 2
	// │   ├── 4
	// │   └── 5
	// └── 3
	return taxonomy.NewStatic(map[int32]int32{
		1: 1,
		2: 1,
		3: 1,
		4: 2,
		5: 2,
	})
}

func TestStaticExpand(t *testing.T) {
	s := testTree()
	ctx := context.Background()

	tests := []struct {
		msg     string
		taxonID int32
		res     []int32
	}{
		{"root", 1, []int32{1, 2, 3, 4, 5}},
		{"inner node", 2, []int32{2, 4, 5}},
		{"leaf returns itself", 4, []int32{4}},
		{"leaf without children map entry", 3, []int32{3}},
	}

	for _, v := range tests {
		res, err := s.Expand(ctx, v.taxonID)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestStaticExpandUnknown(t *testing.T) {
	s := testTree()

	_, err := s.Expand(context.Background(), 42)

	var unknown taxonomy.UnknownTaxonError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, int32(42), unknown.TaxonID)
}

func TestStaticExpandIdempotent(t *testing.T) {
	s := testTree()
	ctx := context.Background()

	// Expanding every member of an expansion and unioning the results
	// adds nothing new: the descendant closure is already maximal.
	for _, root := range []int32{1, 2, 4} {
		closure, err := s.Expand(ctx, root)
		require.NoError(t, err)

		union := make(map[int32]struct{})
		for _, id := range closure {
			res, err := s.Expand(ctx, id)
			require.NoError(t, err)
			for _, d := range res {
				union[d] = struct{}{}
			}
		}

		assert.Len(t, union, len(closure), "taxon %d", root)
		for _, id := range closure {
			assert.Contains(t, union, id, "taxon %d", root)
		}
	}
}

func TestStaticExpandDeterministic(t *testing.T) {
	s := testTree()
	ctx := context.Background()

	first, err := s.Expand(ctx, 1)
	require.NoError(t, err)

	for range 5 {
		res, err := s.Expand(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, first, res)
	}
}
