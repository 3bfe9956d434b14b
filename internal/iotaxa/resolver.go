// Package iotaxa implements the taxonomy.Resolver contract over the
// taxa table of the relational store. The hierarchy is a read-only
// snapshot loaded by the bulk loader; expansion walks parent links
// with a recursive CTE.
package iotaxa

import (
	"context"
	"slices"

	"github.com/vogtools/vogdb/pkg/db"
	"github.com/vogtools/vogdb/pkg/taxonomy"
)

type resolver struct {
	operator db.Operator
}

// NewResolver creates a taxonomy resolver backed by the taxa table.
func NewResolver(op db.Operator) taxonomy.Resolver {
	return &resolver{operator: op}
}

// Expand returns the taxon and all its descendants, intermediate
// nodes included. The anchor row is the taxon itself, so an empty
// result means the id is unknown to the snapshot - a leaf taxon still
// yields one row.
func (r *resolver) Expand(
	ctx context.Context,
	taxonID int32,
) ([]int32, error) {
	pool := r.operator.Pool()
	if pool == nil {
		return nil, NewQueryError(taxonID, errNotConnected)
	}

	query := `
WITH RECURSIVE descendants AS (
	SELECT taxon_id
	FROM taxa
	WHERE taxon_id = $1
	UNION ALL
	SELECT t.taxon_id
	FROM taxa t
	JOIN descendants d ON t.parent_id = d.taxon_id
	WHERE t.taxon_id != t.parent_id
)
SELECT taxon_id FROM descendants`

	rows, err := pool.Query(ctx, query, taxonID)
	if err != nil {
		return nil, NewQueryError(taxonID, err)
	}
	defer rows.Close()

	var res []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, NewQueryError(taxonID, err)
		}
		res = append(res, id)
	}
	if err := rows.Err(); err != nil {
		return nil, NewQueryError(taxonID, err)
	}

	if len(res) == 0 {
		return nil, taxonomy.NewUnknownTaxonError(taxonID)
	}

	slices.Sort(res)
	return res, nil
}
