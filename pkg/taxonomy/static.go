package taxonomy

import (
	"context"
	"slices"
)

// Static is a map-backed Resolver over a fixed parent→children
// adjacency. It serves tests and small embedded snapshots where a
// database-backed hierarchy is not available.
type Static struct {
	children map[int32][]int32
	known    map[int32]struct{}
}

// NewStatic builds a Static resolver from a child→parent relation.
// The root may point to itself.
func NewStatic(parents map[int32]int32) *Static {
	res := &Static{
		children: make(map[int32][]int32),
		known:    make(map[int32]struct{}),
	}
	for child, parent := range parents {
		res.known[child] = struct{}{}
		res.known[parent] = struct{}{}
		if child == parent {
			continue
		}
		res.children[parent] = append(res.children[parent], child)
	}
	return res
}

// Expand implements Resolver.
func (s *Static) Expand(
	_ context.Context,
	taxonID int32,
) ([]int32, error) {
	if _, ok := s.known[taxonID]; !ok {
		return nil, NewUnknownTaxonError(taxonID)
	}

	seen := map[int32]struct{}{taxonID: {}}
	queue := []int32{taxonID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range s.children[cur] {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			queue = append(queue, child)
		}
	}

	res := make([]int32, 0, len(seen))
	for id := range seen {
		res = append(res, id)
	}
	slices.Sort(res)
	return res, nil
}
