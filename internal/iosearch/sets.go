package iosearch

import (
	"slices"

	"github.com/vogtools/vogdb/pkg/search"
)

type stringSet map[string]struct{}

func toSet(ids []string) stringSet {
	res := make(stringSet, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res
}

// combineSets merges per-item membership sets into one sorted id
// list. Union keeps ids present in any set, intersection only ids
// present in every set. No sets means no ids, never "all ids".
func combineSets(sets []stringSet, mode search.CombinationMode) []string {
	if len(sets) == 0 {
		return []string{}
	}

	var merged stringSet
	switch mode {
	case search.ModeUnion:
		merged = make(stringSet)
		for _, s := range sets {
			for id := range s {
				merged[id] = struct{}{}
			}
		}
	default:
		merged = make(stringSet, len(sets[0]))
		for id := range sets[0] {
			merged[id] = struct{}{}
		}
		for _, s := range sets[1:] {
			for id := range merged {
				if _, ok := s[id]; !ok {
					delete(merged, id)
				}
			}
		}
	}

	res := make([]string, 0, len(merged))
	for id := range merged {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}
