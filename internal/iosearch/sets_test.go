package iosearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vogtools/vogdb/pkg/search"
)

func TestCombineSets(t *testing.T) {
	a := toSet([]string{"VOG00001", "VOG00002"})
	b := toSet([]string{"VOG00002", "VOG00003"})
	c := toSet([]string{"VOG00002"})

	tests := []struct {
		msg  string
		sets []stringSet
		mode search.CombinationMode
		res  []string
	}{
		{
			msg:  "no sets yield no ids",
			sets: nil,
			mode: search.ModeUnion,
			res:  []string{},
		},
		{
			msg:  "single set passes through",
			sets: []stringSet{a},
			mode: search.ModeIntersection,
			res:  []string{"VOG00001", "VOG00002"},
		},
		{
			msg:  "union merges",
			sets: []stringSet{a, b},
			mode: search.ModeUnion,
			res:  []string{"VOG00001", "VOG00002", "VOG00003"},
		},
		{
			msg:  "intersection keeps common",
			sets: []stringSet{a, b},
			mode: search.ModeIntersection,
			res:  []string{"VOG00002"},
		},
		{
			msg:  "three-way intersection",
			sets: []stringSet{a, b, c},
			mode: search.ModeIntersection,
			res:  []string{"VOG00002"},
		},
		{
			msg:  "empty set empties intersection",
			sets: []stringSet{a, toSet(nil)},
			mode: search.ModeIntersection,
			res:  []string{},
		},
		{
			msg:  "empty set is union identity",
			sets: []stringSet{a, toSet(nil)},
			mode: search.ModeUnion,
			res:  []string{"VOG00001", "VOG00002"},
		},
	}

	for _, v := range tests {
		res := combineSets(v.sets, v.mode)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestCombineSetsCommutative(t *testing.T) {
	a := toSet([]string{"VOG00001", "VOG00002"})
	b := toSet([]string{"VOG00002", "VOG00003"})

	for _, mode := range []search.CombinationMode{
		search.ModeIntersection, search.ModeUnion,
	} {
		assert.Equal(t,
			combineSets([]stringSet{a, b}, mode),
			combineSets([]stringSet{b, a}, mode),
			mode.String())
	}
}

func TestCombineSetsUnionSupersetOfIntersection(t *testing.T) {
	sets := []stringSet{
		toSet([]string{"VOG00001", "VOG00002", "VOG00005"}),
		toSet([]string{"VOG00002", "VOG00003", "VOG00005"}),
		toSet([]string{"VOG00002", "VOG00004", "VOG00005"}),
	}

	inter := combineSets(sets, search.ModeIntersection)
	union := combineSets(sets, search.ModeUnion)

	for _, id := range inter {
		assert.Contains(t, union, id)
	}
}
