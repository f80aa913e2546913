// Package learna implements learner A (C6 / phase 2a): identifying which
// mutable node ids actually drive the oracle's pass/fail flip, from the
// combinations phase 1 already generated and classified. Ported
// set-operation-for-set-operation from CLearning_A.py, using
// map[int]bool sets and Combination keys in place of Python's
// hashable frozensets.
package learna

import (
	"sort"
	"strconv"
	"strings"
)

// Combination is a set of node ids, always kept sorted so two
// combinations with the same members compare equal via Key().
type Combination []int

func NewCombination(ids []int) Combination {
	c := make(Combination, len(ids))
	copy(c, ids)
	sort.Ints(c)
	return c
}

// Key is the canonical string form used as a map key everywhere the
// original source relies on Python's set-of-frozensets hashability.
func (c Combination) Key() string {
	parts := make([]string, len(c))
	for i, id := range c {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func (c Combination) Contains(id int) bool {
	for _, v := range c {
		if v == id {
			return true
		}
	}
	return false
}

// Intersects reports whether c shares any member with other.
func (c Combination) Intersects(other map[int]bool) bool {
	for _, id := range c {
		if other[id] {
			return true
		}
	}
	return false
}

// Difference returns the members of c not present in other.
func (c Combination) Difference(other map[int]bool) Combination {
	var out Combination
	for _, id := range c {
		if !other[id] {
			out = append(out, id)
		}
	}
	return out
}

// containsCombination dedups combos by Key(), reporting whether target is already
// present (CLearning_A.py's repeated `set(combination) in combinations`
// / `... not in passings` membership checks).
func containsCombination(set []Combination, target Combination) bool {
	key := target.Key()
	for _, c := range set {
		if c.Key() == key {
			return true
		}
	}
	return false
}

// FiniteUnion merges every combination in combos into one id set
// (CLearning_A.py's get_finite_union).
func FiniteUnion(combos []Combination) map[int]bool {
	out := make(map[int]bool)
	for _, c := range combos {
		for _, id := range c {
			out[id] = true
		}
	}
	return out
}
