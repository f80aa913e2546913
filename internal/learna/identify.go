package learna

// GetR1 returns every combination of exactly one node id
// (CLearning_A.py's get_r1).
func GetR1(combos []Combination) []Combination {
	var out []Combination
	for _, c := range combos {
		if len(c) == 1 {
			out = append(out, c)
		}
	}
	return out
}

// IdentifyFromLargerR folds every r>1 combination into the accepted set
// only if none of its members already appears in a singleton (or
// previously accepted) combination; members that do overlap are peeled
// off into forRetries for individual re-examination. Ported from
// CLearning_A.py's identify_from_larger_r.
func IdentifyFromLargerR(all, r1Combinations []Combination) (combinations, forRetries []Combination) {
	finiteUnion := FiniteUnion(r1Combinations)
	combinations = append([]Combination{}, r1Combinations...)

	for _, combo := range all {
		if !combo.Intersects(finiteUnion) {
			if containsCombination(combinations, combo) {
				continue
			}
			combinations = append(combinations, combo)
			for _, id := range combo {
				finiteUnion[id] = true
			}
			continue
		}
		// Part of combo already confirmed to matter; the rest (the
		// "for_retry" remainder) still needs its own singleton trial
		// before we know whether IT also matters or just rode along.
		retry := combo.Difference(finiteUnion)
		if len(retry) > 0 && !containsCombination(forRetries, retry) {
			forRetries = append(forRetries, retry)
		}
	}
	return combinations, forRetries
}

// GetAlwaysExistingNodes returns, as singleton combinations, every
// mutable node id that never appears in any of combos — i.e. a node
// that was excluded from every failing (or passing) combination phase 1
// produced, which is itself evidence it belongs to the opposite class
// (CLearning_A.py's get_always_existing_nodes).
func GetAlwaysExistingNodes(combos []Combination, mutableIDs []int) []Combination {
	remaining := toSet(mutableIDs)
	for _, combo := range combos {
		present := toSet(combo)
		for id := range remaining {
			if present[id] {
				delete(remaining, id)
			}
		}
	}
	var out []Combination
	for id := range remaining {
		out = append(out, Combination{id})
	}
	return out
}

// JoinCombinationSets merges two combination lists, deduplicated by Key
// (CLearning_A.py's join_lists_of_sets).
func JoinCombinationSets(l1, l2 []Combination) []Combination {
	out := append([]Combination{}, l1...)
	for _, c := range l2 {
		if !containsCombination(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// RefineRetries narrows forRetries to the node ids not already covered
// by identifiedNodes, then replicates each survivor `replication` times
// as its own singleton combination so the next generation round gives it
// several independent chances to manifest a flip (CLearning_A.py's
// refine_retries; replication is its hardcoded 12, exposed here as a
// parameter bound to config.DefaultRetryReplication).
func RefineRetries(forRetries, identifiedNodes []Combination, replication int) []Combination {
	retryUnion := FiniteUnion(forRetries)
	identifiedUnion := FiniteUnion(identifiedNodes)

	var candidates []int
	seen := make(map[int]bool)
	for id := range retryUnion {
		if !identifiedUnion[id] && !seen[id] {
			candidates = append(candidates, id)
			seen[id] = true
		}
	}

	var out []Combination
	for _, id := range candidates {
		for i := 0; i < replication; i++ {
			out = append(out, Combination{id})
		}
	}
	return out
}
