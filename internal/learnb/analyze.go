package learnb

import (
	"fmt"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/walker"
)

// Mutation records, for one node id, every distinct value it took on
// across the passing and failing samples, plus its value in the
// original ast_0 (CLearning_B.py's ids_set_to_mutations entries).
type Mutation struct {
	Passings []string
	Failings []string
	Original string
}

// SetMutations is one identified node set's per-node-id breakdown.
type SetMutations map[string]*Mutation

// AnalyzeMutatedNodes compares every retrieved node against its
// counterpart in ast0 and records what changed (CLearning_B.py's
// analyze_mutated_nodes). Node kinds with no analyzer (select_analyzer's
// fall-through) are silently skipped, matching the original.
func AnalyzeMutatedNodes(ast0 cast.Node, nodesBySet map[string]*MutatedNodeSet) (map[string]SetMutations, error) {
	w0 := walker.Walk(ast0)

	out := make(map[string]SetMutations, len(nodesBySet))

	for setKey, set := range nodesBySet {
		mutations := make(SetMutations)
		out[setKey] = mutations

		record := func(na NodeAtID, isFailing bool) error {
			ast0Node, ok := w0.NodeOf[na.ID]
			if !ok {
				return fmt.Errorf("learnb: node id %d not found in original ast", na.ID)
			}
			idKey := fmt.Sprintf("%d", na.ID)
			m, ok := mutations[idKey]
			if !ok {
				m = &Mutation{}
				mutations[idKey] = m
			}

			result, original, handled := analyze(na.Node, ast0Node)
			if !handled {
				return nil
			}
			if m.Original == "" {
				m.Original = original
			}
			if result == "" {
				return nil
			}
			if isFailing {
				if !containsString(m.Failings, result) {
					m.Failings = append(m.Failings, result)
				}
			} else {
				if !containsString(m.Passings, result) {
					m.Passings = append(m.Passings, result)
				}
			}
			return nil
		}

		for _, n := range set.PassingNodes {
			if err := record(n, false); err != nil {
				return nil, err
			}
		}
		for _, n := range set.FailingNodes {
			if err := record(n, true); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
