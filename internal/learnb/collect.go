package learnb

import (
	"fmt"
	"os"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/learna"
	"github.com/nccat/nccat/internal/walker"
)

// MutatedNodeSet is one identified node set's actual node values, pulled
// back out of every passing/failing sample learner B generated for it
// (CLearning_B.py's ids_set_to_nodes entries).
type MutatedNodeSet struct {
	SetInList    []int
	PassingNodes []NodeAtID
	FailingNodes []NodeAtID
}

// NodeAtID pairs a retrieved node with the id it was looked up by, since
// cast.Node carries no id of its own (ids live only in a walker.Result's
// sidecar maps).
type NodeAtID struct {
	ID   int
	Node cast.Node
}

// UpdateRunPaths folds phase 2b's freshly classified samples into the
// passing/failing combination-to-path indices learner A already built,
// so GetMutatedNodes can find every sample regardless of which phase
// produced it (CLearning_B.py's update_Xc2aps).
func UpdateRunPaths(grouped *generate.GroupedFiles, idToCombination map[int][]int, astsDir string, pc2ap, fc2ap learna.PathIndex) error {
	assign := func(ids []int, dst learna.PathIndex) error {
		for _, id := range ids {
			combo, ok := idToCombination[id]
			if !ok {
				return fmt.Errorf("learnb: %d not in id_to_combination", id)
			}
			key := learna.NewCombination(combo).Key()
			path := fmt.Sprintf("%s/ast__%d.json", astsDir, id)
			dst[key] = append(dst[key], path)
		}
		return nil
	}
	if err := assign(grouped.Passings, pc2ap); err != nil {
		return err
	}
	return assign(grouped.Failings, fc2ap)
}

// GetMutatedNodes retrieves, for every identified node set, the actual
// node objects at its member ids from each sample ast recorded in pc2ap
// and fc2ap (CLearning_B.py's get_mutated_nodes / get_nodes). A set with
// no passing and no failing sample (every sample was invalid) is left out
// of the result.
func GetMutatedNodes(identifiedNodes []learna.Combination, pc2ap, fc2ap learna.PathIndex) (map[string]*MutatedNodeSet, error) {
	out := make(map[string]*MutatedNodeSet, len(identifiedNodes))

	for _, combo := range identifiedNodes {
		key := combo.Key()
		set := &MutatedNodeSet{SetInList: append([]int{}, combo...)}

		passingPaths, hasPassing := pc2ap[key]
		failingPaths, hasFailing := fc2ap[key]
		if !hasPassing && !hasFailing {
			continue
		}

		if hasPassing {
			nodes, err := nodesAt(passingPaths, combo)
			if err != nil {
				return nil, err
			}
			set.PassingNodes = nodes
		}
		if hasFailing {
			nodes, err := nodesAt(failingPaths, combo)
			if err != nil {
				return nil, err
			}
			set.FailingNodes = nodes
		}
		out[key] = set
	}
	return out, nil
}

func nodesAt(paths []string, combo learna.Combination) ([]NodeAtID, error) {
	var nodes []NodeAtID
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		prog, err := cast.DecodeProgram(data)
		if err != nil {
			return nil, err
		}
		w := walker.Walk(prog)
		for _, id := range combo {
			n, ok := w.NodeOf[id]
			if !ok {
				return nil, fmt.Errorf("learnb: node id %d not found in %s", id, path)
			}
			nodes = append(nodes, NodeAtID{ID: id, Node: n})
		}
	}
	return nodes, nil
}
