// Package walker implements the AST walker (C2): a pre-order traversal
// that assigns stable node ids, records a type histogram, and harvests
// goto label names. Auxiliary data never touches the cast.Node structs
// themselves — it all lives in the Result's sidecar maps (spec.md Design
// Notes §9, SPEC_FULL.md §3).
package walker

import "github.com/nccat/nccat/internal/cast"

// Result is the output of one walk: everything downstream components
// (classifier, mutators, generator) need to look a node up by id or an id
// up by node, without ever storing that data on the AST itself.
type Result struct {
	IDOf     map[cast.Node]int
	NodeOf   map[int]cast.Node
	TypeOf   map[int]string
	ParentOf map[int]int // node id -> parent node id; root has no entry

	GotoLabels map[string]bool

	Count int // number of nodes visited, i.e. the next unassigned id
}

// Walk assigns ids 0..N-1 to every node reachable from root in pre-order
// and returns the sidecar maps describing the tree. The node-id counter is
// threaded through the recursion by return value, not by a shared mutable
// cell (the anti-pattern the original source uses and spec.md Design
// Notes §9 calls out to avoid).
func Walk(root cast.Node) *Result {
	res := &Result{
		IDOf:       make(map[cast.Node]int),
		NodeOf:     make(map[int]cast.Node),
		TypeOf:     make(map[int]string),
		ParentOf:   make(map[int]int),
		GotoLabels: make(map[string]bool),
	}
	walk(root, -1, 0, res)
	res.Count = len(res.NodeOf)
	return res
}

func walk(n cast.Node, parentID int, nextID int, res *Result) int {
	if n == nil {
		return nextID
	}
	id := nextID
	nextID++

	res.IDOf[n] = id
	res.NodeOf[id] = n
	res.TypeOf[id] = n.Kind()
	if parentID >= 0 {
		res.ParentOf[id] = parentID
	}
	if lbl, ok := n.(*cast.Label); ok {
		res.GotoLabels[lbl.Name] = true
	}

	for _, child := range n.Children() {
		nextID = walk(child, id, nextID, res)
	}
	return nextID
}

// IDsByType returns every node id whose recorded _nodetype matches kind.
func (r *Result) IDsByType(kind string) []int {
	var out []int
	for id, k := range r.TypeOf {
		if k == kind {
			out = append(out, id)
		}
	}
	return out
}
