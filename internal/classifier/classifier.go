// Package classifier implements the mutability classifier (C3): the
// guard table in spec.md §4.2, including the two contextual guards
// (a For loop's `next` slot, and any node reached through a printf
// argument list) that cannot be decided from a node's own shape alone and
// must be threaded down the recursion as traversal context.
package classifier

import (
	"sort"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/walker"
)

// Result is the set of node ids classified mutable, keyed for O(1)
// membership tests and also available as a sorted slice.
type Result struct {
	Mutable map[int]bool
	IDs     []int
}

func (r *Result) IsMutable(id int) bool { return r.Mutable[id] }

// walkContext carries the two contextual guards from spec.md §4.2 down
// the recursion as plain immutable fields on a value receiver — never as
// shared mutable state (the original source threads is_loop/is_print as
// shared dict/bool state across the whole recursive call; spec.md Design
// Notes §9 calls out the equivalent anti-patterns for parent pointers and
// node-id counters, and this is the same family of fix).
type walkContext struct {
	inForNext bool
	inPrint   bool
}

// Classify walks the already-walked AST (w must come from walker.Walk on
// the same root) and marks every node mutable or not per spec.md §4.2.
func Classify(root cast.Node, w *walker.Result, lang *config.LanguageTable, dict *config.SharedDict) *Result {
	res := &Result{Mutable: make(map[int]bool)}
	mark(root, walkContext{}, w, lang, dict, res)
	for id, ok := range res.Mutable {
		if ok {
			res.IDs = append(res.IDs, id)
		}
	}
	sort.Ints(res.IDs)
	return res
}

func mark(n cast.Node, ctx walkContext, w *walker.Result, lang *config.LanguageTable, dict *config.SharedDict, res *Result) {
	if n == nil {
		return
	}
	id, ok := w.IDOf[n]
	if !ok {
		// Not part of the walked tree; nothing to classify or descend into.
		return
	}

	res.Mutable[id] = isMutable(n, id, ctx, w, lang, dict)

	descendChildren(n, ctx, w, lang, dict, res)
}

// descendChildren recurses into n's children, special-casing the two
// node kinds that introduce contextual guards: a For loop's `next` slot,
// and a printf FuncCall's argument list.
func descendChildren(n cast.Node, ctx walkContext, w *walker.Result, lang *config.LanguageTable, dict *config.SharedDict, res *Result) {
	switch t := n.(type) {
	case *cast.For:
		mark(t.Init, ctx, w, lang, dict, res)
		mark(t.Cond, ctx, w, lang, dict, res)
		mark(t.Next, walkContext{inForNext: true, inPrint: ctx.inPrint}, w, lang, dict, res)
		mark(t.Stmt, ctx, w, lang, dict, res)
	case *cast.FuncCall:
		mark(t.Name, ctx, w, lang, dict, res)
		if t.Args != nil {
			name, _ := t.Name.(*cast.ID)
			isPrint := ctx.inPrint || (name != nil && name.Name == "printf")
			mark(t.Args, walkContext{inForNext: ctx.inForNext, inPrint: isPrint}, w, lang, dict, res)
		}
	default:
		for _, c := range n.Children() {
			mark(c, ctx, w, lang, dict, res)
		}
	}
}

func isMutable(n cast.Node, id int, ctx walkContext, w *walker.Result, lang *config.LanguageTable, dict *config.SharedDict) bool {
	if ctx.inForNext || ctx.inPrint {
		return false
	}
	if !dict.IsHandled(n.Kind()) {
		return false
	}

	switch t := n.(type) {
	case *cast.Decl:
		return len(t.Quals) > 0
	case *cast.Typename:
		return len(t.Quals) > 0
	case *cast.IdentifierType:
		return len(t.Names) >= 2
	case *cast.Goto:
		return len(w.GotoLabels) >= 2
	case *cast.UnaryOp:
		_, ok := lang.OperatorClassOf(t.Op)
		return ok
	case *cast.BinaryOp:
		_, ok := lang.OperatorClassOf(t.Op)
		return ok
	case *cast.Assignment:
		if t.Op == "=" {
			return false
		}
		_, ok := lang.OperatorClassOf(t.Op)
		return ok
	case *cast.Constant:
		parentID, hasParent := w.ParentOf[id]
		if hasParent && w.TypeOf[parentID] == "Return" {
			return false
		}
		return true
	case *cast.ID:
		return lang.IsBuiltin(t.Name)
	case *cast.Break, *cast.Continue:
		return true
	default:
		// Structural container kinds (Compound, If, Struct, ...) reached
		// to get to the kinds above are handled-types but never
		// themselves selected as a mutation site.
		return false
	}
}
