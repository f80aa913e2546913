package mutate

import (
	"math/rand/v2"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/walker"
)

// Apply mutates every id in targetIDs on root in place (root must already
// be a clone the caller owns exclusively) and reports whether at least one
// of them actually changed. A target id that the classifier marked
// immutable, or whose mutator found no legal alternative (e.g. a Constant
// whose whole pool is excluded by avoid), contributes nothing and is not
// an error — callers discard a variant where changed is false, matching
// the original source's equality check after mutation (CAstMutator.py's
// ast_mutator / node_mutator).
func Apply(root cast.Node, targetIDs map[int]bool, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, rng *rand.Rand) (changed bool) {
	for id := range targetIDs {
		n, ok := w.NodeOf[id]
		if !ok || !cls.IsMutable(id) || !dict.IsHandled(n.Kind()) {
			continue
		}
		if applyOne(root, n, id, w, lang, rng) {
			changed = true
		}
	}
	return changed
}

// applyOne dispatches on node kind exactly as select_mutator does: Constant
// goes to the constant mutator, {UnaryOp,BinaryOp,Assignment} to the
// operator mutators, everything else handled to the qualifier/identifier-
// type/goto/loop-control mutators. Break/Continue change kind, so they are
// rewritten through replaceChild rather than in place.
func applyOne(root cast.Node, n cast.Node, id int, w *walker.Result, lang *config.LanguageTable, rng *rand.Rand) bool {
	switch t := n.(type) {
	case *cast.Constant:
		declaredType := declaredTypeOf(n, id, w)
		return Constant(rng, t, declaredType, map[string]bool{})
	case *cast.UnaryOp:
		return Unary(rng, t, lang)
	case *cast.BinaryOp:
		return Binary(rng, t, lang)
	case *cast.Assignment:
		return Assignment(rng, t, lang)
	case *cast.Decl:
		return QualifierOnDecl(rng, t, lang)
	case *cast.Typename:
		return QualifierOnTypename(rng, t, lang)
	case *cast.IdentifierType:
		return IdentifierType(rng, t, lang)
	case *cast.Goto:
		return Goto(rng, t, w.GotoLabels)
	case *cast.Break, *cast.Continue:
		replacement := LoopControlFlow(n)
		if parentID, ok := w.ParentOf[id]; ok {
			if parent, ok := w.NodeOf[parentID]; ok {
				return replaceChild(parent, n, replacement)
			}
		}
		return false
	default:
		return false
	}
}

// declaredTypeOf finds the type name to categorize a Constant by: its own
// Type field, unless it is the initializer of a Decl, in which case the
// Decl's declared IdentifierType names take precedence (ConstantMutator.py's
// valType = ' '.join(parent['type']['type']['names']) when the parent is a
// Decl, else node['type']).
func declaredTypeOf(n cast.Node, id int, w *walker.Result) string {
	c := n.(*cast.Constant)
	parentID, ok := w.ParentOf[id]
	if !ok {
		return c.Type
	}
	decl, ok := w.NodeOf[parentID].(*cast.Decl)
	if !ok {
		return c.Type
	}
	td, ok := decl.Type.(*cast.TypeDecl)
	if !ok {
		return c.Type
	}
	it, ok := td.Type.(*cast.IdentifierType)
	if !ok || len(it.Names) == 0 {
		return c.Type
	}
	name := it.Names[0]
	for _, n := range it.Names[1:] {
		name += " " + n
	}
	return name
}

// replaceChild rewrites the single slot of parent holding old to new,
// covering every statement-container slot a Break or Continue can occupy.
// Reports whether a slot was found and rewritten.
func replaceChild(parent cast.Node, old, new cast.Node) bool {
	switch p := parent.(type) {
	case *cast.Program:
		return replaceInSlice(p.Decls, old, new)
	case *cast.Compound:
		return replaceInSlice(p.Items, old, new)
	case *cast.If:
		if p.Then == old {
			p.Then = new
			return true
		}
		if p.IfFalse == old {
			p.IfFalse = new
			return true
		}
	case *cast.For:
		if p.Stmt == old {
			p.Stmt = new
			return true
		}
	case *cast.While:
		if p.Stmt == old {
			p.Stmt = new
			return true
		}
	case *cast.DoWhile:
		if p.Stmt == old {
			p.Stmt = new
			return true
		}
	case *cast.Label:
		if p.Stmt == old {
			p.Stmt = new
			return true
		}
	case *cast.FuncDef:
		if p.Body == old {
			p.Body = new
			return true
		}
	}
	return false
}

func replaceInSlice(items []cast.Node, old, new cast.Node) bool {
	for i, it := range items {
		if it == old {
			items[i] = new
			return true
		}
	}
	return false
}
