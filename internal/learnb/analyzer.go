package learnb

import "github.com/nccat/nccat/internal/cast"

// analyze reports the mutated node's changed value against the original
// ast_0 node, and the original's own value, or ok=false for a node kind
// with no analyzer (NodeAnalyzer.py's select_analyzer dispatch table).
func analyze(node, ast0Node cast.Node) (result, original string, ok bool) {
	switch n := node.(type) {
	case *cast.Constant:
		o := ast0Node.(*cast.Constant)
		return constantAnalyzer(n, o)
	case *cast.UnaryOp:
		o := ast0Node.(*cast.UnaryOp)
		return operatorAnalyzer(n.Op, o.Op)
	case *cast.BinaryOp:
		o := ast0Node.(*cast.BinaryOp)
		return operatorAnalyzer(n.Op, o.Op)
	case *cast.Assignment:
		o := ast0Node.(*cast.Assignment)
		return operatorAnalyzer(n.Op, o.Op)
	case *cast.IdentifierType:
		o := ast0Node.(*cast.IdentifierType)
		return identifierTypeAnalyzer(n, o)
	case *cast.Goto:
		o := ast0Node.(*cast.Goto)
		return gotoAnalyzer(n, o)
	case *cast.Typename:
		o := ast0Node.(*cast.Typename)
		return qualifierAnalyzer(n.Quals, o.Quals)
	case *cast.Decl:
		o := ast0Node.(*cast.Decl)
		return qualifierAnalyzer(n.Quals, o.Quals)
	default:
		return "", "", false
	}
}

func constantAnalyzer(node, ast0Node *cast.Constant) (value, original string, ok bool) {
	if node.Value != ast0Node.Value {
		value = node.Value
	}
	return value, ast0Node.Value, true
}

func operatorAnalyzer(op, ast0Op string) (result, original string, ok bool) {
	if op != ast0Op {
		result = op
	}
	return result, ast0Op, true
}

func identifierTypeAnalyzer(node, ast0Node *cast.IdentifierType) (typeName, original string, ok bool) {
	if len(node.Names) == 0 || len(ast0Node.Names) == 0 {
		return "", "", false
	}
	if node.Names[0] != ast0Node.Names[0] {
		typeName = node.Names[0]
	}
	return typeName, ast0Node.Names[0], true
}

// gotoAnalyzer compares the mutated Goto's own label against the
// original ast_0 Goto's label. NodeAnalyzer.py's goto_analyzer instead
// compares against an undefined name (ast_0_node_node_label), a bug this
// port fixes by comparing node.Name against ast0Node.Name directly.
func gotoAnalyzer(node, ast0Node *cast.Goto) (label, original string, ok bool) {
	if node.Name != ast0Node.Name {
		label = node.Name
	}
	return label, ast0Node.Name, true
}

func qualifierAnalyzer(quals, ast0Quals []string) (result string, original string, ok bool) {
	originalJoined := joinQuals(ast0Quals)
	if !equalQuals(quals, ast0Quals) {
		result = joinQuals(quals)
	}
	return result, originalJoined, true
}

func joinQuals(quals []string) string {
	out := ""
	for i, q := range quals {
		if i > 0 {
			out += " "
		}
		out += q
	}
	return out
}

func equalQuals(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
