package classifier_test

import (
	"testing"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/walker"
)

func classify(root cast.Node) (*walker.Result, *classifier.Result) {
	w := walker.Walk(root)
	c := classifier.Classify(root, w, config.DefaultLanguageTable(), config.DefaultSharedDict())
	return w, c
}

func TestConstantChildOfReturnIsNotMutable(t *testing.T) {
	ret := &cast.Return{Expr: &cast.Constant{Value: "0", Type: "int"}}
	w, c := classify(ret)
	id := w.IDOf[ret.Expr]
	if c.IsMutable(id) {
		t.Fatal("a Constant that is an immediate child of Return must not be mutable (spec.md §4.2)")
	}
}

func TestConstantNotUnderReturnIsMutable(t *testing.T) {
	assign := &cast.Assignment{Op: "+=", LValue: &cast.ID{Name: "x"}, RValue: &cast.Constant{Value: "2", Type: "int"}}
	w, c := classify(assign)
	id := w.IDOf[assign.RValue]
	if !c.IsMutable(id) {
		t.Fatal("a Constant not under a Return should be mutable")
	}
}

func TestDeclRequiresQualifier(t *testing.T) {
	bare := &cast.Decl{Name: "x", Type: &cast.TypeDecl{DeclName: "x", Type: &cast.IdentifierType{Names: []string{"int"}}}}
	qualified := &cast.Decl{Name: "y", Quals: []string{"const"}, Type: &cast.TypeDecl{DeclName: "y", Type: &cast.IdentifierType{Names: []string{"int"}}}}
	body := &cast.Compound{Items: []cast.Node{bare, qualified}}

	w, c := classify(body)
	if c.IsMutable(w.IDOf[bare]) {
		t.Fatal("a Decl with no qualifiers must not be mutable")
	}
	if !c.IsMutable(w.IDOf[qualified]) {
		t.Fatal("a Decl with a qualifier should be mutable")
	}
}

func TestIdentifierTypeRequiresTwoNames(t *testing.T) {
	short := &cast.IdentifierType{Names: []string{"int"}}
	long := &cast.IdentifierType{Names: []string{"unsigned", "int"}}
	decl1 := &cast.Decl{Name: "a", Quals: []string{"const"}, Type: &cast.TypeDecl{DeclName: "a", Type: short}}
	decl2 := &cast.Decl{Name: "b", Quals: []string{"const"}, Type: &cast.TypeDecl{DeclName: "b", Type: long}}
	body := &cast.Compound{Items: []cast.Node{decl1, decl2}}

	w, c := classify(body)
	if c.IsMutable(w.IDOf[short]) {
		t.Fatal("an IdentifierType with one name must not be mutable")
	}
	if !c.IsMutable(w.IDOf[long]) {
		t.Fatal("an IdentifierType with two names should be mutable")
	}
}

func TestGotoRequiresTwoDistinctLabels(t *testing.T) {
	gt := &cast.Goto{Name: "only"}
	body := &cast.Compound{Items: []cast.Node{
		gt,
		&cast.Label{Name: "only", Stmt: &cast.EmptyStatement{}},
	}}
	w, c := classify(body)
	if c.IsMutable(w.IDOf[gt]) {
		t.Fatal("a Goto must not be mutable with fewer than two distinct labels")
	}
}

func TestForNextSlotIsNeverMutable(t *testing.T) {
	next := &cast.UnaryOp{Op: "++", Expr: &cast.ID{Name: "i"}}
	f := &cast.For{
		Init: &cast.Assignment{Op: "=", LValue: &cast.ID{Name: "i"}, RValue: &cast.Constant{Value: "0", Type: "int"}},
		Cond: &cast.BinaryOp{Op: "<", Left: &cast.ID{Name: "i"}, Right: &cast.Constant{Value: "10", Type: "int"}},
		Next: next,
		Stmt: &cast.EmptyStatement{},
	}
	w, c := classify(f)
	if c.IsMutable(w.IDOf[next]) {
		t.Fatal("a node reached through a For's next slot must never be mutable")
	}
	condLiteral := f.Cond.(*cast.BinaryOp).Right
	if !c.IsMutable(w.IDOf[condLiteral]) {
		t.Fatal("a constant in the For's cond slot should still be mutable")
	}
}

func TestPrintfArgsAreNeverMutable(t *testing.T) {
	lit := &cast.Constant{Value: `"A"`, Type: "string"}
	call := &cast.FuncCall{Name: &cast.ID{Name: "printf"}, Args: &cast.ExprList{Exprs: []cast.Node{lit}}}
	w, c := classify(call)
	if c.IsMutable(w.IDOf[lit]) {
		t.Fatal("a node inside a printf argument list must never be mutable")
	}
}
