package mutate_test

import (
	"testing"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/mutate"
	"github.com/nccat/nccat/internal/walker"
)

// sample builds: int main(){ int x = 1; if (x < 2) printf("A"); else printf("B"); return 0; }
func sample() *cast.FuncDef {
	decl := &cast.Decl{
		Name: "x",
		Type: &cast.TypeDecl{DeclName: "x", Type: &cast.IdentifierType{Names: []string{"int"}}},
		Init: &cast.Constant{Value: "1", Type: "int"},
	}
	ifStmt := &cast.If{
		Cond: &cast.BinaryOp{Op: "<", Left: &cast.ID{Name: "x"}, Right: &cast.Constant{Value: "2", Type: "int"}},
		Then: &cast.FuncCall{Name: &cast.ID{Name: "printf"}, Args: &cast.ExprList{Exprs: []cast.Node{&cast.Constant{Value: `"A"`, Type: "string"}}}},
		IfFalse: &cast.FuncCall{Name: &cast.ID{Name: "printf"}, Args: &cast.ExprList{Exprs: []cast.Node{&cast.Constant{Value: `"B"`, Type: "string"}}}},
	}
	body := &cast.Compound{Items: []cast.Node{decl, ifStmt, &cast.Return{Expr: &cast.Constant{Value: "0", Type: "int"}}}}
	return &cast.FuncDef{
		Decl: &cast.Decl{Name: "main", Type: &cast.FuncDecl{Type: &cast.TypeDecl{DeclName: "main", Type: &cast.IdentifierType{Names: []string{"int"}}}}},
		Body: body,
	}
}

func TestApplyMutatesOnlyTargetedAndMutable(t *testing.T) {
	root := sample()
	w := walker.Walk(root)
	lang := config.DefaultLanguageTable()
	dict := config.DefaultSharedDict()
	cls := classifier.Classify(root, w, lang, dict)

	body := root.Body.(*cast.Compound)
	decl := body.Items[0].(*cast.Decl)
	condLit := decl.Init.(*cast.Constant)

	targets := map[int]bool{w.IDOf[condLit]: true}
	changed := mutate.Apply(root, targets, w, cls, lang, dict, newRNG())
	if !changed {
		t.Fatal("expected the targeted mutable constant to mutate")
	}
	if condLit.Value == "1" {
		t.Fatal("targeted constant did not change")
	}
	untargeted := body.Items[1].(*cast.If).Cond.(*cast.BinaryOp).Right.(*cast.Constant)
	if untargeted.Value != "2" {
		t.Fatalf("untargeted constant changed to %q", untargeted.Value)
	}
}

func TestApplySkipsImmutableTarget(t *testing.T) {
	root := sample()
	w := walker.Walk(root)
	lang := config.DefaultLanguageTable()
	dict := config.DefaultSharedDict()
	cls := classifier.Classify(root, w, lang, dict)

	ret := root.Body.(*cast.Compound).Items[2].(*cast.Return)
	retLit := ret.Expr.(*cast.Constant)

	targets := map[int]bool{w.IDOf[retLit]: true}
	if mutate.Apply(root, targets, w, cls, lang, dict, newRNG()) {
		t.Fatal("a Constant that is a direct child of Return must never be mutated")
	}
	if retLit.Value != "0" {
		t.Fatal("immutable node was changed")
	}
}

func TestApplyReplacesBreakWithContinue(t *testing.T) {
	br := &cast.Break{}
	loop := &cast.While{Cond: &cast.ID{Name: "c"}, Stmt: &cast.Compound{Items: []cast.Node{br}}}
	w := walker.Walk(loop)
	lang := config.DefaultLanguageTable()
	dict := config.DefaultSharedDict()
	cls := classifier.Classify(loop, w, lang, dict)

	targets := map[int]bool{w.IDOf[br]: true}
	if !mutate.Apply(loop, targets, w, cls, lang, dict, newRNG()) {
		t.Fatal("expected Break to flip to Continue")
	}
	body := loop.Stmt.(*cast.Compound)
	if _, ok := body.Items[0].(*cast.Continue); !ok {
		t.Fatalf("expected Items[0] to be *cast.Continue, got %T", body.Items[0])
	}
}
