package cast_test

import (
	"encoding/json"
	"testing"

	"github.com/nccat/nccat/internal/cast"
)

// program builds the AST for:
//   int main(){ int x = 1; if (x < 2) printf("A"); else printf("B"); return 0; }
func program(t *testing.T) *cast.Program {
	t.Helper()
	xDecl := &cast.Decl{
		Name: "x",
		Type: &cast.TypeDecl{DeclName: "x", Type: &cast.IdentifierType{Names: []string{"int"}}},
		Init: &cast.Constant{Value: "1", Type: "int"},
	}
	cond := &cast.BinaryOp{Op: "<", Left: &cast.ID{Name: "x"}, Right: &cast.Constant{Value: "2", Type: "int"}}
	printA := &cast.FuncCall{Name: &cast.ID{Name: "printf"}, Args: &cast.ExprList{Exprs: []cast.Node{&cast.Constant{Value: `"A"`, Type: "string"}}}}
	printB := &cast.FuncCall{Name: &cast.ID{Name: "printf"}, Args: &cast.ExprList{Exprs: []cast.Node{&cast.Constant{Value: `"B"`, Type: "string"}}}}
	ifStmt := &cast.If{Cond: cond, Then: printA, IfFalse: printB}
	ret := &cast.Return{Expr: &cast.Constant{Value: "0", Type: "int"}}
	body := &cast.Compound{Items: []cast.Node{xDecl, ifStmt, ret}}
	mainDecl := &cast.Decl{
		Name: "main",
		Type: &cast.FuncDecl{Type: &cast.TypeDecl{DeclName: "main", Type: &cast.IdentifierType{Names: []string{"int"}}}},
	}
	fn := &cast.FuncDef{Decl: mainDecl, Body: body}
	return &cast.Program{Decls: []cast.Node{fn}}
}

func TestRoundTrip(t *testing.T) {
	prog := program(t)
	data, err := json.Marshal(prog)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := cast.DecodeProgram(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	data2, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	var a, b any
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data2, &b); err != nil {
		t.Fatal(err)
	}
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", aj, bj)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	prog := program(t)
	clone := prog.Clone().(*cast.Program)

	fn := prog.Decls[0].(*cast.FuncDef)
	body := fn.Body.(*cast.Compound)
	xDecl := body.Items[0].(*cast.Decl)
	xDecl.Init.(*cast.Constant).Value = "99"

	cfn := clone.Decls[0].(*cast.FuncDef)
	cbody := cfn.Body.(*cast.Compound)
	cxDecl := cbody.Items[0].(*cast.Decl)
	if cxDecl.Init.(*cast.Constant).Value != "1" {
		t.Fatalf("clone shares state with original: got %q", cxDecl.Init.(*cast.Constant).Value)
	}
}

func TestChildrenDescendsFullTree(t *testing.T) {
	prog := program(t)
	count := 0
	var walk func(n cast.Node)
	walk = func(n cast.Node) {
		if n == nil {
			return
		}
		count++
		for _, c := range n.Children() {
			walk(c)
		}
	}
	for _, d := range prog.Decls {
		walk(d)
	}
	if count == 0 {
		t.Fatal("expected to visit nodes")
	}
}
