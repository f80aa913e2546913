package mutate_test

import (
	"testing"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/mutate"
)

func TestUnaryAvoidsPointerOperators(t *testing.T) {
	lang := config.DefaultLanguageTable()
	for _, op := range []string{"*", "&", "!"} {
		n := &cast.UnaryOp{Op: op, Expr: &cast.ID{Name: "x"}}
		if mutate.Unary(newRNG(), n, lang) {
			t.Fatalf("unary operator %q must never be mutated", op)
		}
	}
}

func TestUnaryMutatesWithinClass(t *testing.T) {
	lang := config.DefaultLanguageTable()
	n := &cast.UnaryOp{Op: "-", Expr: &cast.ID{Name: "x"}}
	if !mutate.Unary(newRNG(), n, lang) {
		t.Fatal("expected unary2-class operator to mutate")
	}
	if n.Op == "-" {
		t.Fatal("operator did not change")
	}
}

func TestBinaryMutatesWithinClass(t *testing.T) {
	lang := config.DefaultLanguageTable()
	n := &cast.BinaryOp{Op: "+", Left: &cast.ID{Name: "a"}, Right: &cast.ID{Name: "b"}}
	if !mutate.Binary(newRNG(), n, lang) {
		t.Fatal("expected arithmetic operator to mutate")
	}
	if n.Op == "+" {
		t.Fatal("operator did not change")
	}
}

func TestAssignmentPlainEqualsNeverMutates(t *testing.T) {
	lang := config.DefaultLanguageTable()
	n := &cast.Assignment{Op: "=", LValue: &cast.ID{Name: "x"}, RValue: &cast.ID{Name: "y"}}
	if mutate.Assignment(newRNG(), n, lang) {
		t.Fatal("plain = must never be mutated")
	}
}

func TestAssignmentCompoundMutates(t *testing.T) {
	lang := config.DefaultLanguageTable()
	n := &cast.Assignment{Op: "+=", LValue: &cast.ID{Name: "x"}, RValue: &cast.ID{Name: "y"}}
	if !mutate.Assignment(newRNG(), n, lang) {
		t.Fatal("expected compound assignment to mutate")
	}
	if n.Op == "+=" {
		t.Fatal("operator did not change")
	}
}
