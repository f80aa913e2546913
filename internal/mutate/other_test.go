package mutate_test

import (
	"testing"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/mutate"
)

func TestQualifierOnDeclMirrorsIntoTypeDecl(t *testing.T) {
	lang := config.DefaultLanguageTable()
	td := &cast.TypeDecl{DeclName: "x", Quals: []string{"const"}, Type: &cast.IdentifierType{Names: []string{"int"}}}
	d := &cast.Decl{Name: "x", Quals: []string{"const"}, Type: td}

	if !mutate.QualifierOnDecl(newRNG(), d, lang) {
		t.Fatal("expected qualifier mutation to succeed")
	}
	if d.Quals[0] == "const" {
		t.Fatal("qualifier did not change")
	}
	if td.Quals[0] != d.Quals[0] {
		t.Fatal("mutation did not mirror into the nested TypeDecl")
	}
}

func TestIdentifierTypeRespectsSizeClass(t *testing.T) {
	lang := config.DefaultLanguageTable()
	n := &cast.IdentifierType{Names: []string{"short", "int"}}
	if !mutate.IdentifierType(newRNG(), n, lang) {
		t.Fatal("expected size-class mutation to succeed")
	}
	if n.Names[0] != "short" && n.Names[0] != "int" {
		t.Fatalf("mutated name %q left its size class", n.Names[0])
	}
}

func TestIdentifierTypeOutsideAnyClassNoOp(t *testing.T) {
	lang := config.DefaultLanguageTable()
	n := &cast.IdentifierType{Names: []string{"float"}}
	if mutate.IdentifierType(newRNG(), n, lang) {
		t.Fatal("a type outside both size classes must not mutate")
	}
}

func TestLoopControlFlowFlips(t *testing.T) {
	if _, ok := mutate.LoopControlFlow(&cast.Break{}).(*cast.Continue); !ok {
		t.Fatal("Break must flip to Continue")
	}
	if _, ok := mutate.LoopControlFlow(&cast.Continue{}).(*cast.Break); !ok {
		t.Fatal("Continue must flip to Break")
	}
}

func TestGotoPicksDistinctLabel(t *testing.T) {
	n := &cast.Goto{Name: "a"}
	labels := map[string]bool{"a": true, "b": true}
	if !mutate.Goto(newRNG(), n, labels) {
		t.Fatal("expected a distinct label to be available")
	}
	if n.Name != "b" {
		t.Fatalf("expected label to become b, got %s", n.Name)
	}
}

func TestGotoNoAlternativeLabel(t *testing.T) {
	n := &cast.Goto{Name: "only"}
	labels := map[string]bool{"only": true}
	if mutate.Goto(newRNG(), n, labels) {
		t.Fatal("expected no mutation when only one label exists")
	}
}
