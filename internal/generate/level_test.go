package generate_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/walker"
)

type stubFrontend struct{}

func (stubFrontend) Parse(ctx context.Context, path string) (*cast.Program, error) {
	return nil, nil
}
func (stubFrontend) Unparse(ctx context.Context, prog *cast.Program) (string, error) {
	data, err := json.Marshal(prog)
	return string(data), err
}

func sampleProgram() *cast.Program {
	decl := &cast.Decl{
		Name: "x",
		Type: &cast.TypeDecl{DeclName: "x", Type: &cast.IdentifierType{Names: []string{"int"}}},
		Init: &cast.Constant{Value: "1", Type: "int"},
	}
	body := &cast.Compound{Items: []cast.Node{decl, &cast.Return{Expr: &cast.Constant{Value: "0", Type: "int"}}}}
	def := &cast.FuncDef{
		Decl: &cast.Decl{Name: "main", Type: &cast.FuncDecl{Type: &cast.TypeDecl{DeclName: "main", Type: &cast.IdentifierType{Names: []string{"int"}}}}},
		Body: body,
	}
	return &cast.Program{Decls: []cast.Node{def}}
}

func TestRunLevelWritesSurvivingVariants(t *testing.T) {
	root := sampleProgram()
	w := walker.Walk(root)
	lang := config.DefaultLanguageTable()
	dict := config.DefaultSharedDict()
	cls := classifier.Classify(root, w, lang, dict)

	if len(cls.IDs) == 0 {
		t.Fatal("expected at least one mutable node in the sample program")
	}
	combos := generate.Combinations(cls.IDs, 1)

	dir := t.TempDir()
	astsDir := filepath.Join(dir, "asts")
	codeDir := filepath.Join(dir, "code")

	res, err := generate.RunLevel(context.Background(), root, combos, w, cls, lang, dict, stubFrontend{}, astsDir, codeDir, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.IDToCombination) == 0 {
		t.Fatal("expected at least one surviving combination to be recorded")
	}
	for astID := range res.IDToCombination {
		name := "code__" + strconv.Itoa(astID) + ".c"
		if _, err := os.Stat(filepath.Join(codeDir, name)); err != nil {
			t.Errorf("expected code file for ast id %d: %v", astID, err)
		}
	}
}
