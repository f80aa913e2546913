package driver_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/driver"
	"github.com/nccat/nccat/internal/report"
)

// stubFrontend never actually parses the given path — it hands back a
// fixed sample program and serializes whatever tree it is given back to
// a trivial C translation unit, so tests never shell out to a real
// parser/unparser binary.
type stubFrontend struct{}

func (stubFrontend) Parse(ctx context.Context, path string) (*cast.Program, error) {
	return sampleProgram(), nil
}

func (stubFrontend) Unparse(ctx context.Context, prog *cast.Program) (string, error) {
	data, err := json.Marshal(prog)
	return string(data), err
}

// sampleProgram has exactly one mutable node: the literal "1" initializing
// x. Its sibling Constant ("0") is a Return's expression, which
// isMutable's guard excludes. Keeping the mutable set to one node keeps
// phase 1's combinatorial growth trivial for a driver-level test.
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

func TestRunProducesWitnessesDirectoryWithoutAWorkingCompiler(t *testing.T) {
	root := t.TempDir()
	poc := "int main() { int x = 1; return 0; }\n"
	if err := os.WriteFile(filepath.Join(root, "poc.c"), []byte(poc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.RunConfig{
		Root:         root,
		Filename:     "poc.c",
		CompilerPath: filepath.Join(root, "no-such-compiler"),
		Options:      []string{"-O2"},
		OptOff:       "-O0",
	}
	lang := config.DefaultLanguageTable()
	dict := config.DefaultSharedDict()

	ctx := driver.Run(cfg, lang, dict, stubFrontend{}, 2)
	if ctx.Err != nil {
		t.Fatalf("expected no fatal error with every candidate invalid, got %v", ctx.Err)
	}

	for _, dir := range []string{
		filepath.Join(root, config.Phase1Dir, config.AstsSubdir),
		filepath.Join(root, config.Phase1Dir, config.CodeSubdir),
		filepath.Join(root, config.WitnessesDir),
	} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected scaffolded directory %s: %v", dir, err)
		}
	}

	originalCopy := filepath.Join(root, config.WitnessesDir, "code__0.c")
	data, err := os.ReadFile(originalCopy)
	if err != nil {
		t.Fatalf("expected the original PoC copied in as code__0.c: %v", err)
	}
	if string(data) != poc {
		t.Fatalf("expected code__0.c to match the original PoC byte for byte")
	}

	if _, err := os.Stat(filepath.Join(root, config.ElapsedTimeFile)); err != nil {
		t.Fatalf("expected elapsed_time.out to be written: %v", err)
	}
}

func TestRunRecordsPhase1VariantsInTheReportStore(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "poc.c"), []byte("int main() { return 0; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.RunConfig{
		Root:         root,
		Filename:     "poc.c",
		CompilerPath: filepath.Join(root, "no-such-compiler"),
		Options:      []string{"-O2"},
		OptOff:       "-O0",
	}
	lang := config.DefaultLanguageTable()
	dict := config.DefaultSharedDict()

	ctx := driver.Run(cfg, lang, dict, stubFrontend{}, 2)
	if ctx.Err != nil {
		t.Fatalf("unexpected error: %v", ctx.Err)
	}

	if _, err := os.Stat(filepath.Join(root, driver.ReportDBFile)); err != nil {
		t.Fatalf("expected a report.db to be created: %v", err)
	}

	store, err := report.OpenReadOnly(filepath.Join(root, driver.ReportDBFile))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	tallies, err := store.Tallies(ctx.RunID.String())
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, tally := range tallies {
		if tally.Phase == "phase1" && tally.Level == 1 && tally.Invalids == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected one invalid phase1 level-1 variant in the report store, got %+v", tallies)
	}
}
