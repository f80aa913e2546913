package generate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/walker"
)

func TestRunWritesIDToCombinationAtEveryLevel(t *testing.T) {
	root := sampleProgram()
	w := walker.Walk(root)
	lang := config.DefaultLanguageTable()
	dict := config.DefaultSharedDict()
	cls := classifier.Classify(root, w, lang, dict)

	dir := t.TempDir()
	cfg := &config.RunConfig{
		CompilerPath: missingCompiler(t, dir),
		Options:      []string{"-O2"},
		OptOff:       "-O0",
	}

	astsRoot := filepath.Join(dir, "asts")
	codeRoot := filepath.Join(dir, "code")

	level, err := generate.Run(context.Background(), root, cls.IDs, w, cls, lang, dict, stubFrontend{}, cfg, astsRoot, codeRoot, 4)
	if err != nil {
		t.Fatal(err)
	}
	if level < 1 {
		t.Fatalf("expected at least level 1, got %d", level)
	}
	if _, err := os.Stat(filepath.Join(astsRoot, "1", "id_to_combination.json")); err != nil {
		t.Fatalf("expected id_to_combination.json at level 1: %v", err)
	}
	if _, err := os.Stat(filepath.Join(codeRoot, "1", "grouped_files.json")); err != nil {
		t.Fatalf("expected grouped_files.json for the final classified level: %v", err)
	}
}

func missingCompiler(t *testing.T, dir string) string {
	t.Helper()
	return filepath.Join(dir, "no-such-compiler")
}
