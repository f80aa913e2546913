// Package generate implements the initial variant generator (C5 / phase
// 1): per-level subset enumeration over the mutable node ids, parallel
// clone-mutate-unparse-write, and the level stopping rule. Grounded on
// CInitGenerator.py's test_generator/worker/test_generator_parallelized.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/mutate"
	"github.com/nccat/nccat/internal/walker"
)

// LevelResult is one level's yield: every combination that produced an
// actual mutation, keyed by the sequence id the ast/code files share
// (CInitGenerator.py's id_to_combination.json).
type LevelResult struct {
	IDToCombination map[int][]int
}

// RunLevel mutates root once per combination in combos, concurrently, and
// writes each surviving variant's AST and unparsed source to astsDir/
// codeDir. A combination whose Apply makes no change (every target id
// turned out immutable, or the mutator found nothing to change) is
// dropped silently, mirroring worker()'s `if is_mutated:` gate.
func RunLevel(ctx context.Context, root cast.Node, combos [][]int, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, astsDir, codeDir string, workers int) (*LevelResult, error) {
	if err := os.MkdirAll(astsDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(codeDir, 0o755); err != nil {
		return nil, err
	}

	res := &LevelResult{IDToCombination: make(map[int][]int)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, combo := range combos {
		astID := i + 1
		combo := combo
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "nccat: dropping variant %d %v: panic: %v\n", astID, combo, r)
				}
			}()
			ok, err := mutateOne(gctx, root, combo, w, cls, lang, dict, fe, astsDir, codeDir, astID)
			if err != nil {
				// A per-variant failure is logged and skipped, never fatal
				// (spec.md §7 kind 1) — worker()'s `except Exception` catch.
				fmt.Fprintf(os.Stderr, "nccat: dropping variant %d %v: %v\n", astID, combo, err)
				return nil
			}
			if ok {
				mu.Lock()
				res.IDToCombination[astID] = combo
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func mutateOne(ctx context.Context, root cast.Node, combo []int, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, astsDir, codeDir string, astID int) (bool, error) {
	clone := root.Clone()
	cloneWalk := walker.Walk(clone)

	// The node ids in combo were computed against root; translate them to
	// the corresponding id in the fresh clone by position (pre-order
	// assignment is deterministic given the same tree shape).
	targets := make(map[int]bool, len(combo))
	for _, id := range combo {
		targets[id] = true
	}

	// Cloning preserves tree shape, so Walk assigns the clone the exact
	// same pre-order id space as root — targets computed against root
	// apply unchanged to cloneWalk.
	rng := rand.New(rand.NewPCG(uint64(astID), uint64(len(combo))))
	changed := mutate.Apply(clone, targets, cloneWalk, cls, lang, dict, rng)
	if !changed {
		return false, nil
	}

	prog, ok := clone.(*cast.Program)
	if !ok {
		prog = &cast.Program{Decls: []cast.Node{clone}}
	}

	astPath := filepath.Join(astsDir, fmt.Sprintf("ast__%d.json", astID))
	data, err := json.MarshalIndent(prog, "", "  ")
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(astPath, data, 0o644); err != nil {
		return false, err
	}

	src, err := fe.Unparse(ctx, prog)
	if err != nil {
		return false, err
	}
	codePath := filepath.Join(codeDir, fmt.Sprintf("code__%d.c", astID))
	return true, os.WriteFile(codePath, []byte(src), 0o644)
}
