// Package learnb implements learner B (C7 / phase 2b): for every node id
// set identified by learner A, generate n additional independent mutated
// samples of it, classify them, and analyze exactly which concrete value
// change on that node flipped the oracle's verdict. Ported from
// CLearning_B.py and NodeAnalyzer.py.
package learnb

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/learna"
	"github.com/nccat/nccat/internal/mutate"
	"github.com/nccat/nccat/internal/walker"
)

// maxAttemptsPerSample bounds the per-node-set retry loop. CLearning_B.py's
// generate_samples retries unboundedly until n successful mutations land;
// a node set that has already exhausted its value pool would spin
// forever, so this port caps attempts instead of hanging.
const maxAttemptsPerSample = 50

// GenerateSamples mutates root n independent times per node set in
// identifiedNodes, writing every surviving variant's AST and unparsed
// source under astsDir/codeDir with ids continuing a single global
// counter across all sets (CLearning_B.py's generate_samples).
func GenerateSamples(ctx context.Context, root cast.Node, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, identifiedNodes []learna.Combination, n int, astsDir, codeDir string) (map[int][]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("learnb: n must be > 0, got %d", n)
	}
	if err := os.MkdirAll(astsDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(codeDir, 0o755); err != nil {
		return nil, err
	}

	idToCombination := make(map[int][]int)
	astID := 0

	for setIdx, combo := range identifiedNodes {
		if len(combo) == 0 {
			return nil, fmt.Errorf("learnb: identified node set %d is empty", setIdx)
		}

		targets := make(map[int]bool, len(combo))
		for _, id := range combo {
			targets[id] = true
		}

		successes := 0
		for attempt := 0; successes < n && attempt < n*maxAttemptsPerSample; attempt++ {
			clone := root.Clone()
			cloneWalk := walker.Walk(clone)
			rng := rand.New(rand.NewPCG(uint64(setIdx+1), uint64(attempt)))

			if !mutate.Apply(clone, targets, cloneWalk, cls, lang, dict, rng) {
				continue
			}

			prog, ok := clone.(*cast.Program)
			if !ok {
				prog = &cast.Program{Decls: []cast.Node{clone}}
			}

			astPath := filepath.Join(astsDir, fmt.Sprintf("ast__%d.json", astID))
			data, err := json.MarshalIndent(prog, "", "  ")
			if err != nil {
				return nil, err
			}
			if err := os.WriteFile(astPath, data, 0o644); err != nil {
				return nil, err
			}

			src, err := fe.Unparse(ctx, prog)
			if err != nil {
				return nil, err
			}
			codePath := filepath.Join(codeDir, fmt.Sprintf("code__%d.c", astID))
			if err := os.WriteFile(codePath, []byte(src), 0o644); err != nil {
				return nil, err
			}

			idToCombination[astID] = append([]int{}, combo...)
			astID++
			successes++
		}
	}

	data, err := json.MarshalIndent(idToCombination, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(astsDir, config.IDToCombinationFile), data, 0o644); err != nil {
		return nil, err
	}

	return idToCombination, nil
}
