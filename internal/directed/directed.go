// Package directed implements the directed witness generator (C8 /
// phase 3): once learner B knows which concrete node ids' mutations
// actually flip the oracle to passing, this regrows the combination
// search twice more — once restricted to those witness ids (to harvest
// more passing witnesses) and once restricted to everything else (to
// harvest more failing witnesses while leaving the bug-driving nodes
// alone). Ported from CDirectedGenerator.py's directed_generator.
package directed

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/learna"
	"github.com/nccat/nccat/internal/learnb"
	"github.com/nccat/nccat/internal/walker"
)

// Flatten merges a list of node id sets into one membership set
// (CDirectedGenerator.py's flatten).
func Flatten(sets [][]int) map[int]bool {
	out := make(map[int]bool)
	for _, set := range sets {
		for _, id := range set {
			out[id] = true
		}
	}
	return out
}

// GetTargetIDs extracts, from each identified node set's mutation
// analysis, the subset of its members that actually produced a passing
// value change — the ids genuinely responsible for flipping the verdict,
// as opposed to ids that merely rode along in a larger combination
// (CDirectedGenerator.py's get_target_ids).
func GetTargetIDs(identifiedNodes []learna.Combination, mutationsBySet map[string]learnb.SetMutations) [][]int {
	var targetIDSets [][]int

	for _, combo := range identifiedNodes {
		mutations, ok := mutationsBySet[combo.Key()]
		if !ok {
			continue
		}

		member := make(map[int]bool, len(combo))
		for _, id := range combo {
			member[id] = true
		}

		var intersection []int
		for nodeIDStr, mutation := range mutations {
			if len(mutation.Passings) == 0 {
				continue
			}
			id, err := strconv.Atoi(nodeIDStr)
			if err != nil || !member[id] {
				continue
			}
			intersection = append(intersection, id)
		}
		if len(intersection) > 0 {
			targetIDSets = append(targetIDSets, intersection)
		}
	}
	return targetIDSets
}

// Generate grows two further witness populations under astsRoot/codeRoot:
// "passings/" mutating only the witness node ids (those GetTargetIDs
// identified as actually driving the flip), and "failings/" mutating
// everything else while leaving the witness ids untouched — giving the
// search a concentrated second pass now that it knows which nodes
// matter, rather than blindly growing every combination again.
func Generate(ctx context.Context, root cast.Node, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, cfg *config.RunConfig, identifiedNodes []learna.Combination, mutationsBySet map[string]learnb.SetMutations, mutableIDs []int, astsRoot, codeRoot string, workers int) error {
	targetIDSets := GetTargetIDs(identifiedNodes, mutationsBySet)
	witnessIDs := Flatten(targetIDSets)

	mutableSet := make(map[int]bool, len(mutableIDs))
	for _, id := range mutableIDs {
		mutableSet[id] = true
	}
	var witnessNodeIDs, nodeIDsToAvoid []int
	for id := range witnessIDs {
		witnessNodeIDs = append(witnessNodeIDs, id)
	}
	for _, id := range mutableIDs {
		if !witnessIDs[id] {
			nodeIDsToAvoid = append(nodeIDsToAvoid, id)
		}
	}

	passingAstsDir := filepath.Join(astsRoot, "passings")
	passingCodeDir := filepath.Join(codeRoot, "passings")
	if err := os.MkdirAll(passingAstsDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(passingCodeDir, 0o755); err != nil {
		return err
	}
	if len(witnessNodeIDs) > 0 {
		if _, err := generate.Run(ctx, root, witnessNodeIDs, w, cls, lang, dict, fe, cfg, passingAstsDir, passingCodeDir, workers); err != nil {
			return err
		}
	}

	failingAstsDir := filepath.Join(astsRoot, "failings")
	failingCodeDir := filepath.Join(codeRoot, "failings")
	if err := os.MkdirAll(failingAstsDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(failingCodeDir, 0o755); err != nil {
		return err
	}
	if len(nodeIDsToAvoid) > 0 {
		if _, err := generate.Run(ctx, root, nodeIDsToAvoid, w, cls, lang, dict, fe, cfg, failingAstsDir, failingCodeDir, workers); err != nil {
			return err
		}
	}

	return nil
}
