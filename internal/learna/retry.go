package learna

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/walker"
)

// Retry re-mutates root using only the refined retry node ids — each
// tried alone, several times over (RefineRetries already applied the
// replication) — and folds any id whose isolated mutation turns out to
// pass into identifiedNodes. Ported from CLearning_A.py's retry, which
// calls back into CInitGenerator.test_generator rather than
// reimplementing generation; this Go port calls back into
// internal/generate the same way.
func Retry(ctx context.Context, root cast.Node, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, cfg *config.RunConfig, retryIDs []Combination, identifiedNodes []Combination, retryAstsDir, retryCodeDir string, workers int) ([]Combination, PathIndex, PathIndex, error) {
	combos := make([][]int, len(retryIDs))
	for i, c := range retryIDs {
		combos[i] = []int(c)
	}

	result, err := generate.RunLevel(ctx, root, combos, w, cls, lang, dict, fe, retryAstsDir, retryCodeDir, workers)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := writeIDToCombination(retryAstsDir, result.IDToCombination); err != nil {
		return nil, nil, nil, err
	}
	grouped, err := generate.GroupPrograms(ctx, cfg, retryCodeDir, workers)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := generate.WriteGroupedFiles(retryCodeDir, grouped); err != nil {
		return nil, nil, nil, err
	}

	return CheckNodes(retryAstsDir, retryCodeDir, retryIDs, identifiedNodes)
}

// CheckNodes reads back a retry round's classification and promotes any
// node id whose singleton mutation passed to its own entry in
// identifiedNodes (CLearning_A.py's check_nodes).
func CheckNodes(astsPath, codePath string, retryIDs []Combination, identifiedNodes []Combination) ([]Combination, PathIndex, PathIndex, error) {
	passings, _, pc2ap, fc2ap, err := collectFlatLevel(astsPath, codePath)
	if err != nil {
		return nil, nil, nil, err
	}

	passingIDs := FiniteUnion(passings)
	retryUnion := FiniteUnion(retryIDs)

	out := append([]Combination{}, identifiedNodes...)
	for id := range retryUnion {
		if passingIDs[id] && !containsCombination(out, Combination{id}) {
			out = append(out, Combination{id})
		}
	}
	return out, pc2ap, fc2ap, nil
}

// collectFlatLevel is CollectCombinations for a single flat level
// directory (a retry round has no r-subdirectories of its own).
func collectFlatLevel(astsDir, codeDir string) (passings, failings []Combination, pc2ap, fc2ap PathIndex, err error) {
	pc2ap = make(PathIndex)
	fc2ap = make(PathIndex)

	grouped, err := readGroupedFiles(filepath.Join(codeDir, "grouped_files.json"))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	idToCombo, err := readIDToCombination(filepath.Join(astsDir, "id_to_combination.json"))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	passSet := toSet(grouped.Passings)
	failSet := toSet(grouped.Failings)

	for astIDStr, ids := range idToCombo {
		astID, err := parseASTID(astIDStr)
		if err != nil {
			continue
		}
		combo := NewCombination(ids)
		path := filepath.Join(astsDir, fmt.Sprintf("ast__%d.json", astID))

		switch {
		case passSet[astID] && !containsCombination(passings, combo):
			passings = append(passings, combo)
			pc2ap[combo.Key()] = append(pc2ap[combo.Key()], path)
		case failSet[astID] && !containsCombination(failings, combo):
			failings = append(failings, combo)
			fc2ap[combo.Key()] = append(fc2ap[combo.Key()], path)
		}
	}
	return passings, failings, pc2ap, fc2ap, nil
}

func writeIDToCombination(dir string, m map[int][]int) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, config.IDToCombinationFile), data, 0o644)
}

// MergePathIndex merges src into dst, keeping dst's entry whenever a key
// collides (CLearning_A.py's merge_dictionaries).
func MergePathIndex(dst, src PathIndex) PathIndex {
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
	return dst
}

