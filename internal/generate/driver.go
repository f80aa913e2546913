package generate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/walker"
)

// Run is phase 1 (CInitGenerator.py's test_generator): it grows r from 1
// up to the number of mutableIDs, generating every r-combination's
// variant at each level, until a level produces passing variants and no
// failing ones — at that point every larger combination would only dilute
// an already-fully-passing mutation, so generation stops early. The final
// level visited is classified with the oracle and its grouped_files.json
// is written. mutableIDs is a parameter rather than derived from cls
// internally so the directed generator (C8) can reuse the exact same
// level-growth machinery over a restricted id set (CDirectedGenerator.py
// calls this same test_generator with witness_node_ids or
// node_ids_to_avoid in place of the full mutable_node_ids set).
func Run(ctx context.Context, root cast.Node, mutableIDs []int, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, cfg *config.RunConfig, astsRoot, codeRoot string, workers int) (finalLevel int, err error) {
	level := 1
	for r := 1; r <= len(mutableIDs); r++ {
		level = r
		levelAstsDir := filepath.Join(astsRoot, strconv.Itoa(r))
		levelCodeDir := filepath.Join(codeRoot, strconv.Itoa(r))

		if r > 1 {
			prevCodeDir := filepath.Join(codeRoot, strconv.Itoa(r-1))
			grouped, err := classifyLevel(ctx, cfg, prevCodeDir, workers)
			if err != nil {
				return level, err
			}
			if len(grouped.Failings) == 0 && len(grouped.Passings) > 0 {
				level = r - 1
				break
			}
		}

		combos := Combinations(mutableIDs, r)
		result, err := RunLevel(ctx, root, combos, w, cls, lang, dict, fe, levelAstsDir, levelCodeDir, workers)
		if err != nil {
			return level, err
		}
		if err := writeIDToCombination(levelAstsDir, result.IDToCombination); err != nil {
			return level, err
		}
	}

	finalCodeDir := filepath.Join(codeRoot, strconv.Itoa(level))
	if _, err := os.Stat(filepath.Join(finalCodeDir, config.GroupedFilesFile)); os.IsNotExist(err) {
		if _, err := classifyLevel(ctx, cfg, finalCodeDir, workers); err != nil {
			return level, err
		}
	}
	return level, nil
}

func classifyLevel(ctx context.Context, cfg *config.RunConfig, codeDir string, workers int) (*GroupedFiles, error) {
	grouped, err := GroupPrograms(ctx, cfg, codeDir, workers)
	if err != nil {
		return nil, err
	}
	if err := WriteGroupedFiles(codeDir, grouped); err != nil {
		return nil, err
	}
	return grouped, nil
}

func writeIDToCombination(astsDir string, m map[int][]int) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(astsDir, config.IDToCombinationFile), data, 0o644)
}
