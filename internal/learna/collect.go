package learna

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nccat/nccat/internal/generate"
)

// PathIndex maps a combination's Key() to the ast/code file paths that
// realized it, mirroring CLearning_A.py's pc2ap/fc2ap
// (passing/failing-combination-to-ast-path) dictionaries.
type PathIndex map[string][]string

// CollectCombinations walks every level subdirectory under astsPath/
// codePath and partitions the combinations phase 1 generated into
// passing and failing sets, deduplicated by membership (CLearning_A.py's
// collect_combinations).
func CollectCombinations(astsPath, codePath string) (passings, failings []Combination, pc2ap, fc2ap PathIndex, err error) {
	entries, err := os.ReadDir(astsPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	pc2ap = make(PathIndex)
	fc2ap = make(PathIndex)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		level := entry.Name()
		levelAstsDir := filepath.Join(astsPath, level)
		levelCodeDir := filepath.Join(codePath, level)

		grouped, err := readGroupedFiles(filepath.Join(levelCodeDir, "grouped_files.json"))
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("learna: %s missing grouped_files.json: %w", levelCodeDir, err)
		}
		idToCombo, err := readIDToCombination(filepath.Join(levelAstsDir, "id_to_combination.json"))
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("learna: %s missing id_to_combination.json: %w", levelAstsDir, err)
		}

		passSet := toSet(grouped.Passings)
		failSet := toSet(grouped.Failings)

		for astIDStr, ids := range idToCombo {
			astID, err := parseASTID(astIDStr)
			if err != nil {
				continue
			}
			combo := NewCombination(ids)
			path := filepath.Join(levelAstsDir, fmt.Sprintf("ast__%d.json", astID))

			switch {
			case passSet[astID] && !containsCombination(passings, combo):
				passings = append(passings, combo)
				pc2ap[combo.Key()] = append(pc2ap[combo.Key()], path)
			case failSet[astID] && !containsCombination(failings, combo):
				failings = append(failings, combo)
				fc2ap[combo.Key()] = append(fc2ap[combo.Key()], path)
			}
		}
	}
	return passings, failings, pc2ap, fc2ap, nil
}

func readGroupedFiles(path string) (*generate.GroupedFiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g generate.GroupedFiles
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func readIDToCombination(path string) (map[string][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string][]int
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func toSet(ids []int) map[int]bool {
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func parseASTID(s string) (int, error) {
	var id int
	_, err := fmt.Sscanf(s, "%d", &id)
	return id, err
}
