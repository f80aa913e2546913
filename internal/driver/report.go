package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/report"
)

type idToCombination map[string][]int

// recordLevelVariants reads one level's grouped_files.json/
// id_to_combination.json and writes one report row per generated variant
// (SPEC_FULL.md §4.10's first row kind). A missing grouped_files.json
// (a level the oracle never classified, e.g. the stopping rule short
// circuited before reaching it) is not an error — there is simply
// nothing to record.
func recordLevelVariants(store *report.Store, runID string, phase string, level int, astsDir, codeDir string) error {
	if store == nil {
		return nil
	}

	grouped, err := readGroupedFiles(filepath.Join(codeDir, config.GroupedFilesFile))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	combos, err := readIDToCombination(filepath.Join(astsDir, config.IDToCombinationFile))
	if os.IsNotExist(err) {
		combos = idToCombination{}
	} else if err != nil {
		return err
	}

	verdictOf := make(map[int]string, len(grouped.Passings)+len(grouped.Failings)+len(grouped.Invalids))
	for _, id := range grouped.Passings {
		verdictOf[id] = "pass"
	}
	for _, id := range grouped.Failings {
		verdictOf[id] = "fail"
	}
	for _, id := range grouped.Invalids {
		verdictOf[id] = "invalid"
	}

	for id, verdict := range verdictOf {
		mss := fmt.Sprintf("%v", combos[fmt.Sprintf("%d", id)])
		if err := store.RecordVariant(runID, id, phase, level, mss, verdict); err != nil {
			return err
		}
	}
	return nil
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

func readIDToCombination(path string) (idToCombination, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m idToCombination
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
