package learna_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/learna"
)

func writeLevel(t *testing.T, astsRoot, codeRoot, level string, idToCombo map[string][]int, grouped map[string][]int) {
	t.Helper()
	astsDir := filepath.Join(astsRoot, level)
	codeDir := filepath.Join(codeRoot, level)
	if err := os.MkdirAll(astsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(codeDir, 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(idToCombo)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(astsDir, config.IDToCombinationFile), data, 0o644); err != nil {
		t.Fatal(err)
	}
	data, err = json.Marshal(grouped)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(codeDir, config.GroupedFilesFile), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func sortedKeys(combos []learna.Combination) []string {
	keys := make([]string, len(combos))
	for i, c := range combos {
		keys[i] = c.Key()
	}
	sort.Strings(keys)
	return keys
}

func TestCollectCombinationsPartitionsByVerdict(t *testing.T) {
	dir := t.TempDir()
	astsRoot := filepath.Join(dir, "asts")
	codeRoot := filepath.Join(dir, "code")

	writeLevel(t, astsRoot, codeRoot, "1",
		map[string][]int{"1": {1}, "2": {2}, "3": {3}, "4": {4}},
		map[string][]int{"passings": {1}, "failings": {2, 3, 4}, "invalids": {}},
	)

	passings, failings, pc2ap, fc2ap, err := learna.CollectCombinations(astsRoot, codeRoot)
	if err != nil {
		t.Fatal(err)
	}
	if got := sortedKeys(passings); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("passings = %v", got)
	}
	if got := sortedKeys(failings); !reflect.DeepEqual(got, []string{"2", "3", "4"}) {
		t.Fatalf("failings = %v", got)
	}
	if len(pc2ap["1"]) != 1 {
		t.Fatalf("expected one recorded path for passing combo [1], got %v", pc2ap["1"])
	}
	if len(fc2ap["2"]) != 1 {
		t.Fatalf("expected one recorded path for failing combo [2], got %v", fc2ap["2"])
	}
}

func TestGetR1FiltersSingletons(t *testing.T) {
	combos := []learna.Combination{{1}, {1, 2}, {3}}
	got := sortedKeys(learna.GetR1(combos))
	if !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("GetR1 = %v", got)
	}
}

func TestIdentifyFromLargerRPeelsOverlap(t *testing.T) {
	all := []learna.Combination{{1}, {2, 3}, {1, 4}}
	r1 := []learna.Combination{{1}}

	combinations, forRetries := learna.IdentifyFromLargerR(all, r1)

	if got := sortedKeys(combinations); !reflect.DeepEqual(got, []string{"1", "2,3"}) {
		t.Fatalf("combinations = %v", got)
	}
	if got := sortedKeys(forRetries); !reflect.DeepEqual(got, []string{"4"}) {
		t.Fatalf("forRetries = %v (expected [4], since 1 is already accounted for in [1,4])", got)
	}
}

func TestGetAlwaysExistingNodes(t *testing.T) {
	failings := []learna.Combination{{2}, {3}, {4}}
	got := sortedKeys(learna.GetAlwaysExistingNodes(failings, []int{1, 2, 3, 4}))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("GetAlwaysExistingNodes = %v (node 1 never appears in any failing combo)", got)
	}
}

func TestJoinCombinationSetsDeduplicates(t *testing.T) {
	l1 := []learna.Combination{{1}, {2, 3}}
	l2 := []learna.Combination{{2, 3}, {5}}
	got := sortedKeys(learna.JoinCombinationSets(l1, l2))
	if !reflect.DeepEqual(got, []string{"1", "2,3", "5"}) {
		t.Fatalf("JoinCombinationSets = %v", got)
	}
}

func TestRefineRetriesReplicatesUnidentifiedCandidates(t *testing.T) {
	forRetries := []learna.Combination{{4}, {5}}
	identified := []learna.Combination{{5}}

	got := learna.RefineRetries(forRetries, identified, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 replicated singleton combos for the one unidentified candidate, got %d", len(got))
	}
	for _, c := range got {
		if c.Key() != "4" {
			t.Fatalf("expected every retry candidate to be node 4, got %v", c)
		}
	}
}

func TestLearnSkipsRetryWhenNothingUnidentified(t *testing.T) {
	dir := t.TempDir()
	astsRoot := filepath.Join(dir, "asts")
	codeRoot := filepath.Join(dir, "code")

	writeLevel(t, astsRoot, codeRoot, "1",
		map[string][]int{"1": {1}, "2": {2}, "3": {3}, "4": {4}},
		map[string][]int{"passings": {1}, "failings": {2, 3, 4}, "invalids": {}},
	)

	result, err := learna.Learn(context.Background(), nil, nil, nil, nil, nil, nil, nil, astsRoot, codeRoot, []int{1, 2, 3, 4}, filepath.Join(dir, "retry-asts"), filepath.Join(dir, "retry-code"), 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := sortedKeys(result.IdentifiedNodes); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("IdentifiedNodes = %v, want [1] (passing combo [1] and failing-always node 1 agree)", got)
	}
}
