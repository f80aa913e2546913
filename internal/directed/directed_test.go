package directed_test

import (
	"reflect"
	"testing"

	"github.com/nccat/nccat/internal/directed"
	"github.com/nccat/nccat/internal/learna"
	"github.com/nccat/nccat/internal/learnb"
)

func TestFlatten(t *testing.T) {
	got := directed.Flatten([][]int{{3}, {4}, {3, 5}, {6}})
	want := map[int]bool{3: true, 4: true, 5: true, 6: true}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %v, want %v", got, want)
	}
}

func TestGetTargetIDsKeepsOnlyIDsWithPassingChanges(t *testing.T) {
	combo := learna.Combination{1, 2}
	mutationsBySet := map[string]learnb.SetMutations{
		combo.Key(): {
			"1": {Passings: []string{"7"}, Original: "1"},
			"2": {Passings: nil, Original: "x"},
		},
	}

	got := directed.GetTargetIDs([]learna.Combination{combo}, mutationsBySet)
	if len(got) != 1 {
		t.Fatalf("expected one target id set, got %v", got)
	}
	if !reflect.DeepEqual(got[0], []int{1}) {
		t.Fatalf("expected target ids [1] (node 2 had no passing change), got %v", got[0])
	}
}

func TestGetTargetIDsSkipsSetsWithNoPassingChange(t *testing.T) {
	combo := learna.Combination{9}
	mutationsBySet := map[string]learnb.SetMutations{
		combo.Key(): {
			"9": {Passings: nil, Original: "z"},
		},
	}

	got := directed.GetTargetIDs([]learna.Combination{combo}, mutationsBySet)
	if len(got) != 0 {
		t.Fatalf("expected no target id sets, got %v", got)
	}
}

