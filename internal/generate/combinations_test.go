package generate_test

import (
	"reflect"
	"testing"

	"github.com/nccat/nccat/internal/generate"
)

func TestCombinationsR1(t *testing.T) {
	got := generate.Combinations([]int{3, 7, 9}, 1)
	want := [][]int{{3}, {7}, {9}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCombinationsR2(t *testing.T) {
	got := generate.Combinations([]int{1, 2, 3}, 2)
	want := [][]int{{1, 2}, {1, 3}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCombinationsFullSet(t *testing.T) {
	got := generate.Combinations([]int{1, 2, 3}, 3)
	want := [][]int{{1, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCombinationsOutOfRange(t *testing.T) {
	if got := generate.Combinations([]int{1, 2}, 3); got != nil {
		t.Fatalf("expected nil for r > n, got %v", got)
	}
	if got := generate.Combinations([]int{1, 2}, 0); got != nil {
		t.Fatalf("expected nil for r == 0, got %v", got)
	}
}
