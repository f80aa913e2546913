package mutate_test

import (
	"math/rand/v2"
	"testing"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/mutate"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestConstantIntMutatesWithinPool(t *testing.T) {
	c := &cast.Constant{Value: "5", Type: "int"}
	if !mutate.Constant(newRNG(), c, "int", nil) {
		t.Fatal("expected a mutation to occur for a plain int constant")
	}
	if c.Value == "5" {
		t.Fatal("value did not change")
	}
}

func TestConstantBoolFlips(t *testing.T) {
	c := &cast.Constant{Value: "0", Type: "_Bool"}
	if !mutate.Constant(newRNG(), c, "_Bool", nil) {
		t.Fatal("expected bool flip to report a mutation")
	}
	if c.Value != "1" {
		t.Fatalf("expected bool flip to 1, got %s", c.Value)
	}
}

func TestConstantUnknownCategoryNoOp(t *testing.T) {
	c := &cast.Constant{Value: `"hi"`, Type: "string"}
	if mutate.Constant(newRNG(), c, "string", nil) {
		t.Fatal("a string constant has no declared numeric category and must not mutate")
	}
}

func TestConstantAvoidSetExhaustsPool(t *testing.T) {
	c := &cast.Constant{Value: "0", Type: "_Bool"}
	avoid := map[string]bool{"1": true}
	if mutate.Constant(newRNG(), c, "_Bool", avoid) {
		t.Fatal("expected no mutation when the only alternative is excluded")
	}
}

func TestCategoryFromTypeName(t *testing.T) {
	cases := map[string]mutate.ConstantCategory{
		"int":            mutate.CategoryInt32,
		"short":          mutate.CategoryInt16,
		"long long":      mutate.CategoryInt64,
		"unsigned char":  mutate.CategoryUnsignedChar,
		"char":           mutate.CategorySignedChar,
		"double":         mutate.CategoryFloat,
		"_Bool":          mutate.CategoryBool,
		"struct foo":     mutate.CategoryUnknown,
	}
	for in, want := range cases {
		if got := mutate.CategoryFromTypeName(in); got != want {
			t.Errorf("CategoryFromTypeName(%q) = %v, want %v", in, got, want)
		}
	}
}
