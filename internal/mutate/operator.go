package mutate

import (
	"math/rand/v2"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/config"
)

// unaryAvoid lists the unary operators the mutator refuses to touch even
// though the classifier marks UnaryOp mutable whenever its operator is in
// the recognized table (pointer dereference, address-of, logical not would
// almost always turn a type-correct program into a type error). Transcribed
// from OperatorMutator.py's unary_mutator.
var unaryAvoid = map[string]bool{"*": true, "&": true, "!": true}

// Unary replaces a UnaryOp's operator with a different member of its own
// equivalence class. Returns false if op is in unaryAvoid, or the class
// has no other member to pick (both "no mutation performed" outcomes).
func Unary(rng *rand.Rand, n *cast.UnaryOp, lang *config.LanguageTable) bool {
	if unaryAvoid[n.Op] {
		return false
	}
	// Only the unary classes are searched: "-" and "+" are also members of
	// a binary class, which must never supply a unary operator.
	for _, class := range []string{"unary1", "unary2"} {
		ops := lang.OperatorClasses[class]
		if !contains(ops, n.Op) {
			continue
		}
		choices := otherMembers(ops, n.Op)
		if len(choices) == 0 {
			return false
		}
		n.Op = choices[rng.IntN(len(choices))]
		return true
	}
	return false
}

// Binary replaces a BinaryOp's operator with a different member of its own
// class, searching every class except "unary1" (OperatorMutator.py's
// binary_mutator explicitly excludes only that one key, so an operator
// that is also a member of unary2/bitwise etc. is still eligible).
func Binary(rng *rand.Rand, n *cast.BinaryOp, lang *config.LanguageTable) bool {
	for class, ops := range lang.OperatorClasses {
		if class == "unary1" {
			continue
		}
		if !contains(ops, n.Op) {
			continue
		}
		choices := otherMembers(ops, n.Op)
		if len(choices) == 0 {
			return false
		}
		n.Op = choices[rng.IntN(len(choices))]
		return true
	}
	return false
}

// Assignment replaces a compound-assignment operator with a different
// member of the assignment_compound class. Plain "=" is never mutated
// (OperatorMutator.py's assignment_mutator).
func Assignment(rng *rand.Rand, n *cast.Assignment, lang *config.LanguageTable) bool {
	if n.Op == "=" {
		return false
	}
	choices := otherMembers(lang.OperatorClasses["assignment_compound"], n.Op)
	if len(choices) == 0 {
		return false
	}
	n.Op = choices[rng.IntN(len(choices))]
	return true
}

func contains(ops []string, op string) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

func otherMembers(ops []string, current string) []string {
	out := make([]string, 0, len(ops))
	for _, o := range ops {
		if o != current {
			out = append(out, o)
		}
	}
	return out
}
