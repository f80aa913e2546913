// Package mutate implements the per-node-kind mutators (C4): constant,
// operator (unary/binary/assignment), qualifier, identifier-type, goto,
// and loop-control, plus the top-level driver that applies a mutation to
// exactly the node ids in one MSS on a cloned tree. Numeric constants and
// value pools are transcribed verbatim from the original source's
// ConstantMutator.py, as tabulated in spec.md §4.3.
package mutate

import (
	"math/rand/v2"
	"strconv"

	"github.com/nccat/nccat/internal/cast"
)

// ISO C standard (ISO/IEC 9899) bounds, transcribed from ConstantMutator.py.
const (
	SCHAR_MAX = 127
	UCHAR_MAX = 255
	INT16_MAX = 32767
	INT32_MAX = 2147483647
	INT64_MAX = 9223372036854775807
)

// IEEE754 double-precision bounds, transcribed from ConstantMutator.py.
const (
	floatMinSubnormal = 5e-324
	floatMax           = 1.7976931348623157e+308
)

// ConstantCategory is the numeric category a Constant mutation draws its
// replacement pool from (spec.md §4.3's table).
type ConstantCategory int

const (
	CategoryUnknown ConstantCategory = iota
	CategoryInt16
	CategoryInt32
	CategoryInt64
	CategorySignedChar
	CategoryUnsignedChar
	CategoryFloat
	CategoryBool
)

// CategoryFromTypeName maps a declared C type name (as joined from an
// IdentifierType's Names, e.g. "unsigned int") to its mutation category.
func CategoryFromTypeName(typeName string) ConstantCategory {
	switch typeName {
	case "short", "short int", "unsigned short", "unsigned short int":
		return CategoryInt16
	case "int", "unsigned int", "unsigned":
		return CategoryInt32
	case "long", "long int", "unsigned long", "unsigned long int",
		"long long", "unsigned long long":
		return CategoryInt64
	case "char", "signed char":
		return CategorySignedChar
	case "unsigned char":
		return CategoryUnsignedChar
	case "float", "double", "long double":
		return CategoryFloat
	case "_Bool", "bool":
		return CategoryBool
	default:
		return CategoryUnknown
	}
}

func valuePool(cat ConstantCategory) []string {
	switch cat {
	case CategoryInt16:
		return intPool(0, 1, INT16_MAX/2, INT16_MAX-1, INT16_MAX, INT16_MAX+1)
	case CategoryInt32:
		return intPool(INT16_MAX, INT16_MAX+1, INT32_MAX/2, INT32_MAX-1, INT32_MAX, INT32_MAX+1)
	case CategoryInt64:
		return intPool(INT32_MAX, INT32_MAX+1, INT64_MAX/2, INT64_MAX-1, INT64_MAX, INT64_MAX+1)
	case CategorySignedChar:
		return intPool(0, 1, SCHAR_MAX/2, SCHAR_MAX-1, SCHAR_MAX, SCHAR_MAX+1)
	case CategoryUnsignedChar:
		return intPool(0, 1, UCHAR_MAX/2, UCHAR_MAX-1, UCHAR_MAX, UCHAR_MAX+1)
	case CategoryFloat:
		return floatPool(0, floatMinSubnormal, 1.0, floatMax/2, floatMax-1, floatMax)
	default:
		return nil
	}
}

func intPool(vs ...int64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.FormatInt(v, 10)
	}
	return out
}

func floatPool(vs ...float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// Constant rewrites exactly one Constant node's value, rejection-sampling
// against the node's own current value and any caller-supplied avoid set
// (spec.md §4.3). A boolean constant flips between "0" and "1". Returns
// false ("no mutation performed") if the declared type has no value pool,
// or if no legal alternative exists (every pool member is excluded).
func Constant(rng *rand.Rand, c *cast.Constant, declaredType string, avoid map[string]bool) bool {
	cat := CategoryFromTypeName(declaredType)
	if cat == CategoryBool {
		next := "1"
		if c.Value == "1" {
			next = "0"
		}
		if next == c.Value || avoid[next] {
			return false
		}
		c.Value = next
		return true
	}

	pool := valuePool(cat)
	if pool == nil {
		return false
	}

	candidates := make([]string, 0, len(pool))
	for _, v := range pool {
		if v == c.Value || avoid[v] {
			continue
		}
		candidates = append(candidates, v)
	}
	if len(candidates) == 0 {
		return false
	}
	c.Value = candidates[rng.IntN(len(candidates))]
	return true
}
