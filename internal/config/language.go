package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LanguageTable enumerates the C-language facts the mutators and
// classifier need (spec.md §6): operator equivalence classes, data-type
// size classes, qualifier lists, and the built-in function/method
// whitelist consulted by the ID guard in §4.2.
type LanguageTable struct {
	OperatorClasses map[string][]string `json:"operator_classes"`
	// Types2/Types3 are the short-form/long-form size classes the
	// identifier-type mutator draws same-class replacements from
	// (spec.md §4.3): e.g. Types2 = ["short", "int"], Types3 =
	// ["long", "long long"].
	Types2     []string `json:"types2"`
	Types3     []string `json:"types3"`
	Qualifiers []string `json:"qualifiers"`
	Builtins   []string `json:"builtins"`
}

// DefaultLanguageTable is the C-language table this repository ships
// with, matching the operator/type/qualifier tables in spec.md §4.3 and
// the original source's OperatorMutator.py/OtherMutator.py constants.
func DefaultLanguageTable() *LanguageTable {
	return &LanguageTable{
		OperatorClasses: map[string][]string{
			"unary1":               {"*", "&", "!"}, // never mutated (spec.md §4.3)
			"unary2":               {"-", "+", "~"},
			"binary_arithmetic":    {"+", "-", "*", "/", "%"},
			"binary_comparison":    {"<", "<=", ">", ">=", "==", "!="},
			"binary_logical":       {"&&", "||"},
			"binary_bitwise":       {"&", "|", "^", "<<", ">>"},
			"assignment_compound":  {"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>="},
		},
		Types2:     []string{"short", "int"},
		Types3:     []string{"long", "long long"},
		Qualifiers: []string{"const", "volatile", "restrict"},
		Builtins:   []string{"printf", "fprintf", "sprintf", "scanf", "malloc", "free", "memcpy", "memset", "strlen", "strcpy", "exit", "abort"},
	}
}

// LoadLanguageTable reads a language table JSON file, falling back to
// DefaultLanguageTable for any field left empty.
func LoadLanguageTable(path string) (*LanguageTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	lt := DefaultLanguageTable()
	if err := json.Unmarshal(data, lt); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return lt, nil
}

// IsBuiltin reports whether name is in the builtin function/method
// whitelist consulted by the classifier's ID guard (spec.md §4.2).
func (lt *LanguageTable) IsBuiltin(name string) bool {
	for _, b := range lt.Builtins {
		if b == name {
			return true
		}
	}
	return false
}

// OperatorClassOf returns the name of the operator class op belongs to,
// and ok=false if op is not recognized (spec.md §4.2's operator-table
// membership guard).
func (lt *LanguageTable) OperatorClassOf(op string) (class string, ok bool) {
	for c, ops := range lt.OperatorClasses {
		for _, o := range ops {
			if o == op {
				return c, true
			}
		}
	}
	return "", false
}
