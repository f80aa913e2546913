package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SharedDict is the shared dictionary JSON (spec.md §6): the handled-types
// allowlist the classifier (C3) checks every node against, plus a
// diagnostic unhandled-types set populated offline and not consulted at
// runtime (spec.md §6: "populated by an offline scanner, not consumed at
// runtime" — this repository does not ship that scanner; see DESIGN.md).
type SharedDict struct {
	HandledTypes   []string `json:"handled-types"`
	UnhandledTypes []string `json:"unhandled-types,omitempty"`
}

// DefaultSharedDict lists every _nodetype the classifier and mutators in
// this repository cover (spec.md §3's enumerated kinds plus the
// structural container kinds needed to reach them, per §4.2).
func DefaultSharedDict() *SharedDict {
	return &SharedDict{
		HandledTypes: []string{
			"FileAST", "FuncDef", "FuncDecl", "ParamList", "EllipsisParam",
			"Decl", "Typename", "TypeDecl", "IdentifierType", "PtrDecl", "ArrayDecl",
			"Struct", "Compound", "If", "For", "While", "DoWhile",
			"Return", "Break", "Continue", "Goto", "Label", "EmptyStatement", "DeclList",
			"FuncCall", "ExprList", "InitList", "Assignment", "BinaryOp", "UnaryOp",
			"TernaryOp", "Cast", "ArrayRef", "StructRef", "Constant", "ID",
		},
	}
}

// LoadSharedDict reads a shared dictionary JSON file.
func LoadSharedDict(path string) (*SharedDict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var sd SharedDict
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &sd, nil
}

// IsHandled reports whether nodetype is in the handled-types allowlist.
func (sd *SharedDict) IsHandled(nodetype string) bool {
	for _, t := range sd.HandledTypes {
		if t == nodetype {
			return true
		}
	}
	return false
}
