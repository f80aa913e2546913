// Package diagnostics defines the three error kinds named in spec.md §7:
// per-variant errors (logged, variant dropped), oracle inconclusiveness
// (classified invalid), and structural invariant violations (fatal).
// Concrete error-struct-plus-constructor style grounded on the teacher's
// internal/typesystem.SymbolNotFoundError.
package diagnostics

import (
	"fmt"

	"github.com/pkg/errors"
)

// VariantError is a per-variant error (spec.md §7 kind 1): a parse
// re-round-trip failure, unparser rejection, or unsupported node shape
// encountered while generating one mutated variant. Caught at the worker
// boundary, logged with the offending node id, never surfaced as a
// pipeline failure.
type VariantError struct {
	NodeID int
	Op     string
	Cause  error
}

func NewVariantError(op string, nodeID int, cause error) *VariantError {
	return &VariantError{NodeID: nodeID, Op: op, Cause: errors.Wrap(cause, op)}
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("variant error at node %d during %s: %v", e.NodeID, e.Op, e.Cause)
}

func (e *VariantError) Unwrap() error { return e.Cause }

// StructuralViolation is spec.md §7 kind 3: a programming-error-class
// failure (is_mutable missing, _nodetype missing, AST not walked). Fatal
// — the driver aborts the pipeline on this error, unlike the other two
// kinds.
type StructuralViolation struct {
	Invariant string
	Detail    string
}

func NewStructuralViolation(invariant, detail string) *StructuralViolation {
	return &StructuralViolation{Invariant: invariant, Detail: detail}
}

func (e *StructuralViolation) Error() string {
	return fmt.Sprintf("structural invariant violated (%s): %s", e.Invariant, e.Detail)
}

// OracleInvalid is spec.md §7 kind 2: compile failure, binary crash, or
// timeout, so no pass/fail comparison could be made. Recorded as an
// invalid classification; the variant participates in no learning.
type OracleInvalid struct {
	Reason string
}

func NewOracleInvalid(reason string) *OracleInvalid {
	return &OracleInvalid{Reason: reason}
}

func (e *OracleInvalid) Error() string {
	return fmt.Sprintf("oracle invalid: %s", e.Reason)
}
