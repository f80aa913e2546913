// Package frontend models the out-of-scope "C parsing and unparsing"
// collaborator named in spec.md §1 as a concrete Go interface over a
// subprocess, the same way internal/oracle treats the compiler-under-test:
// a narrow boundary around an external tool, never a hand-rolled C parser.
package frontend

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/nccat/nccat/internal/cast"
)

// Frontend parses a C source file into the cast.Program tree and unparses
// a (possibly mutated) tree back into C source text.
type Frontend interface {
	Parse(ctx context.Context, path string) (*cast.Program, error)
	Unparse(ctx context.Context, prog *cast.Program) (string, error)
}

// ExternalTool shells out to a configured external binary that speaks the
// pycparser-compatible _nodetype-tagged JSON dict shape on stdin/stdout
// (SourceToSource.py's to_dict/from_dict contract): `<tool> parse <path>`
// emits that JSON on stdout; `<tool> unparse` reads it on stdin and emits
// C source on stdout.
type ExternalTool struct {
	Path string
}

func NewExternalTool(path string) *ExternalTool {
	return &ExternalTool{Path: path}
}

func (t *ExternalTool) Parse(ctx context.Context, path string) (*cast.Program, error) {
	cmd := exec.CommandContext(ctx, t.Path, "parse", path)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("frontend: parse %s: %w: %s", path, err, stderr.String())
	}
	return cast.DecodeProgram(out.Bytes())
}

func (t *ExternalTool) Unparse(ctx context.Context, prog *cast.Program) (string, error) {
	data, err := marshalProgram(prog)
	if err != nil {
		return "", fmt.Errorf("frontend: encoding ast for unparse: %w", err)
	}
	cmd := exec.CommandContext(ctx, t.Path, "unparse")
	cmd.Stdin = bytes.NewReader(data)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("frontend: unparse: %w: %s", err, stderr.String())
	}
	return out.String(), nil
}
