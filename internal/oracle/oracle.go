// Package oracle implements the differential compiler oracle (C1): compile
// a candidate C source twice (optimizations on, optimizations off), run
// both binaries, and compare stdout plus exit code. Grounded directly on
// COracle.py's get_cl/run_binary/is_pass/is_diff.
package oracle

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/nccat/nccat/internal/config"
)

// Verdict is the outcome of comparing one candidate's two optimization
// levels (spec.md: pass/fail/invalid).
type Verdict int

const (
	Invalid Verdict = iota // compile failure, binary that could not run, or timeout on either side
	Pass                   // the two binaries agree
	Fail                   // the two binaries disagree — a witness
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "invalid"
	}
}

// Result is the full record of one oracle evaluation, kept for the report
// store (C11) and for witness assembly (C9).
type Result struct {
	Verdict    Verdict
	Reason     string // populated when Verdict == Invalid
	EnabledOut string
	DisabledOut string
	EnabledCode int
	DisabledCode int
}

// Oracle compiles and runs a candidate source file twice per spec.md §4.1.
type Oracle struct {
	cfg     *config.RunConfig
	timeout time.Duration
	workDir string // scratch directory for the two binaries; caller-owned
}

func New(cfg *config.RunConfig, workDir string) *Oracle {
	return &Oracle{cfg: cfg, timeout: config.OracleTimeout, workDir: workDir}
}

// Evaluate runs the full differential check on sourcePath and reports a
// Verdict. A missing compiler binary, a compile failure, a binary that
// could not be started, and a timeout are all reported as an Invalid
// verdict with the cause in Reason (spec.md §7 kind 2); a binary that exits
// non-zero or is killed by a signal is compared by its exit code like any
// other. The returned error is always nil.
func (o *Oracle) Evaluate(ctx context.Context, sourcePath string) (*Result, error) {
	disabledBin := filepath.Join(o.workDir, "disabled")
	enabledBin := filepath.Join(o.workDir, "enabled")

	if err := o.compile(ctx, sourcePath, false, disabledBin); err != nil {
		return &Result{Verdict: Invalid, Reason: fmt.Sprintf("opt-off compile: %v", err)}, nil
	}
	if err := o.compile(ctx, sourcePath, true, enabledBin); err != nil {
		return &Result{Verdict: Invalid, Reason: fmt.Sprintf("opt-on compile: %v", err)}, nil
	}

	disabledOut, disabledCode, err := o.run(ctx, disabledBin)
	if err != nil {
		return &Result{Verdict: Invalid, Reason: fmt.Sprintf("opt-off run: %v", err)}, nil
	}
	enabledOut, enabledCode, err := o.run(ctx, enabledBin)
	if err != nil {
		return &Result{Verdict: Invalid, Reason: fmt.Sprintf("opt-on run: %v", err)}, nil
	}

	res := &Result{
		EnabledOut:   enabledOut,
		DisabledOut:  disabledOut,
		EnabledCode:  enabledCode,
		DisabledCode: disabledCode,
	}
	if enabledOut == disabledOut && enabledCode == disabledCode {
		res.Verdict = Pass
	} else {
		res.Verdict = Fail
	}
	return res, nil
}

// compile builds the commandline exactly as COracle.py's get_cl does: the
// compiler path, the linker flags, then either the optimized options or
// the opt-off flag, then the source file and -o output path.
func (o *Oracle) compile(ctx context.Context, sourcePath string, optimized bool, outPath string) error {
	compilerPath := o.cfg.CompilerPath
	if _, err := os.Stat(compilerPath); err != nil {
		return errors.Wrapf(err, "compiler %s not found", compilerPath)
	}

	args := make([]string, 0, len(o.cfg.Linker)+len(o.cfg.Options)+3)
	args = append(args, o.cfg.Linker...)
	if optimized {
		args = append(args, o.cfg.Options...)
	} else {
		args = append(args, o.cfg.OptOff)
	}
	args = append(args, sourcePath, "-o", outPath)

	cmd := exec.CommandContext(ctx, compilerPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "compile failed: %s", stderr.String())
	}
	if _, err := os.Stat(outPath); err != nil {
		return errors.Wrap(err, "compiler exited zero but produced no binary")
	}
	return nil
}

// run executes one compiled binary under the oracle's fixed timeout,
// using a buffered capacity-1 completion channel so a timed-out goroutine
// never blocks forever on its send (the same pattern the teacher's
// differential fuzz target uses around its parse/execute steps).
func (o *Oracle) run(ctx context.Context, binPath string) (stdout string, exitCode int, err error) {
	runCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, binPath)
	var out bytes.Buffer
	cmd.Stdout = &out

	done := make(chan error, 1)
	go func() { done <- cmd.Run() }()

	select {
	case runErr := <-done:
		if runErr != nil {
			if exitErr, ok := runErr.(*exec.ExitError); ok {
				return out.String(), exitErr.ExitCode(), nil
			}
			return "", 0, errors.Wrap(runErr, "binary did not run")
		}
		return out.String(), 0, nil
	case <-runCtx.Done():
		return "", 0, errors.New("timed out")
	}
}
