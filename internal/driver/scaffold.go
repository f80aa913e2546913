// Package driver implements the driver (C9): it sequences C2 (walker) ->
// C3 (classifier) -> C5 (phase 1) -> C6 (learner A) -> C7 (learner B) ->
// C8 (directed generator), owns the on-disk layout (spec.md §6), and
// assembles the final witnesses/ directory. Grounded on Main.py's
// nccat/create_dirs/collect_code_files/move_files_with_extension and on
// the teacher's internal/pipeline Pipeline/Processor shape.
package driver

import (
	"os"
	"path/filepath"

	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/pipeline"
)

// createDirs pre-creates every phase's asts/code/illegal subdirectories
// (Main.py's create_dirs), so later stages only ever need to MkdirAll a
// leaf combination-level directory under them.
func createDirs(root string) error {
	phases := []string{config.Phase1Dir, config.Phase2ADir, config.Phase2BDir, config.Phase3Dir}
	subdirs := []string{config.AstsSubdir, config.CodeSubdir, config.IllegalSubdir}

	for _, phase := range phases {
		for _, sub := range subdirs {
			if err := os.MkdirAll(filepath.Join(root, phase, sub), 0o755); err != nil {
				return err
			}
		}
	}
	return os.MkdirAll(filepath.Join(root, config.WitnessesDir, config.InvalidsDir), 0o755)
}

// ScaffoldProcessor is the first pipeline stage: it lays out the phase
// directory tree under ctx.Root. It has no upstream dependency, so it
// carries no guard.
type ScaffoldProcessor struct{}

func (ScaffoldProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil {
		return ctx
	}

	ctx.Phase1AstsDir = filepath.Join(ctx.Root, config.Phase1Dir, config.AstsSubdir)
	ctx.Phase1CodeDir = filepath.Join(ctx.Root, config.Phase1Dir, config.CodeSubdir)
	ctx.Phase2AAstsDir = filepath.Join(ctx.Root, config.Phase2ADir, config.AstsSubdir)
	ctx.Phase2ACodeDir = filepath.Join(ctx.Root, config.Phase2ADir, config.CodeSubdir)
	ctx.Phase2BAstsDir = filepath.Join(ctx.Root, config.Phase2BDir, config.AstsSubdir)
	ctx.Phase2BCodeDir = filepath.Join(ctx.Root, config.Phase2BDir, config.CodeSubdir)
	ctx.Phase3AstsDir = filepath.Join(ctx.Root, config.Phase3Dir, config.AstsSubdir)
	ctx.Phase3CodeDir = filepath.Join(ctx.Root, config.Phase3Dir, config.CodeSubdir)
	ctx.WitnessesDir = filepath.Join(ctx.Root, config.WitnessesDir)

	if err := createDirs(ctx.Root); err != nil {
		ctx.Err = err
	}
	return ctx
}
