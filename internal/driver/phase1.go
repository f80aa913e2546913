package driver

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/pipeline"
)

// Phase1Processor runs the initial generator (C5) over the full mutable
// id set, growing r until the stopping rule fires (CInitGenerator.py's
// test_generator as invoked by Main.py's nccat, phase 1).
type Phase1Processor struct{}

func (Phase1Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil {
		return ctx
	}

	finalLevel, err := generate.Run(context.Background(), ctx.AST0, ctx.MutableIDs, ctx.Walker, ctx.Classifier, ctx.Language, ctx.SharedDict, ctx.Frontend, ctx.RunConfig, ctx.Phase1AstsDir, ctx.Phase1CodeDir, ctx.Workers)
	if err != nil {
		ctx.Err = err
		return ctx
	}

	for r := 1; r <= finalLevel; r++ {
		levelAstsDir := filepath.Join(ctx.Phase1AstsDir, strconv.Itoa(r))
		levelCodeDir := filepath.Join(ctx.Phase1CodeDir, strconv.Itoa(r))
		if err := recordLevelVariants(ctx.Report, ctx.RunID.String(), "phase1", r, levelAstsDir, levelCodeDir); err != nil {
			ctx.Err = err
			return ctx
		}
	}
	return ctx
}
