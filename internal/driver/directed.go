package driver

import (
	"context"
	"path/filepath"

	"github.com/nccat/nccat/internal/directed"
	"github.com/nccat/nccat/internal/pipeline"
)

// DirectedProcessor runs phase 3 (C8): a directed second pass restricted
// to the witness/avoid node id partition learner B's analysis yielded
// (CDirectedGenerator.py's directed_generator as invoked from Main.py's
// nccat).
type DirectedProcessor struct{}

func (DirectedProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil {
		return ctx
	}
	if ctx.LearnA == nil || ctx.LearnB == nil || len(ctx.LearnA.IdentifiedNodes) == 0 {
		return ctx
	}

	err := directed.Generate(context.Background(), ctx.AST0, ctx.Walker, ctx.Classifier, ctx.Language, ctx.SharedDict, ctx.Frontend, ctx.RunConfig, ctx.LearnA.IdentifiedNodes, ctx.LearnB.MutationsBySet, ctx.MutableIDs, ctx.Phase3AstsDir, ctx.Phase3CodeDir, ctx.Workers)
	if err != nil {
		ctx.Err = err
		return ctx
	}

	for _, pool := range []string{"passings", "failings"} {
		astsDir := filepath.Join(ctx.Phase3AstsDir, pool)
		codeDir := filepath.Join(ctx.Phase3CodeDir, pool)
		if err := recordLevelVariants(ctx.Report, ctx.RunID.String(), "phase3-"+pool, 0, astsDir, codeDir); err != nil {
			ctx.Err = err
			return ctx
		}
	}
	return ctx
}
