package driver

import (
	"context"
	"strconv"
	"time"

	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/learna"
	"github.com/nccat/nccat/internal/learnb"
	"github.com/nccat/nccat/internal/pipeline"
)

// LearnerAProcessor runs phase 2a (C6): singleton admission, larger-r
// admission, always-failing residual, and the retry round for whatever
// remains unidentified (CLearning_A.py's learning as invoked from
// Main.py's nccat).
type LearnerAProcessor struct{}

func (LearnerAProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil {
		return ctx
	}

	result, err := learna.Learn(context.Background(), ctx.AST0, ctx.Walker, ctx.Classifier, ctx.Language, ctx.SharedDict, ctx.Frontend, ctx.RunConfig, ctx.Phase1AstsDir, ctx.Phase1CodeDir, ctx.MutableIDs, ctx.Phase2AAstsDir, ctx.Phase2ACodeDir, ctx.Workers)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.LearnA = result

	if err := recordLevelVariants(ctx.Report, ctx.RunID.String(), "phase2a", 0, ctx.Phase2AAstsDir, ctx.Phase2ACodeDir); err != nil {
		ctx.Err = err
		return ctx
	}
	if ctx.Report != nil {
		for _, combo := range result.IdentifiedNodes {
			for _, nodeID := range combo {
				if err := ctx.Report.RecordIdentifiedNode(ctx.RunID.String(), nodeID, combo.Key(), "learner-a"); err != nil {
					ctx.Err = err
					return ctx
				}
			}
		}
	}
	return ctx
}

// LearnerBProcessor runs phase 2b (C7): resample each identified node set
// and analyze exactly which value change flips the oracle
// (CLearning_B.py's learning as invoked from Main.py's nccat).
type LearnerBProcessor struct{}

func (LearnerBProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil {
		return ctx
	}
	defer func() { ctx.Checkpoint1At = time.Now() }()

	if ctx.LearnA == nil || len(ctx.LearnA.IdentifiedNodes) == 0 {
		return ctx
	}

	result, err := learnb.Learn(context.Background(), ctx.AST0, ctx.Walker, ctx.Classifier, ctx.Language, ctx.SharedDict, ctx.Frontend, ctx.RunConfig, ctx.LearnA.IdentifiedNodes, config.DefaultResampleN, ctx.Phase2BAstsDir, ctx.Phase2BCodeDir, ctx.LearnA.PassingPaths, ctx.LearnA.FailingPaths, ctx.Workers)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.LearnB = result

	if err := recordLevelVariants(ctx.Report, ctx.RunID.String(), "phase2b", 0, ctx.Phase2BAstsDir, ctx.Phase2BCodeDir); err != nil {
		ctx.Err = err
		return ctx
	}
	if ctx.Report != nil {
		for mssKey, mutations := range result.MutationsBySet {
			for nodeIDStr, mutation := range mutations {
				nodeID, convErr := strconv.Atoi(nodeIDStr)
				if convErr != nil {
					continue
				}
				if err := ctx.Report.RecordMutation(ctx.RunID.String(), mssKey, nodeID, mutation.Passings, mutation.Failings, mutation.Original); err != nil {
					ctx.Err = err
					return ctx
				}
			}
		}
	}
	return ctx
}
