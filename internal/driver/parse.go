package driver

import (
	"context"
	"path/filepath"

	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/diagnostics"
	"github.com/nccat/nccat/internal/pipeline"
	"github.com/nccat/nccat/internal/walker"
)

// ParseProcessor parses the PoC (C10's frontend boundary), walks it (C2),
// and classifies every node's mutability (C3). Its output, ctx.AST0, is
// the "ast_0" every later stage clones from (Main.py's preprocess_c_ast).
type ParseProcessor struct{}

func (ParseProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil {
		return ctx
	}

	pocPath := filepath.Join(ctx.Root, ctx.Filename)
	prog, err := ctx.Frontend.Parse(context.Background(), pocPath)
	if err != nil {
		ctx.Err = diagnostics.NewStructuralViolation("ast-parsed", err.Error())
		return ctx
	}

	w := walker.Walk(prog)
	if w.Count == 0 {
		ctx.Err = diagnostics.NewStructuralViolation("ast-walked", "walker produced no nodes")
		return ctx
	}
	cls := classifier.Classify(prog, w, ctx.Language, ctx.SharedDict)

	ctx.AST0 = prog
	ctx.Walker = w
	ctx.Classifier = cls
	ctx.MutableIDs = cls.IDs
	return ctx
}
