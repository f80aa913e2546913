package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/learna"
	"github.com/nccat/nccat/internal/learnb"
	"github.com/nccat/nccat/internal/report"
	"github.com/nccat/nccat/internal/walker"
)

// Processor is one pipeline stage: it reads what earlier stages left on
// ctx, does its work, and returns ctx (possibly the same pointer) with
// its own results filled in, or with Err set on a fatal error. Grounded on
// internal/parser.ParserProcessor/internal/evaluator.EvaluatorProcessor's
// Process(ctx) *PipelineContext shape.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext threads the driver's run state through C2 (walk) ->
// C3 (classify) -> C5 (phase 1) -> C6 (learner A) -> C7 (learner B) ->
// C8 (directed generator) -> witness assembly. Unlike the teacher's LSP
// pipeline, these stages have a hard dependency chain (phase 2b cannot
// run without phase 1's grouped_files.json), so the Err field is a
// single first-fatal-error slot rather than an accumulating slice: once
// set, every later Processor's guard short-circuits and returns ctx
// unchanged, matching spec.md §7's "structural violations are fatal"
// stance and §6's "non-zero only on fatal I/O/config errors" exit code
// contract.
type PipelineContext struct {
	RunID    uuid.UUID
	Root     string
	Filename string
	Workers  int

	RunConfig  *config.RunConfig
	Language   *config.LanguageTable
	SharedDict *config.SharedDict
	Frontend   frontend.Frontend

	AST0       cast.Node
	Walker     *walker.Result
	Classifier *classifier.Result
	MutableIDs []int

	LearnA *learna.Result
	LearnB *learnb.Result

	// Report is the report store (C11) the driver writes phase summaries
	// to incrementally; nil when a caller (e.g. a unit test) has no use
	// for one.
	Report *report.Store

	Phase1AstsDir, Phase1CodeDir   string
	Phase2AAstsDir, Phase2ACodeDir string
	Phase2BAstsDir, Phase2BCodeDir string
	Phase3AstsDir, Phase3CodeDir   string
	WitnessesDir                   string

	// StartedAt and Checkpoint1At bound the two elapsed_time.out
	// checkpoints Main.py's nccat records: checkpoint 1 spans phase 1
	// through learner B, checkpoint 2 spans the directed generator
	// through witness assembly.
	StartedAt     time.Time
	Checkpoint1At time.Time

	Err error
}

// NewPipelineContext seeds a fresh run: a UUID to key the eventual report
// row, and the run's identity (root/filename/config). The phase directory
// layout itself is filled in by ScaffoldProcessor, the pipeline's first
// stage, which is the single source of truth for those paths.
func NewPipelineContext(root, filename string, cfg *config.RunConfig, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, workers int) *PipelineContext {
	return &PipelineContext{
		RunID:      uuid.New(),
		Root:       root,
		Filename:   filename,
		Workers:    workers,
		RunConfig:  cfg,
		Language:   lang,
		SharedDict: dict,
		Frontend:   fe,
		StartedAt:  time.Now(),
	}
}
