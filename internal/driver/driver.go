package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/pipeline"
	"github.com/nccat/nccat/internal/report"
)

// ReportDBFile is the report store's filename under a run's root.
const ReportDBFile = "report.db"

// Run sequences the full pipeline (C2-C3, C5-C8, witness assembly) over
// one run's configuration and returns the finished PipelineContext.
// ctx.Err carries the first fatal error, if any (spec.md §6's exit-code
// contract: callers should exit non-zero exactly when it is non-nil).
func Run(cfg *config.RunConfig, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, workers int) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(cfg.Root, cfg.Filename, cfg, lang, dict, fe, workers)

	store, err := report.Open(filepath.Join(cfg.Root, ReportDBFile))
	if err != nil {
		// The report store is a diagnostic convenience over the
		// authoritative on-disk JSON artifacts (SPEC_FULL.md §4.10), so
		// failing to open it does not abort the run.
		fmt.Fprintf(os.Stderr, "nccat: report store unavailable: %v\n", err)
	} else {
		ctx.Report = store
		if err := store.RecordRun(ctx.RunID.String(), cfg.Root, ctx.StartedAt); err != nil {
			fmt.Fprintf(os.Stderr, "nccat: recording run: %v\n", err)
		}
		defer store.Close()
	}

	p := pipeline.New(
		ScaffoldProcessor{},
		ParseProcessor{},
		Phase1Processor{},
		LearnerAProcessor{},
		LearnerBProcessor{},
		DirectedProcessor{},
		AssembleProcessor{},
	)
	return p.Run(ctx)
}
