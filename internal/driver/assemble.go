package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/pipeline"
)

// AssembleProcessor flattens every phase 3 .c file into a single
// witnesses/ directory under sequential code__N.c names, classifies the
// assembled suite with the oracle, quarantines invalids, and copies the
// original PoC in as code__0.c (Main.py's move_files_with_extension plus
// the tail of nccat after CDirected.directed_generator returns).
type AssembleProcessor struct{}

func (AssembleProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil {
		return ctx
	}

	if err := moveFilesWithExtension(ctx.Phase3CodeDir, ctx.WitnessesDir, ".c"); err != nil {
		ctx.Err = err
		return ctx
	}

	grouped, err := generate.GroupPrograms(context.Background(), ctx.RunConfig, ctx.WitnessesDir, ctx.Workers)
	if err != nil {
		ctx.Err = err
		return ctx
	}

	if ctx.Report != nil {
		runID := ctx.RunID.String()
		for _, id := range grouped.Passings {
			if err := ctx.Report.RecordVariant(runID, id, "witnesses", 0, "", "pass"); err != nil {
				ctx.Err = err
				return ctx
			}
		}
		for _, id := range grouped.Failings {
			if err := ctx.Report.RecordVariant(runID, id, "witnesses", 0, "", "fail"); err != nil {
				ctx.Err = err
				return ctx
			}
		}
		for _, id := range grouped.Invalids {
			if err := ctx.Report.RecordVariant(runID, id, "witnesses", 0, "", "invalid"); err != nil {
				ctx.Err = err
				return ctx
			}
		}
	}

	invalidsDir := filepath.Join(ctx.WitnessesDir, config.InvalidsDir)
	for _, id := range grouped.Invalids {
		name := fmt.Sprintf("code__%d.c", id)
		if err := os.Rename(filepath.Join(ctx.WitnessesDir, name), filepath.Join(invalidsDir, name)); err != nil {
			ctx.Err = err
			return ctx
		}
	}

	pocPath := filepath.Join(ctx.Root, ctx.Filename)
	if err := copyFile(pocPath, filepath.Join(ctx.WitnessesDir, "code__0.c")); err != nil {
		ctx.Err = err
		return ctx
	}

	if err := writeElapsedTime(ctx); err != nil {
		ctx.Err = err
	}
	return ctx
}

// moveFilesWithExtension copies every file matching extension found
// anywhere under sourceDir into targetDir, renamed code__1.ext,
// code__2.ext, … in a deterministic (sorted path) order.
func moveFilesWithExtension(sourceDir, targetDir, extension string) error {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}

	var sources []string
	err := filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, extension) {
			sources = append(sources, path)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	sort.Strings(sources)

	for i, src := range sources {
		dst := filepath.Join(targetDir, fmt.Sprintf("code__%d%s", i+1, extension))
		if err := copyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// writeElapsedTime records the two wall-clock checkpoints Main.py's
// nccat tracks: phase 1 through learner B, and the directed generator
// through witness assembly.
func writeElapsedTime(ctx *pipeline.PipelineContext) error {
	checkpoint1 := ctx.Checkpoint1At.Sub(ctx.StartedAt).Minutes()
	checkpoint2 := time.Since(ctx.Checkpoint1At).Minutes()

	out := fmt.Sprintf("Checkpoint-1: %.2f\nCheckpoint-2: %.2f\n", checkpoint1, checkpoint2)
	return os.WriteFile(filepath.Join(ctx.Root, config.ElapsedTimeFile), []byte(out), 0o644)
}
