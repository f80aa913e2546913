package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/oracle"
)

// GroupedFiles is one level's classification of its generated code files
// into passing/failing/invalid, keyed by ast id (SharedEditor.py's
// group_all_programs / grouped_files.json).
type GroupedFiles struct {
	Passings []int `json:"passings"`
	Failings []int `json:"failings"`
	Invalids []int `json:"invalids"`
}

// GroupPrograms runs the oracle over every code__<id>.c file in codeDir,
// concurrently, and classifies each: Pass verdict -> passings, Fail
// verdict -> failings (a witness), Invalid -> invalids. Each concurrent
// oracle evaluation gets its own scratch subdirectory so the two compiled
// binaries from one candidate never collide with another's.
func GroupPrograms(ctx context.Context, cfg *config.RunConfig, codeDir string, workers int) (*GroupedFiles, error) {
	entries, err := os.ReadDir(codeDir)
	if err != nil {
		return nil, err
	}

	var files GroupedFiles
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".c") {
			continue
		}
		id, err := astIDFromCodeName(name)
		if err != nil {
			continue
		}
		sourcePath := filepath.Join(codeDir, name)

		g.Go(func() error {
			workDir, err := os.MkdirTemp(codeDir, fmt.Sprintf("oracle-%d-", id))
			if err != nil {
				return err
			}
			defer os.RemoveAll(workDir)

			o := oracle.New(cfg, workDir)
			res, err := o.Evaluate(gctx, sourcePath)
			if err != nil {
				return err
			}

			mu.Lock()
			switch res.Verdict {
			case oracle.Pass:
				files.Passings = append(files.Passings, id)
			case oracle.Fail:
				files.Failings = append(files.Failings, id)
			default:
				files.Invalids = append(files.Invalids, id)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &files, nil
}

// astIDFromCodeName extracts the integer id out of "code__<id>.c"
// (SharedEditor.py: int(file_name.split("__")[1].split(".")[0])).
func astIDFromCodeName(name string) (int, error) {
	parts := strings.SplitN(name, "__", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("generate: malformed code filename %q", name)
	}
	numPart := strings.TrimSuffix(parts[1], filepath.Ext(parts[1]))
	return strconv.Atoi(numPart)
}

// WriteGroupedFiles persists a level's classification to grouped_files.json.
func WriteGroupedFiles(codeDir string, files *GroupedFiles) error {
	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(codeDir, config.GroupedFilesFile), data, 0o644)
}
