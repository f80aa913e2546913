package learnb

import (
	"context"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/generate"
	"github.com/nccat/nccat/internal/learna"
	"github.com/nccat/nccat/internal/walker"
)

// Result is the output of Learn: the actual mutated node objects behind
// each identified node set, plus exactly what value(s) on each node
// flipped the oracle's verdict (CLearning_B.py's learning return of
// ids_set_to_nodes, ids_set_to_mutations).
type Result struct {
	NodesBySet     map[string]*MutatedNodeSet
	MutationsBySet map[string]SetMutations
}

// Learn generates n additional samples per identified node set, folds
// their classification into pc2ap/fc2ap, retrieves the actual mutated
// nodes, and analyzes what changed relative to ast0 (CLearning_B.py's
// learning).
func Learn(ctx context.Context, ast0 cast.Node, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, cfg *config.RunConfig, identifiedNodes []learna.Combination, n int, astsDir, codeDir string, pc2ap, fc2ap learna.PathIndex, workers int) (*Result, error) {
	idToCombination, err := GenerateSamples(ctx, ast0, w, cls, lang, dict, fe, identifiedNodes, n, astsDir, codeDir)
	if err != nil {
		return nil, err
	}

	grouped, err := generate.GroupPrograms(ctx, cfg, codeDir, workers)
	if err != nil {
		return nil, err
	}
	if err := generate.WriteGroupedFiles(codeDir, grouped); err != nil {
		return nil, err
	}

	if err := UpdateRunPaths(grouped, idToCombination, astsDir, pc2ap, fc2ap); err != nil {
		return nil, err
	}

	nodesBySet, err := GetMutatedNodes(identifiedNodes, pc2ap, fc2ap)
	if err != nil {
		return nil, err
	}

	mutationsBySet, err := AnalyzeMutatedNodes(ast0, nodesBySet)
	if err != nil {
		return nil, err
	}

	return &Result{NodesBySet: nodesBySet, MutationsBySet: mutationsBySet}, nil
}
