package learna

import (
	"context"

	"github.com/nccat/nccat/internal/cast"
	"github.com/nccat/nccat/internal/classifier"
	"github.com/nccat/nccat/internal/config"
	"github.com/nccat/nccat/internal/frontend"
	"github.com/nccat/nccat/internal/walker"
)

// Result is the output of Learn: the set of node ids identified as
// actually driving the oracle's pass/fail flip, plus the path indices
// needed by learner B and the directed generator to locate a witness
// program that exercises any given node (CLearning_A.py's return of
// identified_nodes, pc2ap, fc2ap).
type Result struct {
	IdentifiedNodes []Combination
	PassingPaths    PathIndex
	FailingPaths    PathIndex
}

// Learn identifies which mutable node ids drive the bug, from the
// combinations phase 1 already generated under astsPath/codePath.
// mutableIDs is every node id classifier.Result marked mutable. Ported
// from CLearning_A.py's learning.
func Learn(ctx context.Context, root cast.Node, w *walker.Result, cls *classifier.Result, lang *config.LanguageTable, dict *config.SharedDict, fe frontend.Frontend, cfg *config.RunConfig, astsPath, codePath string, mutableIDs []int, retryAstsDir, retryCodeDir string, workers int) (*Result, error) {
	passings, failings, pc2ap, fc2ap, err := CollectCombinations(astsPath, codePath)
	if err != nil {
		return nil, err
	}

	r1 := GetR1(passings)
	passingCombinations, forRetries := IdentifyFromLargerR(passings, r1)
	failingNodes := GetAlwaysExistingNodes(failings, mutableIDs)
	identifiedNodes := JoinCombinationSets(passingCombinations, failingNodes)

	newMutableIDs := RefineRetries(forRetries, identifiedNodes, config.DefaultRetryReplication)

	if len(newMutableIDs) > 0 {
		retried, rePC2AP, reFC2AP, err := Retry(ctx, root, w, cls, lang, dict, fe, cfg, newMutableIDs, identifiedNodes, retryAstsDir, retryCodeDir, workers)
		if err != nil {
			return nil, err
		}
		identifiedNodes = retried
		pc2ap = MergePathIndex(pc2ap, rePC2AP)
		fc2ap = MergePathIndex(fc2ap, reFC2AP)
	}

	return &Result{
		IdentifiedNodes: identifiedNodes,
		PassingPaths:    pc2ap,
		FailingPaths:    fc2ap,
	}, nil
}
