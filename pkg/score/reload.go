package score

import (
	"context"
	"fmt"

	"github.com/seekerror/logw"

	"github.com/kobanium/Ray-sub001/pkg/board"
)

// ReloadParams reads both the uct_params/ and sim_params/ tables from dir
// and returns a fresh (treeScorer, rolloutScorer) Scorer pair, for hot
// reloading a new parameter export between games without restarting the
// engine. Mirrors original_source/src/learn/LearningUtility.cpp's
// engine-side reader, which the trainer shares with the running engine --
// only the reader is in scope here, not the MM/FM training loop that
// produces the files (§1's explicit non-goal).
func ReloadParams(ctx context.Context, g *board.Geometry, dir string) (tree, rollout *Scorer, err error) {
	uct, err := LoadUCTParams(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reload uct_params: %w", err)
	}
	sim, err := LoadSimParams(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reload sim_params: %w", err)
	}

	logw.Infof(ctx, "Reloaded parameters from %v", dir)
	return NewScorer(g, uct), NewScorer(g, sim), nil
}
