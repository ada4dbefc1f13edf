package engine

import (
	"context"

	"github.com/josephcolton/pathopt/graphstore"
	"github.com/josephcolton/pathopt/metrics"
	"github.com/josephcolton/pathopt/paths"
	"github.com/josephcolton/pathopt/relax"
)

// Engine bundles the read-only run state shared across an optimization
// run: the declared metrics, the loaded graph, and the Path Table they
// populate. One Engine is built per run (SPEC_FULL.md §4 "engine
// context").
type Engine struct {
	Registry *metrics.Registry
	Store    *graphstore.Store
	Table    *paths.Table
	Config   Config
}

// New builds an Engine over reg and store, initializing the Path Table
// via paths.Init. cfg is used as-is; pass NewConfig() for defaults.
func New(reg *metrics.Registry, store *graphstore.Store, cfg Config) (*Engine, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if store == nil {
		return nil, ErrNilStore
	}

	return &Engine{
		Registry: reg,
		Store:    store,
		Table:    paths.Init(store),
		Config:   cfg,
	}, nil
}

// Optimize runs the Relaxation Driver to convergence over every source
// in the Store, in mode (relax.Sequential or relax.Parallel), bounded
// by Config.Workers when parallel. It returns the Engine's own Table,
// now fully relaxed.
func (e *Engine) Optimize(ctx context.Context, mode relax.Mode) (*paths.Table, error) {
	if err := relax.OptimizeAll(ctx, e.Registry, e.Store, e.Table, mode, e.Config.Workers); err != nil {
		return nil, err
	}

	return e.Table, nil
}
