package search

import (
	"context"
	"sort"

	"github.com/joaovictorsl/gorkpool"
)

// Outcome is one provider's answer to a query. Err is set when that provider
// failed; the others are unaffected.
type Outcome struct {
	Provider string
	Results  []Result
	Err      error
}

type queryTask struct {
	provider Provider
	query    string
}

// Aggregate fans query out to every provider on a worker pool and collects
// one Outcome per provider. A failing provider yields an Outcome with Err
// set instead of aborting the rest. The call returns early with ctx.Err()
// when the context is done, carrying whatever outcomes arrived in time.
func Aggregate(ctx context.Context, cfg Config, providers []Provider, query string) ([]Outcome, error) {
	if len(providers) == 0 {
		return nil, nil
	}
	cfg = cfg.withDefaults()
	workers := cfg.Workers
	if workers > len(providers) {
		workers = len(providers)
	}

	poolCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputCh := make(chan queryTask, len(providers))
	outputCh := make(chan Outcome, len(providers))
	for _, p := range providers {
		inputCh <- queryTask{provider: p, query: query}
	}

	pool := gorkpool.NewGorkPool(
		poolCtx,
		inputCh,
		outputCh,
		func(id int, ic chan queryTask, oc chan Outcome) (gorkpool.GorkWorker[int, queryTask, Outcome], error) {
			return newSearchWorker(id, poolCtx, ic, oc), nil
		},
	)
	for i := 0; i < workers; i++ {
		pool.AddWorker(i + 1)
	}

	outcomes := make([]Outcome, 0, len(providers))
	for range providers {
		select {
		case out := <-pool.OutputCh():
			outcomes = append(outcomes, out)
		case <-ctx.Done():
			return outcomes, ctx.Err()
		}
	}

	return outcomes, nil
}

// Merge flattens successful outcomes into one list ranked by seeders, best
// health first. The sort is stable so providers keep their relative order
// on ties.
func Merge(outcomes []Outcome) []Result {
	merged := make([]Result, 0)
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		merged = append(merged, o.Results...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Seeders > merged[j].Seeders
	})

	return merged
}

type searchWorker struct {
	id       int
	ctx      context.Context
	inputCh  chan queryTask
	outputCh chan Outcome
}

func newSearchWorker(id int, ctx context.Context, inputCh chan queryTask, outputCh chan Outcome) *searchWorker {
	return &searchWorker{
		id:       id,
		ctx:      ctx,
		inputCh:  inputCh,
		outputCh: outputCh,
	}
}

func (w *searchWorker) ID() int {
	return w.id
}

func (w *searchWorker) SignalRemoval() {
	// This is here so we can implement the interface
	// We won't be needing this
}

func (w *searchWorker) Process() {
	for {
		select {
		case t, ok := <-w.inputCh:
			if !ok {
				return
			}
			results, err := t.provider.Search(w.ctx, t.query)
			select {
			case w.outputCh <- Outcome{Provider: t.provider.Name(), Results: results, Err: err}:
			case <-w.ctx.Done():
				return
			}
		case <-w.ctx.Done():
			return
		}
	}
}
