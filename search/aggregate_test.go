package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aestivial/TorrQ/search"
)

type stubProvider struct {
	name    string
	results []search.Result
	err     error
	delay   time.Duration
}

func (s stubProvider) Name() string {
	return s.name
}

func (s stubProvider) Search(ctx context.Context, query string) ([]search.Result, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func TestAggregateCollectsEveryProvider(t *testing.T) {
	providers := []search.Provider{
		stubProvider{name: "alpha", results: []search.Result{{Title: "a1", Source: "alpha"}}},
		stubProvider{name: "beta", err: errors.New("beta is down")},
		stubProvider{name: "gamma", delay: 10 * time.Millisecond, results: []search.Result{{Title: "g1", Source: "gamma"}}},
	}

	outcomes, err := search.Aggregate(context.Background(), search.Config{}, providers, "query")
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}

	byProvider := make(map[string]search.Outcome)
	for _, o := range outcomes {
		byProvider[o.Provider] = o
	}
	if o := byProvider["alpha"]; o.Err != nil || len(o.Results) != 1 {
		t.Errorf("Unexpected alpha outcome %+v", o)
	}
	if o := byProvider["beta"]; o.Err == nil {
		t.Errorf("Expected beta to report its failure")
	}
	if o := byProvider["gamma"]; o.Err != nil || len(o.Results) != 1 {
		t.Errorf("Unexpected gamma outcome %+v", o)
	}
}

func TestAggregateSingleWorkerDrainsAllTasks(t *testing.T) {
	providers := []search.Provider{
		stubProvider{name: "alpha", results: []search.Result{{Title: "a1"}}},
		stubProvider{name: "beta", results: []search.Result{{Title: "b1"}}},
		stubProvider{name: "gamma", results: []search.Result{{Title: "g1"}}},
	}

	outcomes, err := search.Aggregate(context.Background(), search.Config{Workers: 1}, providers, "query")
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if len(outcomes) != 3 {
		t.Errorf("Expected 3 outcomes from one worker, got %d", len(outcomes))
	}
}

func TestAggregateStopsOnContextDone(t *testing.T) {
	providers := []search.Provider{
		stubProvider{name: "slow", delay: 5 * time.Second},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := search.Aggregate(ctx, search.Config{}, providers, "query")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected DeadlineExceeded, got %v", err)
	}
}

func TestAggregateNoProviders(t *testing.T) {
	outcomes, err := search.Aggregate(context.Background(), search.Config{}, nil, "query")
	if err != nil || outcomes != nil {
		t.Errorf("Expected nothing to do, got %v, %v", outcomes, err)
	}
}

func TestMergeRanksBySeeders(t *testing.T) {
	outcomes := []search.Outcome{
		{Provider: "alpha", Results: []search.Result{
			{Title: "low", Seeders: 3},
			{Title: "tie-first", Seeders: 7},
		}},
		{Provider: "beta", Err: errors.New("down"), Results: []search.Result{
			{Title: "must not appear", Seeders: 100},
		}},
		{Provider: "gamma", Results: []search.Result{
			{Title: "top", Seeders: 42},
			{Title: "tie-second", Seeders: 7},
		}},
	}

	merged := search.Merge(outcomes)
	if len(merged) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(merged))
	}

	wantOrder := []string{"top", "tie-first", "tie-second", "low"}
	for i, want := range wantOrder {
		if merged[i].Title != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, merged[i].Title)
		}
	}
}

func TestMergeEmptyOutcomes(t *testing.T) {
	if got := search.Merge(nil); len(got) != 0 {
		t.Errorf("Expected no results, got %v", got)
	}
}
