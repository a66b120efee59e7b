package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRunPreservesOrderAcrossWorkers(t *testing.T) {
	pool := NewPool(3)
	jobs := make([]Job, 10)
	for i := range jobs {
		i := i
		jobs[i] = func(ctx context.Context) (string, error) {
			return fmt.Sprintf("job-%d", i), nil
		}
	}

	results := pool.Run(context.Background(), jobs)
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has Index %d", i, r.Index)
		}
		want := fmt.Sprintf("job-%d", i)
		if r.Output != want || r.Err != nil {
			t.Errorf("result %d = (%q, %v), want (%q, nil)", i, r.Output, r.Err, want)
		}
	}
}

func TestRunCollectsErrorsWithoutStoppingOtherJobs(t *testing.T) {
	pool := NewPool(2)
	boom := errors.New("boom")
	jobs := []Job{
		func(ctx context.Context) (string, error) { return "", boom },
		func(ctx context.Context) (string, error) { return "ok", nil },
	}

	results := pool.Run(context.Background(), jobs)
	if results[0].Err != boom {
		t.Errorf("job 0 err = %v, want %v", results[0].Err, boom)
	}
	if results[1].Output != "ok" || results[1].Err != nil {
		t.Errorf("job 1 = (%q, %v), want (\"ok\", nil)", results[1].Output, results[1].Err)
	}
}

func TestRunRecoversPanickingJob(t *testing.T) {
	pool := NewPool(1)
	jobs := []Job{
		func(ctx context.Context) (string, error) { panic("kaboom") },
	}
	results := pool.Run(context.Background(), jobs)
	if results[0].Err == nil {
		t.Fatal("expected an error from a panicking job")
	}
}

func TestRunHonorsCancelledContext(t *testing.T) {
	pool := NewPool(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{
		func(ctx context.Context) (string, error) { return "unreachable", nil },
	}
	results := pool.Run(ctx, jobs)
	if results[0].Err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
