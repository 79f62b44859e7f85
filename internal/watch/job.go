package watch

import (
	"context"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/thar/internal/debug"
)

// Fingerprint hashes a surname list, in order.
func Fingerprint(names []string) uint64 {
	h := xxhash.New()
	for _, n := range names {
		_, _ = h.WriteString(n)
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// Job loads the inputs and processes them, skipping runs whose input is
// unchanged since the last successful one.
type Job struct {
	Load    func(ctx context.Context) ([]string, error)
	Process func(ctx context.Context, names []string) error

	mu      sync.Mutex
	last    uint64
	hasLast bool
	stats   JobStats
}

// JobStats counts job outcomes.
type JobStats struct {
	Runs    int
	Skipped int
	Errors  int
	LastRun time.Time
}

// RunOnce loads the inputs and processes them when their fingerprint
// changed. It reports whether Process ran.
func (j *Job) RunOnce(ctx context.Context) (bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	names, err := j.Load(ctx)
	if err != nil {
		j.stats.Errors++
		return false, err
	}

	fp := Fingerprint(names)
	if j.hasLast && fp == j.last {
		j.stats.Skipped++
		debug.LogWatch("inputs unchanged (%016x), skipping\n", fp)
		return false, nil
	}

	if err := j.Process(ctx, names); err != nil {
		j.stats.Errors++
		return false, err
	}

	j.last, j.hasLast = fp, true
	j.stats.Runs++
	j.stats.LastRun = time.Now()
	debug.LogWatch("processed %d surnames (%016x)\n", len(names), fp)
	return true, nil
}

// Stats returns a snapshot of the job counters.
func (j *Job) Stats() JobStats {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.stats
}

// Run performs an initial RunOnce, then re-runs the job after every debounced
// batch of input changes until ctx is done. Errors from re-runs go to
// onError and do not stop watching; an initial error is returned.
func Run(ctx context.Context, opts Options, job *Job, onError func(error)) error {
	if _, err := job.RunOnce(ctx); err != nil {
		return err
	}

	w, err := NewWatcher(opts, func(changed []string) {
		debug.LogWatch("%d inputs changed\n", len(changed))
		if _, err := job.RunOnce(ctx); err != nil && onError != nil {
			onError(err)
		}
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}

	<-ctx.Done()
	return w.Stop()
}
