package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]string{"Sharma", "Thapa"})
	assert.Equal(t, a, Fingerprint([]string{"Sharma", "Thapa"}))
	assert.NotEqual(t, a, Fingerprint([]string{"Thapa", "Sharma"}))
	// the separator keeps token boundaries
	assert.NotEqual(t, Fingerprint([]string{"ab", "c"}), Fingerprint([]string{"a", "bc"}))
}

func TestJobRunOnceSkipsUnchanged(t *testing.T) {
	input := []string{"Sharma"}
	var processed [][]string
	job := &Job{
		Load: func(context.Context) ([]string, error) { return input, nil },
		Process: func(_ context.Context, names []string) error {
			processed = append(processed, names)
			return nil
		},
	}
	ctx := context.Background()

	ran, err := job.RunOnce(ctx)
	require.NoError(t, err)
	assert.True(t, ran)

	ran, err = job.RunOnce(ctx)
	require.NoError(t, err)
	assert.False(t, ran)

	input = []string{"Sharma", "Thapa"}
	ran, err = job.RunOnce(ctx)
	require.NoError(t, err)
	assert.True(t, ran)

	assert.Len(t, processed, 2)
	stats := job.Stats()
	assert.Equal(t, 2, stats.Runs)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Errors)
}

func TestJobFailedProcessIsRetried(t *testing.T) {
	fail := true
	job := &Job{
		Load: func(context.Context) ([]string, error) { return []string{"Rai"}, nil },
		Process: func(context.Context, []string) error {
			if fail {
				return errors.New("disk full")
			}
			return nil
		},
	}

	_, err := job.RunOnce(context.Background())
	require.Error(t, err)

	fail = false
	ran, err := job.RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, ran, "a failed run must not record the fingerprint")
	assert.Equal(t, 1, job.Stats().Errors)
}

func TestJobLoadError(t *testing.T) {
	job := &Job{
		Load:    func(context.Context) ([]string, error) { return nil, errors.New("no input") },
		Process: func(context.Context, []string) error { return nil },
	}
	_, err := job.RunOnce(context.Background())
	assert.EqualError(t, err, "no input")
}

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "names.txt")

	w, err := NewWatcher(Options{Patterns: []string{plain, filepath.Join(dir, "rolls", "**", "*.csv")}}, nil)
	require.NoError(t, err)
	defer w.Stop()

	assert.True(t, w.Matches(plain))
	assert.True(t, w.Matches(filepath.Join(dir, "rolls", "ward1", "a.csv")))
	assert.True(t, w.Matches(filepath.Join(dir, "rolls", "a.csv")))
	assert.False(t, w.Matches(filepath.Join(dir, "rolls", "a.txt")))
	assert.False(t, w.Matches(filepath.Join(dir, "other.txt")))
}

func TestParsePattern(t *testing.T) {
	dir := t.TempDir()

	p, err := parsePattern(filepath.Join(dir, "*.csv"))
	require.NoError(t, err)
	assert.True(t, p.glob)
	assert.False(t, p.recursive)
	assert.Equal(t, dir, p.base)

	p, err = parsePattern(filepath.Join(dir, "rolls", "**", "*.csv"))
	require.NoError(t, err)
	assert.True(t, p.recursive)
	assert.Equal(t, filepath.Join(dir, "rolls"), p.base)

	p, err = parsePattern(filepath.Join(dir, "names.txt"))
	require.NoError(t, err)
	assert.False(t, p.glob)
	assert.Equal(t, dir, p.base)
}

func TestNewWatcherNeedsPatterns(t *testing.T) {
	_, err := NewWatcher(Options{}, nil)
	assert.Error(t, err)
}

func TestDebouncerBatches(t *testing.T) {
	batches := make(chan map[string]EventType, 4)
	d := newEventDebouncer(20*time.Millisecond, func(b map[string]EventType) { batches <- b })

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go d.run(ctx, &wg)

	d.addEvent(ctx, "a.txt", EventCreate)
	d.addEvent(ctx, "a.txt", EventWrite)
	d.addEvent(ctx, "b.txt", EventRemove)

	select {
	case b := <-batches:
		assert.Equal(t, map[string]EventType{"a.txt": EventWrite, "b.txt": EventRemove}, b)
	case <-time.After(2 * time.Second):
		t.Fatal("no batch flushed")
	}

	cancel()
	wg.Wait()
	assert.Empty(t, batches)
}

func TestRunReactsToChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("Sharma\n"), 0644))

	var mu sync.Mutex
	var runs [][]string
	job := &Job{
		Load: func(context.Context) ([]string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			return strings.Fields(string(data)), nil
		},
		Process: func(_ context.Context, names []string) error {
			mu.Lock()
			defer mu.Unlock()
			runs = append(runs, names)
			return nil
		},
	}
	runCount := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(runs)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{Patterns: []string{path}, Debounce: 20 * time.Millisecond}, job, nil)
	}()

	require.Eventually(t, func() bool { return runCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Give the watcher time to register before touching the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("Sharma\nThapa\n"), 0644))
	// a truncating write may surface as two batches; only the final content matters
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(runs) >= 2 && len(runs[len(runs)-1]) == 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Sharma", "Thapa"}, runs[len(runs)-1])
}

func TestRunInitialError(t *testing.T) {
	job := &Job{
		Load:    func(context.Context) ([]string, error) { return nil, errors.New("missing input") },
		Process: func(context.Context, []string) error { return nil },
	}
	err := Run(context.Background(), Options{Patterns: []string{"x.txt"}}, job, nil)
	assert.EqualError(t, err, "missing input")
}
