package load

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"seeder/config"
	"seeder/internal/dataset"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadCfg() config.LoadConfig {
	return config.LoadConfig{
		BatchSize:    25,
		MaxRetries:   3,
		BaseDelay:    100 * time.Millisecond,
		Jitter:       0.2,
		Workers:      4,
		TableWorkers: 2,
	}
}

func makeItems(n int) []dataset.Item {
	items := make([]dataset.Item, n)
	for i := range items {
		items[i] = dataset.Item{"id": fmt.Sprintf("item-%03d", i)}
	}

	return items
}

var testTable = dataset.Table{Name: "orders", PK: "id"}

// stubStore scripts one response per BatchPut call and records the calls.
type stubStore struct {
	mu      sync.Mutex
	calls   [][]dataset.Item
	respond func(call int, items []dataset.Item) ([]dataset.Item, error)
}

func (s *stubStore) BatchPut(_ context.Context, _ dataset.Table, items []dataset.Item) ([]dataset.Item, error) {
	s.mu.Lock()
	call := len(s.calls)
	s.calls = append(s.calls, items)
	s.mu.Unlock()

	return s.respond(call, items)
}

func (s *stubStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.calls)
}

// keyedStore commits items under their table key, like the real target.
type keyedStore struct {
	mu    sync.Mutex
	items map[string]dataset.Item
}

func newKeyedStore() *keyedStore {
	return &keyedStore{items: make(map[string]dataset.Item)}
}

func (s *keyedStore) BatchPut(_ context.Context, table dataset.Table, items []dataset.Item) ([]dataset.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.items[table.Key(item)] = item
	}

	return nil, nil
}

// fakeTimer satisfies backoff.Timer: it fires immediately and records every
// requested delay, so retry tests observe backoff growth without sleeping.
type fakeTimer struct {
	mu     sync.Mutex
	delays []time.Duration
	ch     chan time.Time
}

func (t *fakeTimer) Start(d time.Duration) {
	t.mu.Lock()
	t.delays = append(t.delays, d)
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	t.ch = ch
	t.mu.Unlock()
}

func (t *fakeTimer) Stop() {}

func (t *fakeTimer) C() <-chan time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.ch
}

func TestEngine_LoadTableWritesEverything(t *testing.T) {
	store := newKeyedStore()
	engine := NewEngine(store, loadCfg(), discardLogger())

	report := engine.LoadTable(context.Background(), testTable, makeItems(57))

	assert.Equal(t, 57, report.Total)
	assert.Equal(t, 57, report.Written)
	assert.Zero(t, report.Retries)
	assert.Empty(t, report.Failed)
	assert.Zero(t, report.NotAttempted)
	assert.True(t, report.Clean())
	assert.Len(t, store.items, 57)
}

func TestEngine_ThrottleRetriesWithGrowingDelay(t *testing.T) {
	store := &stubStore{
		respond: func(call int, _ []dataset.Item) ([]dataset.Item, error) {
			if call < 2 {
				return nil, ErrThrottled
			}

			return nil, nil
		},
	}
	timer := &fakeTimer{}

	cfg := loadCfg()
	cfg.Workers = 1
	engine := NewEngine(store, cfg, discardLogger(), WithTimer(timer))

	report := engine.LoadTable(context.Background(), testTable, makeItems(10))

	assert.Equal(t, 10, report.Written)
	assert.Equal(t, 2, report.Retries)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 3, store.callCount())

	require.Len(t, timer.delays, 2)
	assert.Greater(t, timer.delays[1], timer.delays[0], "backoff delays must grow")
}

func TestEngine_ExhaustsRetryBound(t *testing.T) {
	store := &stubStore{
		respond: func(int, []dataset.Item) ([]dataset.Item, error) {
			return nil, ErrThrottled
		},
	}

	cfg := loadCfg()
	cfg.Workers = 1
	engine := NewEngine(store, cfg, discardLogger(), WithTimer(&fakeTimer{}))

	report := engine.LoadTable(context.Background(), testTable, makeItems(5))

	// One initial attempt plus exactly MaxRetries retries, then the batch fails.
	assert.Equal(t, cfg.MaxRetries+1, store.callCount())
	assert.Equal(t, cfg.MaxRetries, report.Retries)
	assert.Zero(t, report.Written)
	assert.Len(t, report.Failed, 5)
	assert.Contains(t, report.Failed, "item-000")
	assert.False(t, report.Clean())
}

func TestEngine_ResubmitsOnlyUnprocessedRemainder(t *testing.T) {
	store := &stubStore{
		respond: func(call int, items []dataset.Item) ([]dataset.Item, error) {
			if call == 0 {
				return items[8:], nil
			}

			return nil, nil
		},
	}

	cfg := loadCfg()
	cfg.Workers = 1
	engine := NewEngine(store, cfg, discardLogger(), WithTimer(&fakeTimer{}))

	report := engine.LoadTable(context.Background(), testTable, makeItems(10))

	assert.Equal(t, 10, report.Written)
	assert.Equal(t, 1, report.Retries)
	assert.Empty(t, report.Failed)

	require.Equal(t, 2, store.callCount())
	assert.Len(t, store.calls[0], 10)
	assert.Len(t, store.calls[1], 2)
}

func TestEngine_PermanentErrorFailsBatchWithoutRetry(t *testing.T) {
	store := &stubStore{
		respond: func(int, []dataset.Item) ([]dataset.Item, error) {
			return nil, errors.New("access denied")
		},
	}

	engine := NewEngine(store, loadCfg(), discardLogger(), WithTimer(&fakeTimer{}))

	report := engine.LoadTable(context.Background(), testTable, makeItems(5))

	assert.Equal(t, 1, store.callCount())
	assert.Zero(t, report.Retries)
	assert.Zero(t, report.Written)
	assert.Len(t, report.Failed, 5)
}

func TestEngine_BatchFailureIsIsolated(t *testing.T) {
	store := &stubStore{
		respond: func(call int, items []dataset.Item) ([]dataset.Item, error) {
			// Exactly one batch holds item-030; only that batch fails.
			for _, item := range items {
				if item["id"] == "item-030" {
					return nil, errors.New("access denied")
				}
			}

			return nil, nil
		},
	}

	engine := NewEngine(store, loadCfg(), discardLogger(), WithTimer(&fakeTimer{}))

	report := engine.LoadTable(context.Background(), testTable, makeItems(57))

	assert.Equal(t, 57, report.Total)
	assert.Equal(t, 32, report.Written)
	assert.Len(t, report.Failed, 25)
	assert.Contains(t, report.Failed, "item-030")
}

func TestEngine_CancelledContextSkipsBatches(t *testing.T) {
	store := &stubStore{
		respond: func(int, []dataset.Item) ([]dataset.Item, error) {
			return nil, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(store, loadCfg(), discardLogger())
	report := engine.LoadTable(ctx, testTable, makeItems(57))

	assert.Zero(t, store.callCount())
	assert.Zero(t, report.Written)
	assert.Equal(t, 57, report.NotAttempted)
	assert.Empty(t, report.Failed)
	assert.False(t, report.Clean())
}

func TestEngine_CancelDuringRetryLeavesRemainderUnattempted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := &stubStore{
		respond: func(int, []dataset.Item) ([]dataset.Item, error) {
			cancel()

			return nil, ErrThrottled
		},
	}

	cfg := loadCfg()
	cfg.Workers = 1
	engine := NewEngine(store, cfg, discardLogger(), WithTimer(&fakeTimer{}))

	report := engine.LoadTable(ctx, testTable, makeItems(5))

	// The cut-off remainder is not a permanent failure.
	assert.Equal(t, 1, store.callCount())
	assert.Zero(t, report.Written)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 5, report.NotAttempted)
}

func TestEngine_LoadAllAggregatesSortedByTable(t *testing.T) {
	store := newKeyedStore()
	engine := NewEngine(store, loadCfg(), discardLogger())

	summary := engine.LoadAll(context.Background(), []TableData{
		{Table: dataset.Table{Name: "zeta", PK: "id"}, Items: makeItems(30)},
		{Table: dataset.Table{Name: "alpha", PK: "id"}, Items: makeItems(3)},
	})

	require.Len(t, summary.Tables, 2)
	assert.Equal(t, "alpha", summary.Tables[0].Table)
	assert.Equal(t, "zeta", summary.Tables[1].Table)
	assert.Equal(t, 33, summary.Written())
	assert.False(t, summary.Failed())
}

func TestEngine_ReloadIsIdempotent(t *testing.T) {
	store := newKeyedStore()
	engine := NewEngine(store, loadCfg(), discardLogger())

	items := makeItems(40)
	first := engine.LoadTable(context.Background(), testTable, items)
	second := engine.LoadTable(context.Background(), testTable, items)

	assert.Equal(t, 40, first.Written)
	assert.Equal(t, 40, second.Written)
	// Keys fully determine identity, so a reload never duplicates data.
	assert.Len(t, store.items, 40)
}
