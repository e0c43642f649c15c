// Package load is the batch load engine: it partitions validated entity
// collections into fixed-size batches, writes them to the target store with
// bounded concurrency, resolves unprocessed and throttled items through
// exponential backoff, and reports per-item success and failure.
package load

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"seeder/config"
	"seeder/internal/dataset"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// errPartial signals that a write committed only part of a batch; the
// remainder is retried under backoff.
var errPartial = errors.New("batch partially unprocessed")

// Engine writes per-table datasets to a Store under the configured batch
// capacity, retry bound and worker limits. Tables share no mutable state, so
// independent tables load in parallel; within a table, batches are dispatched
// concurrently but each batch's retry loop is self-contained.
type Engine struct {
	store  Store
	cfg    config.LoadConfig
	logger *slog.Logger
	timer  backoff.Timer
}

// Option adjusts an Engine.
type Option func(*Engine)

// WithTimer replaces the backoff wait timer, letting tests observe delays
// without sleeping.
func WithTimer(t backoff.Timer) Option {
	return func(e *Engine) { e.timer = t }
}

// NewEngine builds an Engine around the target store.
func NewEngine(store Store, cfg config.LoadConfig, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{store: store, cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// TableData pairs a table with the items destined for it.
type TableData struct {
	Table dataset.Table
	Items []dataset.Item
}

// LoadAll loads every table, running up to cfg.TableWorkers tables in
// parallel, and returns the aggregated summary sorted by table name.
func (e *Engine) LoadAll(ctx context.Context, tables []TableData) Summary {
	reports := make([]TableReport, len(tables))

	g := new(errgroup.Group)
	g.SetLimit(e.cfg.TableWorkers)
	for i, td := range tables {
		g.Go(func() error {
			reports[i] = e.LoadTable(ctx, td.Table, td.Items)

			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(reports, func(i, j int) bool { return reports[i].Table < reports[j].Table })

	return Summary{Tables: reports}
}

// LoadTable partitions items into batches of at most cfg.BatchSize and writes
// them with up to cfg.Workers batches in flight. Batch failures are isolated:
// exhausted retries record the batch's remaining items as permanently failed
// and the table proceeds. Once ctx is cancelled no new batch starts; batches
// already in flight finish their current attempt.
func (e *Engine) LoadTable(ctx context.Context, table dataset.Table, items []dataset.Item) TableReport {
	report := TableReport{Table: table.Name, Total: len(items)}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(e.cfg.Workers)

	for _, batch := range Partition(items, e.cfg.BatchSize) {
		g.Go(func() error {
			if ctx.Err() != nil {
				mu.Lock()
				report.NotAttempted += len(batch)
				mu.Unlock()

				return nil
			}

			res := e.writeBatch(ctx, table, batch)

			mu.Lock()
			report.Written += res.written
			report.Retries += res.retries
			report.NotAttempted += len(res.notAttempted)
			for _, item := range res.failed {
				report.Failed = append(report.Failed, table.Key(item))
			}
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	e.logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.Int("total", report.Total),
		slog.Int("written", report.Written),
		slog.Int("failed", len(report.Failed)),
		slog.Int("not_attempted", report.NotAttempted),
		slog.Int("retries", report.Retries))

	return report
}

type batchResult struct {
	written      int
	retries      int
	failed       []dataset.Item
	notAttempted []dataset.Item
}

// writeBatch drives one batch to completion: write, re-submit whatever the
// store reports unprocessed, backing off exponentially (base delay doubling
// per attempt, plus jitter) up to cfg.MaxRetries retries. Throttling counts
// as the whole remainder unprocessed. Any other store error is permanent for
// the batch.
func (e *Engine) writeBatch(ctx context.Context, table dataset.Table, batch []dataset.Item) batchResult {
	var res batchResult
	pending := batch

	operation := func() error {
		unprocessed, err := e.store.BatchPut(ctx, table, pending)
		switch {
		case errors.Is(err, ErrThrottled):
			return err
		case err != nil:
			return backoff.Permanent(err)
		case len(unprocessed) > 0:
			pending = unprocessed

			return errPartial
		default:
			pending = nil

			return nil
		}
	}

	notify := func(err error, delay time.Duration) {
		res.retries++
		e.logger.Debug("batch retry",
			slog.String("table", table.Name),
			slog.Int("pending", len(pending)),
			slog.Duration("delay", delay),
			slog.String("reason", err.Error()))
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = e.cfg.BaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = e.cfg.Jitter
	bo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(e.cfg.MaxRetries)), ctx)
	err := backoff.RetryNotifyWithTimer(operation, policy, notify, e.timer)

	res.written = len(batch) - len(pending)
	if err == nil || len(pending) == 0 {
		return res
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Cancelled mid-loop: the remainder was never exhausted, only cut off.
		res.notAttempted = pending

		return res
	}
	res.failed = pending
	e.logger.Warn("batch exhausted retries",
		slog.String("table", table.Name),
		slog.Int("failed", len(pending)),
		slog.String("error", err.Error()))

	return res
}
