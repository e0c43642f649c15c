package load

import (
	"context"

	"seeder/internal/dataset"

	"github.com/pkg/errors"
)

// Store is the target partitioned key-value store. One BatchPut call writes
// at most the batch capacity of items and returns the subset the store did
// not commit; unprocessed items must be re-submitted by the caller. Writes
// are idempotent: each item's key fully determines its identity, so a retry
// never duplicates data.
type Store interface {
	BatchPut(ctx context.Context, table dataset.Table, items []dataset.Item) ([]dataset.Item, error)
}

// ErrThrottled marks a capacity-related rejection of a whole request. The
// engine treats it as "everything unprocessed" and retries under backoff.
var ErrThrottled = errors.New("store throttled")
