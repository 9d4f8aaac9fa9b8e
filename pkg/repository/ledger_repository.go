package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// LedgerRepository is the durable dedup ledger of already-announced event ids.
// Records are write-once and never deleted; event volume is low enough that
// unbounded growth is acceptable.
type LedgerRepository struct {
	db *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// IsSent checks whether the event id has already been announced
func (r *LedgerRepository) IsSent(ctx context.Context, eventID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(1) FROM sent_events WHERE event_id = ?", eventID)
	if err != nil {
		return false, fmt.Errorf("check sent event: %w", err)
	}
	return count > 0, nil
}

// MarkSent records the event id as announced. Recording an already-present
// id is a no-op, not an error.
func (r *LedgerRepository) MarkSent(ctx context.Context, eventID string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "INSERT OR IGNORE INTO sent_events (event_id) VALUES (?)", eventID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark event sent: %w", err)}
		}
		return nil
	})
}
