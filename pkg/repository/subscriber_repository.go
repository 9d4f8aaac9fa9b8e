package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/seismoio/quakewatch/pkg/domain"
)

// SubscriberRepository handles subscriber registry operations. Region values
// are trusted to be validated by the caller against the gazetteer; the
// repository stores whatever it is given.
type SubscriberRepository struct {
	db *sqlx.DB
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Register inserts a subscriber with wildcard interest if not present yet.
// An existing subscriber keeps its region untouched.
func (r *SubscriberRepository) Register(ctx context.Context, id int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "INSERT OR IGNORE INTO subscribers (id, region) VALUES (?, '')", id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("register subscriber: %w", err)}
		}
		return nil
	})
}

// Upsert inserts the subscriber or overwrites its region, identity-preserving
func (r *SubscriberRepository) Upsert(ctx context.Context, id int64, region string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO subscribers (id, region)
			VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET region = excluded.region, updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query, id, region)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert subscriber: %w", err)}
		}
		return nil
	})
}

// GetRegion returns the subscriber's region and whether the subscriber exists
func (r *SubscriberRepository) GetRegion(ctx context.Context, id int64) (region string, found bool, err error) {
	err = r.db.GetContext(ctx, &region, "SELECT region FROM subscribers WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get subscriber region: %w", err)
	}
	return region, true, nil
}

// Delete removes a subscriber, used when delivery is confirmed permanently failing
func (r *SubscriberRepository) Delete(ctx context.Context, id int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM subscribers WHERE id = ?", id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("delete subscriber: %w", err)}
		}
		return nil
	})
}

// List returns a full snapshot of all subscribers
func (r *SubscriberRepository) List(ctx context.Context) ([]domain.Subscriber, error) {
	var rows []struct {
		ID     int64  `db:"id"`
		Region string `db:"region"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, region FROM subscribers ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	subs := make([]domain.Subscriber, len(rows))
	for i, row := range rows {
		subs[i] = domain.Subscriber{ID: row.ID, Region: row.Region}
	}
	return subs, nil
}
