package feed

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/seismoio/quakewatch/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// Fetcher retrieves the full event list from the upstream feed
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Event, error)
}

// Cache is a single-slot TTL cache in front of the upstream feed. It bounds
// the upstream request rate to one fetch per TTL regardless of caller volume,
// and fails open to the last known good payload when a fetch errors out.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	clock   clockwork.Clock

	mu        sync.Mutex
	events    []domain.Event
	fetchedAt time.Time
	primed    bool
}

// NewCache creates a cache with the given TTL in front of the fetcher
func NewCache(fetcher Fetcher, ttl time.Duration) *Cache {
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		clock:   clockwork.NewRealClock(),
	}
}

// Events returns the current event list, fetching from upstream only when the
// cached payload is older than the TTL. The lock is held across the fetch so
// concurrent callers coalesce into a single upstream request.
func (c *Cache) Events(ctx context.Context) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.primed && c.clock.Since(c.fetchedAt) < c.ttl {
		return c.events, nil
	}

	events, err := c.fetcher.Fetch(ctx)
	if err != nil {
		if c.primed {
			// stale data beats no data, keep serving the previous payload
			log.Printf("[WARN] feed fetch failed, serving cached payload: %v", err)
			return c.events, nil
		}
		return nil, err
	}

	c.events = events
	c.fetchedAt = c.clock.Now()
	c.primed = true
	return c.events, nil
}

// Latest returns the most recent event, or nil when the feed is empty
func (c *Cache) Latest(ctx context.Context) (*domain.Event, error) {
	events, err := c.Events(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	ev := events[0]
	return &ev, nil
}

// LatestN returns up to n most recent events
func (c *Cache) LatestN(ctx context.Context, n int) ([]domain.Event, error) {
	events, err := c.Events(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) > n {
		events = events[:n]
	}
	return events, nil
}

// LatestNForRegion returns up to n most recent events whose region matches
// the given normalized region name
func (c *Cache) LatestNForRegion(ctx context.Context, region string, n int) ([]domain.Event, error) {
	events, err := c.Events(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Event, 0, n)
	for _, ev := range events {
		if ev.Region != region {
			continue
		}
		matched = append(matched, ev)
		if len(matched) == n {
			break
		}
	}
	return matched, nil
}
