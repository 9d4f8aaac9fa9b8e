// Package scheduler runs the background monitor: a single perpetual loop
// that checks the feed for a not-yet-announced event and fans it out to
// matching subscribers.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jonboulle/clockwork"

	"github.com/seismoio/quakewatch/pkg/domain"
)

//go:generate moq -out mocks/event_source.go -pkg mocks -skip-ensure -fmt goimports . EventSource
//go:generate moq -out mocks/ledger.go -pkg mocks -skip-ensure -fmt goimports . Ledger
//go:generate moq -out mocks/subscriber_store.go -pkg mocks -skip-ensure -fmt goimports . SubscriberStore
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// EventSource provides the most recent feed event, nil when the feed is empty
type EventSource interface {
	Latest(ctx context.Context) (*domain.Event, error)
}

// Ledger is the durable set of already-announced event ids
type Ledger interface {
	IsSent(ctx context.Context, eventID string) (bool, error)
	MarkSent(ctx context.Context, eventID string) error
}

// SubscriberStore provides the registry snapshot and pruning of dead channels
type SubscriberStore interface {
	List(ctx context.Context) ([]domain.Subscriber, error)
	Delete(ctx context.Context, id int64) error
}

// Notifier delivers one message to one subscriber
type Notifier interface {
	Send(ctx context.Context, subscriberID int64, text string) (domain.DeliveryOutcome, error)
}

// Monitor owns the background check loop. Exactly one loop goroutine runs
// per Monitor, so cycles never overlap and the ledger check-then-record
// sequence is never interleaved for the same event.
type Monitor struct {
	events      EventSource
	ledger      Ledger
	subscribers SubscriberStore
	notifier    Notifier
	interval    time.Duration
	clock       clockwork.Clock

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params holds monitor dependencies and configuration
type Params struct {
	Events      EventSource
	Ledger      Ledger
	Subscribers SubscriberStore
	Notifier    Notifier
	Interval    time.Duration
	Clock       clockwork.Clock // nil means real clock
}

// NewMonitor creates a monitor instance
func NewMonitor(p Params) *Monitor {
	if p.Interval == 0 {
		p.Interval = 3 * time.Minute
	}
	if p.Clock == nil {
		p.Clock = clockwork.NewRealClock()
	}

	return &Monitor{
		events:      p.Events,
		ledger:      p.Ledger,
		subscribers: p.Subscribers,
		notifier:    p.Notifier,
		interval:    p.Interval,
		clock:       p.Clock,
	}
}

// Start begins the background loop. An immediate cycle runs on start so a
// pending event is announced without waiting for the first tick.
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	m.wg.Add(1)
	go m.run(ctx)

	lgr.Printf("[INFO] monitor started with interval %v", m.interval)
}

// Stop cancels the loop and waits for the in-flight cycle to finish
func (m *Monitor) Stop() {
	lgr.Printf("[INFO] stopping monitor...")
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
	lgr.Printf("[INFO] monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer m.wg.Done()

	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()

	if err := m.processCycle(ctx); err != nil {
		lgr.Printf("[ERROR] monitor cycle failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			// a failed cycle is logged and the loop continues on the next tick
			if err := m.processCycle(ctx); err != nil {
				lgr.Printf("[ERROR] monitor cycle failed: %v", err)
			}
		}
	}
}

// processCycle runs one check-and-deliver pass: take the latest event, skip
// it if already announced, fan out to matching subscribers, then record it
// in the ledger. The ledger write happens after the fan-out attempt so a
// crash before any delivery never drops an event silently; the cost is a
// narrow duplicate-delivery window on crash mid-fanout.
func (m *Monitor) processCycle(ctx context.Context) error {
	ev, err := m.events.Latest(ctx)
	if err != nil {
		return fmt.Errorf("get latest event: %w", err)
	}
	if ev == nil {
		return nil
	}
	if ev.ID == "" {
		// cannot deduplicate an event without an id, skip it
		lgr.Printf("[WARN] skipping event without id: %q", ev.Title)
		return nil
	}

	sent, err := m.ledger.IsSent(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("check ledger for %s: %w", ev.ID, err)
	}
	if sent {
		return nil
	}

	subs, err := m.subscribers.List(ctx)
	if err != nil {
		return fmt.Errorf("snapshot subscribers: %w", err)
	}

	msg := ev.Announcement()
	delivered, pruned := 0, 0
	for _, sub := range subs {
		if !sub.Wants(ev.Region) {
			continue
		}

		outcome, sendErr := m.notifier.Send(ctx, sub.ID, msg)
		switch outcome {
		case domain.DeliveryOK:
			delivered++
		case domain.DeliveryPermanentFailure:
			lgr.Printf("[WARN] subscriber %d unreachable, removing: %v", sub.ID, sendErr)
			if delErr := m.subscribers.Delete(ctx, sub.ID); delErr != nil {
				lgr.Printf("[ERROR] failed to remove subscriber %d: %v", sub.ID, delErr)
			}
			pruned++
		case domain.DeliveryTransientFailure:
			// no retry this cycle, the next event cycle is the implicit retry
			lgr.Printf("[WARN] delivery to %d failed: %v", sub.ID, sendErr)
		}
	}

	if err := m.ledger.MarkSent(ctx, ev.ID); err != nil {
		return fmt.Errorf("mark event %s sent: %w", ev.ID, err)
	}

	lgr.Printf("[INFO] announced event %s (%s, mag %s): delivered %d, pruned %d",
		ev.ID, ev.Region, ev.Magnitude, delivered, pruned)
	return nil
}
