package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismoio/quakewatch/pkg/domain"
	"github.com/seismoio/quakewatch/pkg/feed"
	feedmocks "github.com/seismoio/quakewatch/pkg/feed/mocks"
	"github.com/seismoio/quakewatch/pkg/repository"
	"github.com/seismoio/quakewatch/pkg/scheduler/mocks"
)

// end-to-end cycle against the real cache and the real sqlite-backed
// registry and ledger, with only the notifier mocked out
func TestMonitor_EndToEnd(t *testing.T) {
	ctx := context.Background()

	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer func() { assert.NoError(t, repos.Close()) }()

	require.NoError(t, repos.Subscriber.Upsert(ctx, 10, ""))
	require.NoError(t, repos.Subscriber.Upsert(ctx, 20, "izmir"))
	require.NoError(t, repos.Subscriber.Upsert(ctx, 30, "bursa"))

	fetcher := &feedmocks.FetcherMock{
		FetchFunc: func(_ context.Context) ([]domain.Event, error) {
			return []domain.Event{
				{ID: "eq1", Title: "AEGEAN SEA", Magnitude: "4.2", Date: "2024-01-01T00:00:00", Region: "izmir"},
			}, nil
		},
	}
	cache := feed.NewCache(fetcher, 3*time.Minute)

	notifier := &mocks.NotifierMock{
		SendFunc: func(_ context.Context, _ int64, _ string) (domain.DeliveryOutcome, error) {
			return domain.DeliveryOK, nil
		},
	}

	m := NewMonitor(Params{
		Events:      cache,
		Ledger:      repos.Ledger,
		Subscribers: repos.Subscriber,
		Notifier:    notifier,
	})

	// first cycle announces eq1 to the wildcard and izmir subscribers only
	require.NoError(t, m.processCycle(ctx))

	calls := notifier.SendCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, int64(10), calls[0].SubscriberID)
	assert.Equal(t, int64(20), calls[1].SubscriberID)
	assert.Contains(t, calls[0].Text, "4.2")

	sent, err := repos.Ledger.IsSent(ctx, "eq1")
	require.NoError(t, err)
	assert.True(t, sent)

	// second cycle with the same event is a no-op
	require.NoError(t, m.processCycle(ctx))
	assert.Len(t, notifier.SendCalls(), 2, "no deliveries on the second cycle")
}
