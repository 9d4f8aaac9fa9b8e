package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismoio/quakewatch/pkg/domain"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repos.Close())
	})

	require.NoError(t, repos.Ping(context.Background()))
	return repos
}

func TestSubscriberRepository_RegisterAndUpsert(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	// unknown subscriber
	_, found, err := repos.Subscriber.GetRegion(ctx, 10)
	require.NoError(t, err)
	assert.False(t, found)

	// register defaults to wildcard interest
	require.NoError(t, repos.Subscriber.Register(ctx, 10))
	region, found, err := repos.Subscriber.GetRegion(ctx, 10)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, region)

	// set a region
	require.NoError(t, repos.Subscriber.Upsert(ctx, 10, "ankara"))
	region, found, err = repos.Subscriber.GetRegion(ctx, 10)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ankara", region)

	// re-register must not wipe the chosen region
	require.NoError(t, repos.Subscriber.Register(ctx, 10))
	region, _, err = repos.Subscriber.GetRegion(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "ankara", region)
}

func TestSubscriberRepository_UpsertIdempotent(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Subscriber.Upsert(ctx, 5, "ankara"))
	require.NoError(t, repos.Subscriber.Upsert(ctx, 5, "ankara"))

	subs, err := repos.Subscriber.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1, "repeated upsert leaves exactly one record")
	assert.Equal(t, domain.Subscriber{ID: 5, Region: "ankara"}, subs[0])
}

func TestSubscriberRepository_UpsertOverwritesRegion(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Subscriber.Upsert(ctx, 7, "izmir"))
	require.NoError(t, repos.Subscriber.Upsert(ctx, 7, "bursa"))

	region, found, err := repos.Subscriber.GetRegion(ctx, 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "bursa", region)
}

func TestSubscriberRepository_DeleteAndList(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Subscriber.Upsert(ctx, 1, ""))
	require.NoError(t, repos.Subscriber.Upsert(ctx, 2, "istanbul"))
	require.NoError(t, repos.Subscriber.Upsert(ctx, 3, "izmir"))

	require.NoError(t, repos.Subscriber.Delete(ctx, 2))

	subs, err := repos.Subscriber.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, int64(1), subs[0].ID)
	assert.Equal(t, int64(3), subs[1].ID)

	// deleting a missing subscriber is not an error
	require.NoError(t, repos.Subscriber.Delete(ctx, 42))
}

func TestLedgerRepository_MarkAndCheck(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	sent, err := repos.Ledger.IsSent(ctx, "eq1")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, repos.Ledger.MarkSent(ctx, "eq1"))

	sent, err = repos.Ledger.IsSent(ctx, "eq1")
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestLedgerRepository_MarkSentIdempotent(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Ledger.MarkSent(ctx, "eq1"))
	require.NoError(t, repos.Ledger.MarkSent(ctx, "eq1"), "recording an existing id is a no-op")

	var count int
	err := repos.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM sent_events WHERE event_id = ?", "eq1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
