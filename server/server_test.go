package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismoio/quakewatch/server/mocks"
)

func TestServer_RunShutsDownOnCancel(t *testing.T) {
	srv := New(Config{
		Listen:  "127.0.0.1:0",
		Timeout: time.Second,
		Version: "test",
	}, &mocks.SubscribersMock{}, &mocks.EventsMock{})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	// let the listener come up, then trigger shutdown
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.Fail(t, "server did not shut down")
	}
}
