package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismoio/quakewatch/pkg/config"
)

func TestRun_StartStop(t *testing.T) {
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result": []}`))
	}))
	defer feedSrv.Close()

	cfg := &config.Config{}
	cfg.Server.Listen = "127.0.0.1:0"
	cfg.Server.Timeout = time.Second
	cfg.Database.DSN = "file:" + filepath.Join(t.TempDir(), "test.db")
	cfg.Database.MaxOpenConns = 2
	cfg.Database.MaxIdleConns = 1
	cfg.Database.ConnMaxLifetime = 60
	cfg.Feed.URL = feedSrv.URL
	cfg.Feed.Timeout = time.Second
	cfg.Feed.CacheTTL = time.Minute
	cfg.Monitor.Interval = time.Minute
	cfg.Telegram.Token = "test-token"
	cfg.Telegram.Timeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, cfg, false)
	}()

	// let everything start, then trigger shutdown
	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.Fail(t, "run did not return after cancel")
	}
}

func TestSetupLog(t *testing.T) {
	setupLog(false)
	setupLog(true, "super-secret-token")
}
