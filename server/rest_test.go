package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismoio/quakewatch/pkg/domain"
	"github.com/seismoio/quakewatch/server/mocks"
)

func testServer(subscribers *mocks.SubscribersMock, events *mocks.EventsMock) *Server {
	return New(Config{
		Listen:  ":0",
		Timeout: 5 * time.Second,
		Version: "test",
	}, subscribers, events)
}

func TestServer_Status(t *testing.T) {
	srv := testServer(&mocks.SubscribersMock{}, &mocks.EventsMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_Register(t *testing.T) {
	subscribers := &mocks.SubscribersMock{
		RegisterFunc: func(_ context.Context, _ int64) error { return nil },
	}
	srv := testServer(subscribers, &mocks.EventsMock{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscribers/42", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, subscribers.RegisterCalls(), 1)
	assert.Equal(t, int64(42), subscribers.RegisterCalls()[0].ID)
}

func TestServer_RegisterBadID(t *testing.T) {
	srv := testServer(&mocks.SubscribersMock{}, &mocks.EventsMock{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscribers/notanumber", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SetRegion(t *testing.T) {
	subscribers := &mocks.SubscribersMock{
		UpsertFunc: func(_ context.Context, _ int64, _ string) error { return nil },
	}
	srv := testServer(subscribers, &mocks.EventsMock{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/subscribers/42/region",
		strings.NewReader(`{"region": " Ankara "}`))
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, subscribers.UpsertCalls(), 1)
	assert.Equal(t, int64(42), subscribers.UpsertCalls()[0].ID)
	assert.Equal(t, "ankara", subscribers.UpsertCalls()[0].Region, "region stored normalized")
}

func TestServer_SetRegionInvalid(t *testing.T) {
	subscribers := &mocks.SubscribersMock{}
	srv := testServer(subscribers, &mocks.EventsMock{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/subscribers/42/region",
		strings.NewReader(`{"region": "narnia"}`))
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not a valid province")
	assert.Empty(t, subscribers.UpsertCalls(), "invalid region never reaches the registry")
}

func TestServer_GetRegion(t *testing.T) {
	subscribers := &mocks.SubscribersMock{
		GetRegionFunc: func(_ context.Context, id int64) (string, bool, error) {
			if id == 42 {
				return "izmir", true, nil
			}
			return "", false, nil
		},
	}
	srv := testServer(subscribers, &mocks.EventsMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscribers/42/region", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"region":"izmir"`)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/subscribers/99/region", http.NoBody)
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_LatestEvents(t *testing.T) {
	events := &mocks.EventsMock{
		LatestNFunc: func(_ context.Context, n int) ([]domain.Event, error) {
			assert.Equal(t, 20, n, "default limit")
			return []domain.Event{{ID: "eq1", Region: "izmir", Magnitude: "4.2"}}, nil
		},
	}
	srv := testServer(&mocks.SubscribersMock{}, events)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Events []domain.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "eq1", resp.Events[0].ID)
}

func TestServer_LatestEventsLimit(t *testing.T) {
	events := &mocks.EventsMock{
		LatestNFunc: func(_ context.Context, n int) ([]domain.Event, error) {
			return make([]domain.Event, n), nil
		},
	}
	srv := testServer(&mocks.SubscribersMock{}, events)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?limit=5", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, events.LatestNCalls(), 1)
	assert.Equal(t, 5, events.LatestNCalls()[0].N)

	// limit above the cap is clamped
	req = httptest.NewRequest(http.MethodGet, "/api/v1/events?limit=100000", http.NoBody)
	rec = httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, 100, events.LatestNCalls()[1].N)
}

func TestServer_RegionEvents(t *testing.T) {
	events := &mocks.EventsMock{
		LatestNForRegionFunc: func(_ context.Context, region string, _ int) ([]domain.Event, error) {
			assert.Equal(t, "izmir", region)
			return []domain.Event{{ID: "eq1", Region: "izmir"}}, nil
		},
	}
	srv := testServer(&mocks.SubscribersMock{}, events)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/izmir", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"eq1"`)
}

func TestServer_RegionEventsInvalidRegion(t *testing.T) {
	srv := testServer(&mocks.SubscribersMock{}, &mocks.EventsMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/narnia", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_EventsUnavailable(t *testing.T) {
	events := &mocks.EventsMock{
		LatestNFunc: func(_ context.Context, _ int) ([]domain.Event, error) {
			return nil, assert.AnError
		},
	}
	srv := testServer(&mocks.SubscribersMock{}, events)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", http.NoBody)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "event data unavailable")
}
