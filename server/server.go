// Package server exposes the subscription API and on-demand event queries
// over HTTP. It is the front-end surface of the monitor: it reads the feed
// cache and mutates the subscriber registry, but never touches the ledger.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/seismoio/quakewatch/pkg/domain"
)

//go:generate moq -out mocks/subscribers.go -pkg mocks -skip-ensure -fmt goimports . Subscribers
//go:generate moq -out mocks/events.go -pkg mocks -skip-ensure -fmt goimports . Events

// Subscribers is the registry surface used by the subscription API
type Subscribers interface {
	Register(ctx context.Context, id int64) error
	Upsert(ctx context.Context, id int64, region string) error
	GetRegion(ctx context.Context, id int64) (region string, found bool, err error)
}

// Events provides on-demand reads of the cached feed
type Events interface {
	LatestN(ctx context.Context, n int) ([]domain.Event, error)
	LatestNForRegion(ctx context.Context, region string, n int) ([]domain.Event, error)
}

// Config holds server configuration
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Server represents HTTP server instance
type Server struct {
	config      Config
	subscribers Subscribers
	events      Events

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, subscribers Subscribers, events Events) *Server {
	s := &Server{
		config:      cfg,
		subscribers: subscribers,
		events:      events,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("quakewatch", "seismoio", s.config.Version))
	s.router.Use(rest.Ping)

	if s.config.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, requests are tiny
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /subscribers/{id}", s.registerHandler)
		r.HandleFunc("PUT /subscribers/{id}/region", s.setRegionHandler)
		r.HandleFunc("GET /subscribers/{id}/region", s.getRegionHandler)

		r.HandleFunc("GET /events", s.latestEventsHandler)
		r.HandleFunc("GET /events/{region}", s.regionEventsHandler)
	})
}
