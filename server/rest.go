package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/seismoio/quakewatch/pkg/regions"
)

const defaultEventLimit = 20
const maxEventLimit = 100

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.config.Version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// registerHandler creates the subscriber on first contact with wildcard
// interest; an existing subscriber keeps its region
func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := subscriberID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.subscribers.Register(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to register subscriber %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id})
}

// setRegionHandler validates the region against the gazetteer and stores it.
// Validation happens here, not in the registry, which trusts its callers.
func (s *Server) setRegionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := subscriberID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Region string `json:"region"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	region, err := regions.Validate(req.Region)
	if err != nil {
		if errors.Is(err, regions.ErrInvalidRegion) {
			renderError(w, r, fmt.Errorf("%q is not a valid province", req.Region), http.StatusBadRequest)
			return
		}
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if err := s.subscribers.Upsert(r.Context(), id, region); err != nil {
		log.Printf("[ERROR] failed to set region for %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "region": region})
}

// getRegionHandler returns the subscriber's region, empty means all regions
func (s *Server) getRegionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := subscriberID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	region, found, err := s.subscribers.GetRegion(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get region for %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if !found {
		renderError(w, r, fmt.Errorf("subscriber %d not found", id), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "region": region})
}

// latestEventsHandler lists the most recent events across all regions
func (s *Server) latestEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := s.events.LatestN(r.Context(), eventLimit(r))
	if err != nil {
		log.Printf("[ERROR] failed to get events: %v", err)
		renderError(w, r, fmt.Errorf("event data unavailable"), http.StatusServiceUnavailable)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"events": events})
}

// regionEventsHandler lists the most recent events for one province
func (s *Server) regionEventsHandler(w http.ResponseWriter, r *http.Request) {
	region, err := regions.Validate(r.PathValue("region"))
	if err != nil {
		renderError(w, r, fmt.Errorf("%q is not a valid province", r.PathValue("region")), http.StatusBadRequest)
		return
	}

	events, err := s.events.LatestNForRegion(r.Context(), region, eventLimit(r))
	if err != nil {
		log.Printf("[ERROR] failed to get events for %s: %v", region, err)
		renderError(w, r, fmt.Errorf("event data unavailable"), http.StatusServiceUnavailable)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"region": region, "events": events})
}

// subscriberID parses the id path segment
func subscriberID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subscriber ID")
	}
	return id, nil
}

// eventLimit parses the limit query parameter, defaulting and capping
func eventLimit(r *http.Request) int {
	limit := defaultEventLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	return limit
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
