package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/tracker"
)

// Stats holds the process-liveness counters shared between the pipeline
// and the health endpoint.
type Stats struct {
	startTime   time.Time
	lastCheck   atomic.Int64 // unix seconds, 0 until the first cycle
	signalsSent atomic.Int64
}

// NewStats creates stats anchored at the current time
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// MarkCycle records that a poll cycle just completed
func (s *Stats) MarkCycle() {
	s.lastCheck.Store(time.Now().Unix())
}

// AddSignals increments the total-signals-sent counter
func (s *Stats) AddSignals(n int) {
	s.signalsSent.Add(int64(n))
}

// SignalsSent returns the total number of signals dispatched so far
func (s *Stats) SignalsSent() int64 {
	return s.signalsSent.Load()
}

// Server exposes the liveness endpoint. Operational health check only,
// not part of the signal pipeline.
type Server struct {
	stats   *Stats
	tracker *tracker.Tracker
	srv     *http.Server
}

// NewServer creates a health server on the given address
func NewServer(addr string, stats *Stats, trk *tracker.Tracker) *Server {
	s := &Server{
		stats:   stats,
		tracker: trk,
	}

	router := mux.NewRouter()
	router.HandleFunc("/", s.handleStatus).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleStatus).Methods(http.MethodGet)

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	return s
}

// Start serves the endpoint in the background
func (s *Server) Start(ctx context.Context) {
	go func() {
		logger.Info(ctx, "Health endpoint listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorWithErr(ctx, "Health endpoint stopped", err)
		}
	}()
}

// Shutdown stops the endpoint gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type statusResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	LastCheckAt   string `json:"last_check_at,omitempty"`
	SignalsSent   int64  `json:"signals_sent"`
	TrackedPosts  int    `json:"tracked_posts"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(s.stats.startTime).Seconds()),
		SignalsSent:   s.stats.SignalsSent(),
		TrackedPosts:  s.tracker.Len(),
	}
	if last := s.stats.lastCheck.Load(); last > 0 {
		resp.LastCheckAt = time.Unix(last, 0).UTC().Format(time.RFC3339)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
