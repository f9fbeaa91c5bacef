package server

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"docloadgen/loadtest"
)

// Server exposes the load test trigger over HTTP.
type Server struct {
	runner *loadtest.Runner
	log    *zap.SugaredLogger

	// One run at a time; the template cache is not re-entrant.
	running sync.Mutex
}

// New wires the trigger around a configured runner.
func New(runner *loadtest.Runner, log *zap.SugaredLogger) *Server {
	return &Server{runner: runner, log: log}
}

// Router builds the HTTP surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/db-test/run-test", s.handleRunTest)
	return r
}

// handleRunTest runs the full load test synchronously: the caller blocks for
// the duration of template loading, seeding and all ladder steps.
func (s *Server) handleRunTest(w http.ResponseWriter, req *http.Request) {
	if !s.running.TryLock() {
		http.Error(w, "load test already running", http.StatusConflict)
		return
	}
	defer s.running.Unlock()

	msg, err := s.runner.Execute(req.Context())
	if err != nil {
		s.log.Errorw("load test failed", "error", err)
		http.Error(w, fmt.Sprintf("load test failed: %v", err), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(msg))
}
