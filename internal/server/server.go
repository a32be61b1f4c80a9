// internal/server/server.go

// Package server exposes the gateway HTTP API: transmit picodes, show
// config, show status.
package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/tamzrod/ook-gateway/internal/config"
	"github.com/tamzrod/ook-gateway/internal/ook"
)

// transmitter is the exact engine contract the server uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type transmitter interface {
	Transmit(plan ook.Plan) (ook.Result, error)
}

// Server handles the HTTP API and owns the runtime status counters.
type Server struct {
	cfg config.GatewayConfig
	tx  transmitter
	mux *http.ServeMux

	mu      sync.Mutex
	txCount int
	lastTx  time.Time
	started time.Time
}

// New builds the API server around a transmission engine.
func New(cfg config.GatewayConfig, tx transmitter) *Server {
	s := &Server{
		cfg:     cfg,
		tx:      tx,
		started: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/picode", s.handlePicode)
	mux.HandleFunc("/picode/", s.handlePicodePath)
	mux.HandleFunc("/config", s.handleConfig)
	mux.HandleFunc("/status", s.handleStatus)
	s.mux = mux

	return s
}

// ServeHTTP dispatches requests and logs every response status.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	log.Printf("%s %s %s %d", r.RemoteAddr, r.Method, r.URL.String(), rec.status)
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) noteTransmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txCount++
	s.lastTx = time.Now()
}
