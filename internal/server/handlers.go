// internal/server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tamzrod/ook-gateway/internal/ook"
	"github.com/tamzrod/ook-gateway/internal/picode"
)

// handlePicode accepts the code as ?picode= on GET or a form field on POST.
func (s *Server) handlePicode(w http.ResponseWriter, r *http.Request) {
	var code string

	switch r.Method {
	case http.MethodGet:
		code = strings.TrimSpace(r.URL.Query().Get("picode"))
	case http.MethodPost:
		code = strings.TrimSpace(r.PostFormValue("picode"))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if code == "" {
		http.Error(w, "no picode data", http.StatusBadRequest)
		return
	}

	s.transmitCode(w, code)
}

// handlePicodePath accepts the code as the rest of the URL path.
func (s *Server) handlePicodePath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/picode/")
	if code == "" {
		http.Error(w, "no picode data", http.StatusBadRequest)
		return
	}

	s.transmitCode(w, code)
}

// transmitCode parses, validates and transmits one picode, writing the
// outcome as plain text. Parse and validation problems are the client's
// fault (422); a hardware failure mid-transmission is 424.
func (s *Server) transmitCode(w http.ResponseWriter, raw string) {
	code, err := picode.Parse(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	pulses, err := code.PulseList()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	repeats := s.cfg.DefaultRepeats
	if code.Repeats > 0 {
		repeats = code.Repeats
	}

	plan, err := ook.Validate(s.cfg.TxGpio, pulses, repeats)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if code.Timed > 0 {
		// Timed mode: keep retransmitting the same plan until the
		// requested number of seconds has passed.
		deadline := time.Now().Add(time.Duration(code.Timed) * time.Second)
		for time.Now().Before(deadline) {
			if _, err := s.tx.Transmit(plan); err != nil {
				http.Error(w, err.Error(), http.StatusFailedDependency)
				return
			}
		}

		s.noteTransmission()
		fmt.Fprintf(w, "RF TX sent picode for %d secs OK\n", code.Timed)
		return
	}

	res, err := s.tx.Transmit(plan)
	if err != nil {
		http.Error(w, err.Error(), http.StatusFailedDependency)
		return
	}

	verdict := "OK"
	if res.Elapsed > ook.MaxTxTime {
		// Budget cutoff: some requested repeats were dropped.
		verdict = "TX dropped!"
	}

	s.noteTransmission()
	fmt.Fprintf(w, "RF TX sent picode in %d ms %s\n", res.Elapsed, verdict)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, map[string]any{
		"listen":          s.cfg.Listen,
		"tx_gpio":         s.cfg.TxGpio,
		"default_repeats": s.cfg.DefaultRepeats,
		"bridge_enabled":  s.cfg.Bridge != nil,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	txCount := s.txCount
	lastTx := s.lastTx
	s.mu.Unlock()

	last := "never"
	if !lastTx.IsZero() {
		last = lastTx.Format("2006-01-02 15:04:05")
	}

	writeJSON(w, map[string]any{
		"start_time": s.started.Format("2006-01-02 15:04:05"),
		"uptime":     time.Since(s.started).Round(time.Second).String(),
		"tx_count":   txCount,
		"last_tx":    last,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
