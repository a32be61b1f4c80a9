// internal/bridge/bridge.go

// Package bridge polls coils on a Modbus endpoint and transmits the
// mapped pulse train whenever a watched coil goes from off to on. It
// lets a PLC key RF transmissions without speaking HTTP.
package bridge

import (
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/ook-gateway/internal/ook"
)

// Client abstracts the Modbus operations the bridge needs.
type Client interface {
	ReadCoils(addr, qty uint16) ([]bool, error) // FC 1
}

// Transmitter is the engine contract the bridge drives on an edge.
type Transmitter interface {
	Transmit(plan ook.Plan) (ook.Result, error)
}

// Trigger maps one coil to a validated transmission plan.
type Trigger struct {
	Coil uint16
	Plan ook.Plan
}

// Config is the minimal runtime config the bridge needs.
type Config struct {
	Interval time.Duration
	Triggers []Trigger
}

// Bridge is a dumb, clock-driven edge detector.
type Bridge struct {
	cfg    Config
	client Client
	tx     Transmitter
	last   map[uint16]bool
}

// New creates a bridge with immutable config.
func New(cfg Config, client Client, tx Transmitter) (*Bridge, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("bridge: interval must be > 0")
	}
	if len(cfg.Triggers) == 0 {
		return nil, errors.New("bridge: at least one trigger required")
	}
	if client == nil || tx == nil {
		return nil, errors.New("bridge: client and transmitter required")
	}
	return &Bridge{
		cfg:    cfg,
		client: client,
		tx:     tx,
		last:   make(map[uint16]bool),
	}, nil
}

// PollOnce performs exactly one poll cycle over all triggers.
// A read failure aborts the cycle without updating edge state, so a
// flaky link cannot manufacture edges. Transmissions happen inline:
// the engine serializes them against HTTP callers.
func (b *Bridge) PollOnce() error {
	states := make(map[uint16]bool, len(b.cfg.Triggers))

	for _, trg := range b.cfg.Triggers {
		bits, err := b.client.ReadCoils(trg.Coil, 1)
		if err != nil {
			return fmt.Errorf("bridge: read coil %d: %w", trg.Coil, err)
		}
		if len(bits) < 1 {
			return fmt.Errorf("bridge: empty read for coil %d", trg.Coil)
		}
		states[trg.Coil] = bits[0]
	}

	// Commit states and fire edges only after every read succeeded.
	var firstErr error
	for _, trg := range b.cfg.Triggers {
		on := states[trg.Coil]
		rising := on && !b.last[trg.Coil]
		b.last[trg.Coil] = on

		if !rising {
			continue
		}
		if _, err := b.tx.Transmit(trg.Plan); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("bridge: coil %d transmit: %w", trg.Coil, err)
		}
	}

	return firstErr
}
