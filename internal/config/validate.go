// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/ook-gateway/internal/ook"
	"github.com/tamzrod/ook-gateway/internal/picode"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	g := cfg.Gateway

	// ------------------------------------------------------------
	// TRANSMISSION SETTINGS
	// ------------------------------------------------------------

	if g.TxGpio < ook.MinGpio || g.TxGpio > ook.MaxGpio {
		return fmt.Errorf(
			"config: tx_gpio %d out of range [%d,%d]",
			g.TxGpio, ook.MinGpio, ook.MaxGpio,
		)
	}

	// Zero means "unset": Normalize fills the protocol default.
	if g.DefaultRepeats != 0 &&
		(g.DefaultRepeats < 1 || g.DefaultRepeats > ook.MaxTxRepeats) {
		return fmt.Errorf(
			"config: default_repeats %d out of range [1,%d]",
			g.DefaultRepeats, ook.MaxTxRepeats,
		)
	}

	// ------------------------------------------------------------
	// BRIDGE (OPT-IN)
	// ------------------------------------------------------------

	if g.Bridge == nil {
		return nil
	}
	b := g.Bridge

	if b.Endpoint == "" {
		return fmt.Errorf("config: bridge.endpoint required")
	}

	if b.TimeoutMs < 0 {
		return fmt.Errorf("config: bridge.timeout_ms must be >= 0")
	}
	if b.PollIntervalMs < 0 {
		return fmt.Errorf("config: bridge.poll_interval_ms must be >= 0")
	}

	if len(b.Triggers) == 0 {
		return fmt.Errorf("config: bridge defined but no triggers configured")
	}

	seen := make(map[uint16]int)
	for i, trg := range b.Triggers {
		if prev, dup := seen[trg.Coil]; dup {
			return fmt.Errorf(
				"config: bridge triggers %d and %d both watch coil %d",
				prev, i, trg.Coil,
			)
		}
		seen[trg.Coil] = i

		// Every trigger code must already be a transmittable plan:
		// a bad code must fail at startup, not on the first edge.
		code, err := picode.Parse(trg.Picode)
		if err != nil {
			return fmt.Errorf("config: bridge trigger %d (coil %d): %w", i, trg.Coil, err)
		}
		pulses, err := code.PulseList()
		if err != nil {
			return fmt.Errorf("config: bridge trigger %d (coil %d): %w", i, trg.Coil, err)
		}
		repeats := code.Repeats
		if repeats == 0 {
			repeats = ook.DefaultRepeats
		}
		if _, err := ook.Validate(g.TxGpio, pulses, repeats); err != nil {
			return fmt.Errorf("config: bridge trigger %d (coil %d): %w", i, trg.Coil, err)
		}
	}

	return nil
}
