// internal/bridge/builder.go
package bridge

import (
	"fmt"
	"time"

	bmodbus "github.com/tamzrod/ook-gateway/internal/bridge/modbus"
	cfg "github.com/tamzrod/ook-gateway/internal/config"
	"github.com/tamzrod/ook-gateway/internal/ook"
	"github.com/tamzrod/ook-gateway/internal/picode"
)

// Build constructs a Bridge from validated config and wires the Modbus
// client lifecycle. Trigger codes were already checked by config
// validation; a failure here is a bug, not bad input.
func Build(g cfg.GatewayConfig, tx Transmitter) (*Bridge, func() error, error) {
	b := g.Bridge

	client, err := bmodbus.New(bmodbus.Config{
		Endpoint: b.Endpoint,
		UnitID:   b.UnitID,
		Timeout:  time.Duration(b.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	triggers := make([]Trigger, 0, len(b.Triggers))
	for _, t := range b.Triggers {
		plan, err := buildPlan(g.TxGpio, g.DefaultRepeats, t.Picode)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("bridge: coil %d: %w", t.Coil, err)
		}
		triggers = append(triggers, Trigger{Coil: t.Coil, Plan: plan})
	}

	br, err := New(
		Config{
			Interval: time.Duration(b.PollIntervalMs) * time.Millisecond,
			Triggers: triggers,
		},
		client,
		tx,
	)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return br, client.Close, nil
}

func buildPlan(pin, defaultRepeats int, raw string) (ook.Plan, error) {
	code, err := picode.Parse(raw)
	if err != nil {
		return ook.Plan{}, err
	}
	pulses, err := code.PulseList()
	if err != nil {
		return ook.Plan{}, err
	}
	repeats := defaultRepeats
	if code.Repeats > 0 {
		repeats = code.Repeats
	}
	return ook.Validate(pin, pulses, repeats)
}
