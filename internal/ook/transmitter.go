// internal/ook/transmitter.go
package ook

import (
	"errors"
	"fmt"
	"sync"
)

// Driver is the exact hardware contract the transmitter uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type Driver interface {
	// ConfigureOutput puts the pin in output mode, idempotently.
	ConfigureOutput(pin int) error

	// Write sets the pin level.
	Write(pin int, level Level) error

	// DelayMicros blocks the calling goroutine for the given number of
	// microseconds. It must be a hard delay: sleep-based waits are too
	// coarse for OOK pulse timing.
	DelayMicros(us int)

	// NowMillis returns a monotonic millisecond clock.
	NowMillis() int64
}

// Transmitter drives one pulse train at a time on a single line.
// The mutex serializes callers: interleaved bit-banging from two
// goroutines would corrupt pulse timing.
type Transmitter struct {
	mu  sync.Mutex
	drv Driver
}

// NewTransmitter creates a transmitter on the given hardware driver.
func NewTransmitter(drv Driver) *Transmitter {
	return &Transmitter{drv: drv}
}

// Transmit sends the plan: each even-indexed pulse holds the line HIGH
// for its duration, each odd-indexed pulse holds it LOW. The pass is
// replayed up to plan.Repeats times; after every full pass the elapsed
// time is checked against MaxTxTime and the loop stops once it is
// exceeded. A pass is never interrupted mid-pulse.
//
// The line is unconditionally driven LOW on the way out, on every exit
// path, so the RF stage is never left keyed on.
func (t *Transmitter) Transmit(plan Plan) (Result, error) {
	if len(plan.pulses) == 0 {
		return Result{}, ErrInvalidPulseCount
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.drv.ConfigureOutput(plan.pin); err != nil {
		return Result{}, fmt.Errorf("ook: configure gpio %d: %w", plan.pin, err)
	}

	start := t.drv.NowMillis()

	done := 0
	var werr error

passes:
	for r := 0; r < plan.repeats; r++ {
		for i, pulse := range plan.pulses {
			level := Low
			if i%2 == 0 {
				level = High
			}
			if err := t.drv.Write(plan.pin, level); err != nil {
				werr = err
				break passes
			}
			t.drv.DelayMicros(pulse)
		}
		done++

		if t.drv.NowMillis() > start+MaxTxTime {
			break
		}
	}

	elapsed := t.drv.NowMillis() - start

	// Line must end LOW whatever happened above.
	if err := t.drv.Write(plan.pin, Low); err != nil && werr == nil {
		werr = err
	}

	res := Result{Elapsed: elapsed, RepeatsDone: done}
	if werr != nil {
		return res, fmt.Errorf("ook: gpio %d write: %w", plan.pin, werr)
	}
	return res, nil
}

// Tx validates and transmits in one call, exposing the classic integer
// surface: elapsed milliseconds on success, the negative ErrorKind code
// on failure.
func (t *Transmitter) Tx(pin int, pulses []int, repeats int) int64 {
	plan, err := Validate(pin, pulses, repeats)
	if err != nil {
		var kind ErrorKind
		if errors.As(err, &kind) {
			return int64(kind.Code())
		}
		return int64(ErrUnknown)
	}

	res, err := t.Transmit(plan)
	if err != nil {
		return int64(ErrUnknown)
	}
	return res.Elapsed
}
