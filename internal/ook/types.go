// internal/ook/types.go
package ook

// Level is the binary state of the TX line.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Plan is a validated transmission intent.
// It can only be built through Validate and is immutable afterwards:
// the pulse slice is a private copy of the caller's input.
type Plan struct {
	pin     int
	pulses  []int
	repeats int
}

// Pin returns the Broadcom GPIO number the plan keys.
func (p Plan) Pin() int { return p.pin }

// Repeats returns the number of requested passes.
func (p Plan) Repeats() int { return p.repeats }

// PulseCount returns the number of pulses in one pass.
func (p Plan) PulseCount() int { return len(p.pulses) }

// PassMicros returns the duration of one full pass in microseconds.
func (p Plan) PassMicros() int {
	total := 0
	for _, pulse := range p.pulses {
		total += pulse
	}
	return total
}

// Result reports one completed transmission.
type Result struct {
	// Elapsed is the wall-clock time spent keying, in milliseconds.
	// It can exceed MaxTxTime by up to one pass: the budget is checked
	// only between full passes.
	Elapsed int64

	// RepeatsDone is the number of full passes completed. It is smaller
	// than the requested repeats when the time budget cut the loop short,
	// which is a normal outcome, not an error.
	RepeatsDone int
}
