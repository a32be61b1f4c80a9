// internal/ook/validate.go
package ook

// Validate checks one transmission request against the hardware and
// protocol limits and returns an immutable Plan.
// It performs declarative validation only: no hardware is touched here,
// and the first failing check wins. Order is fixed: gpio, repeats,
// pulse count, parity, then a single scan of the pulse lengths that
// also bounds the cumulative single-pass duration.
func Validate(pin int, pulses []int, repeats int) (Plan, error) {
	if pin < MinGpio || pin > MaxGpio {
		return Plan{}, ErrInvalidGpio
	}

	if repeats < 1 || repeats > MaxTxRepeats {
		return Plan{}, ErrInvalidRepeats
	}

	if len(pulses) < 1 || len(pulses) > MaxPulseCount {
		return Plan{}, ErrInvalidPulseCount
	}

	if len(pulses)%2 != 0 {
		return Plan{}, ErrPulseTrainOdd
	}

	// Running sum bounds ONE pass, not the repeated total.
	// The repeated total is bounded by the engine's wall-clock budget.
	txTime := 0
	for _, pulse := range pulses {
		if pulse <= 0 || pulse > MaxPulseLength {
			return Plan{}, ErrInvalidPulseLength
		}
		txTime += pulse
		if txTime > MaxTxTime*1000 {
			return Plan{}, ErrInvalidTxTime
		}
	}

	return Plan{
		pin:     pin,
		pulses:  append([]int(nil), pulses...),
		repeats: repeats,
	}, nil
}
