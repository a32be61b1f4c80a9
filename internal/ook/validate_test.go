// internal/ook/validate_test.go
package ook

import (
	"errors"
	"testing"
)

// helper to build a flat pulse train quickly
func train(n, length int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = length
	}
	return out
}

// ---- tests ----

func TestValidate_OK(t *testing.T) {
	plan, err := Validate(17, []int{500, 500}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Pin() != 17 || plan.Repeats() != 1 || plan.PulseCount() != 2 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if plan.PassMicros() != 1000 {
		t.Fatalf("expected pass of 1000us, got %d", plan.PassMicros())
	}
}

func TestValidate_ErrorKinds(t *testing.T) {
	cases := []struct {
		name    string
		pin     int
		pulses  []int
		repeats int
		want    ErrorKind
	}{
		{"pin too low", 1, []int{500, 500}, 1, ErrInvalidGpio},
		{"pin too high", 28, []int{500, 500}, 1, ErrInvalidGpio},
		{"repeats zero", 17, []int{500, 500}, 0, ErrInvalidRepeats},
		{"repeats over max", 17, []int{500, 500}, MaxTxRepeats + 1, ErrInvalidRepeats},
		{"no pulses", 17, nil, 1, ErrInvalidPulseCount},
		{"too many pulses", 17, train(MaxPulseCount+2, 10), 1, ErrInvalidPulseCount},
		{"odd pulse count", 17, []int{500, 500, 500}, 1, ErrPulseTrainOdd},
		{"zero pulse", 17, []int{500, 0}, 1, ErrInvalidPulseLength},
		{"negative pulse", 17, []int{-10, 500}, 1, ErrInvalidPulseLength},
		{"pulse over max", 17, []int{500, MaxPulseLength + 1}, 1, ErrInvalidPulseLength},
		// 22 pulses of 100000us = 2200000us > 2000000us single-pass cap
		{"pass too long", 17, train(22, MaxPulseLength), 1, ErrInvalidTxTime},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.pin, tc.pulses, tc.repeats)
			if err == nil {
				t.Fatalf("expected %v, got nil", tc.want)
			}
			var kind ErrorKind
			if !errors.As(err, &kind) || kind != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidate_CheckOrder(t *testing.T) {
	// Every check below it is also violated; the first one must win.
	if _, err := Validate(0, []int{0, 0, 0}, 99); !errors.Is(err, ErrInvalidGpio) {
		t.Fatalf("expected gpio error first, got %v", err)
	}
	if _, err := Validate(17, []int{0, 0, 0}, 99); !errors.Is(err, ErrInvalidRepeats) {
		t.Fatalf("expected repeats error before pulses, got %v", err)
	}
	if _, err := Validate(17, []int{0, 0, 0}, 4); !errors.Is(err, ErrPulseTrainOdd) {
		t.Fatalf("expected parity error before lengths, got %v", err)
	}
}

func TestValidate_SinglePassBoundIgnoresRepeats(t *testing.T) {
	// 20 pulses of 100000us = exactly 2000000us: allowed, even though
	// 20 repeats of it could never fit the wall-clock budget.
	if _, err := Validate(17, train(20, MaxPulseLength), MaxTxRepeats); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_PlanIsACopy(t *testing.T) {
	pulses := []int{500, 500}
	plan, err := Validate(17, pulses, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pulses[0] = 99999

	if plan.PassMicros() != 1000 {
		t.Fatalf("plan mutated through caller slice: pass=%d", plan.PassMicros())
	}
}

func TestErrorKind_Codes(t *testing.T) {
	codes := map[ErrorKind]int{
		ErrUnknown:            -1,
		ErrInvalidPulseCount:  -2,
		ErrPulseTrainOdd:      -3,
		ErrInvalidPulseLength: -4,
		ErrInvalidTxTime:      -5,
		ErrInvalidGpio:        -6,
		ErrInvalidRepeats:     -7,
	}
	for kind, want := range codes {
		if kind.Code() != want {
			t.Fatalf("kind %v: expected code %d, got %d", kind, want, kind.Code())
		}
	}
	if ErrorKind(-42).Code() != -1 {
		t.Fatalf("out-of-range kind must map to unknown")
	}
}
