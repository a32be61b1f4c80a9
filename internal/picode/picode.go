// internal/picode/picode.go

// Package picode parses pilight code strings into OOK pulse trains.
//
// A picode looks like:
//
//	c:011010100101011010100110101001100110010101100110101010101010101012;p:1400,600,6800;r:5@
//
// The c parameter indexes pulse types, the p parameter gives the pulse
// lengths in microseconds, and the optional third parameter is either
// r (repeats) or t (seconds of timed retransmission).
package picode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tamzrod/ook-gateway/internal/ook"
)

// MaxPulseTypes bounds the pulse type index: c digits run 0 to 9.
const MaxPulseTypes = 10

// MaxTimedSeconds bounds the t parameter of the extended string format.
const MaxTimedSeconds = 30

// minLength is the length of the shortest possible picode, "c:01;p:10,90@".
const minLength = 13

// Code is a parsed picode. At most one of Repeats and Timed is set;
// both are zero when the string carried no third parameter.
type Code struct {
	Types   []int // pulse type index per pulse, even count
	Lengths []int // pulse lengths in microseconds, 1..9 entries
	Repeats int   // requested repeats, 0 when absent
	Timed   int   // seconds to keep retransmitting, 0 when absent
}

// Parse parses a picode string.
func Parse(s string) (*Code, error) {
	if len(s) <= minLength {
		return nil, fmt.Errorf("picode: too short (%d chars)", len(s))
	}

	s = strings.ToLower(s)

	if s[len(s)-1] != '@' {
		return nil, fmt.Errorf("picode: missing @ terminator")
	}
	s = strings.ReplaceAll(s, "@", "")

	params := strings.Split(s, ";")
	if len(params) < 2 || len(params) > 3 {
		return nil, fmt.Errorf("picode: expected 2 or 3 parameters, got %d", len(params))
	}

	code := &Code{}

	if len(params) == 3 {
		if err := parseParam3(params[2], code); err != nil {
			return nil, err
		}
	}

	lengths, err := parseLengths(params[1])
	if err != nil {
		return nil, err
	}
	code.Lengths = lengths

	types, err := parseTypes(params[0])
	if err != nil {
		return nil, err
	}
	code.Types = types

	return code, nil
}

// parseParam3 handles the optional "r:N" or "t:S" parameter.
func parseParam3(p string, code *Code) error {
	if len(p) < 3 || len(p) > 5 {
		return fmt.Errorf("picode: invalid third parameter %q", p)
	}

	key, value, ok := strings.Cut(p, ":")
	if !ok {
		return fmt.Errorf("picode: invalid third parameter %q", p)
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("picode: invalid %s value %q", key, value)
	}

	switch key {
	case "r":
		if n > ook.MaxTxRepeats {
			return fmt.Errorf("picode: repeats %d over limit %d", n, ook.MaxTxRepeats)
		}
		code.Repeats = n
	case "t":
		if n > MaxTimedSeconds {
			return fmt.Errorf("picode: timed %d over limit %d seconds", n, MaxTimedSeconds)
		}
		code.Timed = n
	default:
		return fmt.Errorf("picode: third parameter must be r or t, got %q", key)
	}

	return nil
}

// parseLengths handles the "p:a,b,c" pulse length parameter.
func parseLengths(p string) ([]int, error) {
	key, value, ok := strings.Cut(p, ":")
	if !ok || key != "p" {
		return nil, fmt.Errorf("picode: expected p parameter, got %q", p)
	}

	fields := strings.Split(value, ",")
	if len(fields) == 0 || len(fields) >= MaxPulseTypes {
		return nil, fmt.Errorf("picode: pulse length count %d out of range", len(fields))
	}

	lengths := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 || n > ook.MaxPulseLength {
			return nil, fmt.Errorf("picode: invalid pulse length %q", f)
		}
		lengths = append(lengths, n)
	}

	return lengths, nil
}

// parseTypes handles the "c:0123..." pulse type parameter.
// An odd digit count is padded by repeating the final digit, so the
// resulting train always pairs HIGH and LOW pulses.
func parseTypes(p string) ([]int, error) {
	key, value, ok := strings.Cut(p, ":")
	if !ok || key != "c" {
		return nil, fmt.Errorf("picode: expected c parameter, got %q", p)
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("picode: empty c parameter")
	}

	types := make([]int, 0, len(value)+1)
	for _, r := range value {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("picode: invalid pulse type %q", string(r))
		}
		types = append(types, int(r-'0'))
	}

	if len(types)%2 != 0 {
		types = append(types, types[len(types)-1])
	}

	return types, nil
}

// PulseList expands the code into a flat pulse train, mapping every
// type digit through the length table. Digits beyond the table are an
// error here rather than an out-of-range read.
func (c *Code) PulseList() ([]int, error) {
	pulses := make([]int, 0, len(c.Types))
	for _, t := range c.Types {
		if t >= len(c.Lengths) {
			return nil, fmt.Errorf("picode: pulse type %d has no length (only %d defined)", t, len(c.Lengths))
		}
		pulses = append(pulses, c.Lengths[t])
	}
	return pulses, nil
}

// Find extracts picode candidate substrings ("c...@") from free text.
// Candidates are not validated; feed them to Parse.
func Find(s string) []string {
	var found []string

	start := 0
	for start < len(s) {
		rest := s[start:]
		c := strings.IndexByte(rest, 'c')
		if c < 0 {
			break
		}
		at := strings.IndexByte(rest, '@')
		if at < 0 {
			break
		}
		if c < at {
			found = append(found, rest[c:at+1])
		}
		start += at + 1
	}

	return found
}
