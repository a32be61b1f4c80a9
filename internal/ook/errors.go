// internal/ook/errors.go
package ook

import "strconv"

// ErrorKind is the unified validation error taxonomy.
// The numeric values are the wire codes of the classic integer-return
// surface: -1..-5 are unchanged, -6 and -7 cover the two caller-fault
// checks the original raised out-of-band.
type ErrorKind int

const (
	ErrUnknown            ErrorKind = -1
	ErrInvalidPulseCount  ErrorKind = -2
	ErrPulseTrainOdd      ErrorKind = -3
	ErrInvalidPulseLength ErrorKind = -4
	ErrInvalidTxTime      ErrorKind = -5
	ErrInvalidGpio        ErrorKind = -6
	ErrInvalidRepeats     ErrorKind = -7
)

func (k ErrorKind) Error() string {
	switch k {
	case ErrInvalidPulseCount:
		return "ook: invalid pulse count, must be >=1 and <=" + strconv.Itoa(MaxPulseCount)
	case ErrPulseTrainOdd:
		return "ook: pulse count must be even"
	case ErrInvalidPulseLength:
		return "ook: invalid pulse length, must be >0 and <=" + strconv.Itoa(MaxPulseLength)
	case ErrInvalidTxTime:
		return "ook: pulse train exceeds max tx time of " + strconv.Itoa(MaxTxTime) + " ms"
	case ErrInvalidGpio:
		return "ook: invalid gpio number, must be >=" + strconv.Itoa(MinGpio) + " and <=" + strconv.Itoa(MaxGpio)
	case ErrInvalidRepeats:
		return "ook: invalid repeats, must be >=1 and <=" + strconv.Itoa(MaxTxRepeats)
	default:
		return "ook: unknown error"
	}
}

// Code returns the negative integer wire code for the kind.
func (k ErrorKind) Code() int {
	if k < ErrInvalidRepeats || k > ErrUnknown {
		return int(ErrUnknown)
	}
	return int(k)
}
