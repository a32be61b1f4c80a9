// internal/ook/limits.go
package ook

// Transmission limits.
// These values define the wire protocol and MUST NOT be configurable.
// They match the pilight USB nano firmware limits.

// ---- PULSE TRAIN ----

// MaxPulseLength is the maximum length of a single pulse (microseconds).
const MaxPulseLength = 100000

// MaxPulseCount is the maximum number of pulses in one train.
const MaxPulseCount = 1000

// ---- TRANSMISSION ----

// MaxTxTime is the maximum transmission time (milliseconds).
// Validation bounds one pass by it; the engine bounds the repeated total.
const MaxTxTime = 2000

// MaxTxRepeats is the maximum number of transmission repeats.
const MaxTxRepeats = 20

// DefaultRepeats is the number of repeats used when the caller gives none.
const DefaultRepeats = 4

// ---- GPIO RANGE ----

// MinGpio and MaxGpio bound the usable native Broadcom GPIO numbers.
const MinGpio = 2
const MaxGpio = 27
