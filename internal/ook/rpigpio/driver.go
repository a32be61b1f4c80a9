// internal/ook/rpigpio/driver.go
package rpigpio

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"github.com/tamzrod/ook-gateway/internal/ook"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init performs the one-time periph host initialization.
// Idempotent. A failure here is fatal to the gateway: no transmission
// may be attempted without it.
func Init() error {
	initOnce.Do(func() {
		_, initErr = host.Init()
	})
	return initErr
}

// Driver implements ook.Driver on Raspberry Pi GPIO via periph.io.
// Pins are looked up by native Broadcom number and cached.
type Driver struct {
	mu    sync.Mutex
	pins  map[int]gpio.PinIO
	epoch time.Time
}

// New builds a driver, initializing the periph host if needed.
func New() (*Driver, error) {
	if err := Init(); err != nil {
		return nil, fmt.Errorf("rpigpio: host init: %w", err)
	}
	return &Driver{
		pins:  make(map[int]gpio.PinIO),
		epoch: time.Now(),
	}, nil
}

func (d *Driver) pin(n int) (gpio.PinIO, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pins[n]; ok {
		return p, nil
	}

	p := gpioreg.ByName(fmt.Sprintf("GPIO%d", n))
	if p == nil {
		return nil, fmt.Errorf("rpigpio: no such pin GPIO%d", n)
	}

	d.pins[n] = p
	return p, nil
}

// ConfigureOutput puts the pin in output mode, driven LOW.
func (d *Driver) ConfigureOutput(n int) error {
	p, err := d.pin(n)
	if err != nil {
		return err
	}
	return p.Out(gpio.Low)
}

// Write sets the pin level.
func (d *Driver) Write(n int, level ook.Level) error {
	p, err := d.pin(n)
	if err != nil {
		return err
	}
	if level == ook.High {
		return p.Out(gpio.High)
	}
	return p.Out(gpio.Low)
}

// DelayMicros busy-waits on the monotonic clock for the given number of
// microseconds. time.Sleep is millisecond-granular under the Linux
// scheduler and can be preempted mid-pulse, so the wait spins instead.
func (d *Driver) DelayMicros(us int) {
	deadline := time.Now().Add(time.Duration(us) * time.Microsecond)
	for time.Now().Before(deadline) {
	}
}

// NowMillis returns monotonic milliseconds since the driver was built.
func (d *Driver) NowMillis() int64 {
	return time.Since(d.epoch).Milliseconds()
}
