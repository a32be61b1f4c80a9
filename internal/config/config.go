// internal/config/config.go
package config

type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
}

type GatewayConfig struct {
	// Listen is the HTTP bind address, e.g. ":8087".
	Listen string `yaml:"listen"`

	// TxGpio is the native Broadcom GPIO number used for transmission.
	TxGpio int `yaml:"tx_gpio"`

	// DefaultRepeats applies when a picode carries no r parameter.
	// Zero means "use the protocol default".
	DefaultRepeats int `yaml:"default_repeats"`

	// Bridge enables the Modbus trigger bridge (optional, opt-in).
	Bridge *BridgeConfig `yaml:"bridge"`
}

// ---- BRIDGE ----

type BridgeConfig struct {
	Endpoint       string          `yaml:"endpoint"`
	UnitID         uint8           `yaml:"unit_id"`
	TimeoutMs      int             `yaml:"timeout_ms"`
	PollIntervalMs int             `yaml:"poll_interval_ms"`
	Triggers       []TriggerConfig `yaml:"triggers"`
}

// TriggerConfig maps one coil to the picode transmitted on its rising edge.
type TriggerConfig struct {
	Coil   uint16 `yaml:"coil"`
	Picode string `yaml:"picode"`
}
