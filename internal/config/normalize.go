// internal/config/normalize.go
package config

import "github.com/tamzrod/ook-gateway/internal/ook"

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	g := &cfg.Gateway

	if g.Listen == "" {
		g.Listen = ":8087"
	}

	if g.DefaultRepeats == 0 {
		g.DefaultRepeats = ook.DefaultRepeats
	}

	if g.Bridge != nil {
		if g.Bridge.TimeoutMs == 0 {
			g.Bridge.TimeoutMs = 5000
		}
		if g.Bridge.PollIntervalMs == 0 {
			g.Bridge.PollIntervalMs = 250
		}
	}
}
