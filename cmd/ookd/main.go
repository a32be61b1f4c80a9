// cmd/ookd/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/tamzrod/ook-gateway/internal/bridge"
	"github.com/tamzrod/ook-gateway/internal/config"
	"github.com/tamzrod/ook-gateway/internal/ook"
	"github.com/tamzrod/ook-gateway/internal/ook/rpigpio"
	"github.com/tamzrod/ook-gateway/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: ookd <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Hardware init (one-time, fatal on failure)
	// --------------------

	drv, err := rpigpio.New()
	if err != nil {
		log.Fatalf("gpio init failed: %v", err)
	}

	tx := ook.NewTransmitter(drv)

	// --------------------
	// Optional Modbus trigger bridge
	// --------------------

	if cfg.Gateway.Bridge != nil {
		ctx := context.Background()

		br, closeBridge, err := bridge.Build(cfg.Gateway, tx)
		if err != nil {
			log.Fatalf("bridge build failed: %v", err)
		}
		defer closeBridge()

		go br.Run(ctx)

		log.Printf("bridge polling %s every %d ms",
			cfg.Gateway.Bridge.Endpoint,
			cfg.Gateway.Bridge.PollIntervalMs,
		)
	}

	// --------------------
	// HTTP API
	// --------------------

	srv := server.New(cfg.Gateway, tx)

	log.Printf("tx gpio %d, default repeats %d", cfg.Gateway.TxGpio, cfg.Gateway.DefaultRepeats)
	log.Printf("listening on %s", cfg.Gateway.Listen)

	if err := http.ListenAndServe(cfg.Gateway.Listen, srv); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}
