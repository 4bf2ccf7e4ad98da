// Command server runs the artikel practice HTTP API.
//
// Configuration comes from CONFIG_PATH (or ./config.yaml) and environment
// variables; see internal/config.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/artikel-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		stop()
		log.Fatalf("server: %v", err)
	}
}
