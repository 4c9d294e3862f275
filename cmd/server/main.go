// Command server runs the norsk-drill HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment. SIGINT and SIGTERM trigger a graceful shutdown.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/norsk-drill/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		stop()
		os.Exit(1)
	}
}
