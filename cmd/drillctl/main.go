// Command drillctl is the operator tool for norsk-drill: schema migrations,
// bulk imports from files, collection stats and admin password hashing.
//
// Database commands read the same configuration as the server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "drillctl:", err)
		stop()
		os.Exit(1)
	}
}
