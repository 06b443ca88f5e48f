// Package main is the entry point for the MDS backend API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mds-backend",
		Short:         "MDS studio backend: service catalog and employee registration",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary bare starts the server.
		RunE: runServe,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
