package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/mds-studio/mds-backend/internal/config"
	"github.com/mds-studio/mds-backend/internal/database"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  runMigrateUp,
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE:  runMigrateDown,
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which migrations are applied",
			Args:  cobra.NoArgs,
			RunE:  runMigrateStatus,
		},
	)
	return cmd
}

// openProvider loads config, connects, and returns a goose provider plus a
// func that releases the connection.
func openProvider(cmd *cobra.Command) (*goose.Provider, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(cmd.Context(), database.PoolConfig{
		DatabaseURL: cfg.DB.ConnectionString(),
		MaxConns:    2,
	})
	if err != nil {
		return nil, nil, err
	}
	db := stdlib.OpenDBFromPool(pool)
	closeAll := func() {
		db.Close()
		pool.Close()
	}
	provider, err := database.NewMigrationProvider(db)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	return provider, closeAll, nil
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	provider, closeAll, err := openProvider(cmd)
	if err != nil {
		return err
	}
	defer closeAll()

	results, err := provider.Up(cmd.Context())
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration)
	}
	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
	}
	return nil
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	provider, closeAll, err := openProvider(cmd)
	if err != nil {
		return err
	}
	defer closeAll()

	result, err := provider.Down(cmd.Context())
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", result.Source.Path)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, _ []string) error {
	provider, closeAll, err := openProvider(cmd)
	if err != nil {
		return err
	}
	defer closeAll()

	statuses, err := provider.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	for _, s := range statuses {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s.State, s.Source.Path)
	}
	return nil
}
