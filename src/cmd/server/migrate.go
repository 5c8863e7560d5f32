package main

import (
	"context"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/repository/implementations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := bootstrap()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		db, err := implementations.Open(ctx, cfg.DatabaseDSN, poolOptions(cfg))
		if err != nil {
			return err
		}
		defer db.Close()

		return implementations.RunMigrations(db)
	},
}
