package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonReservations/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-SalonReservations/pkg/dbmetrics"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			db, err := openDB(cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrations.Up(cmd.Context(), dbmetrics.Wrap(db, nil), log)
			if err != nil {
				log.Error("Migration failed: %v", err)
				return err
			}

			log.Info("Migrations complete: applied=%d", applied)
			return nil
		},
	}
}
