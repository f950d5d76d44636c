package main

import (
	"fmt"
	"os"

	"go-medical-booking/cmd/bootstrap"
	"go-medical-booking/config"
	"go-medical-booking/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	root := &cobra.Command{
		Use:   "medical-booking",
		Short: "Clinic appointment scheduling service",
		// Running without a subcommand starts the API server.
		RunE: runServe,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", ".env", "path to the env config file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	})
	root.AddCommand(newMigrateCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.New(configFile)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	app.Run()
	return nil
}

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withMigrator(func(m *database.Migrator) error {
				return m.Up()
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			RunE: withMigrator(func(m *database.Migrator) error {
				return m.Down()
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: withMigrator(func(m *database.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Printf("version=%d dirty=%t\n", version, dirty)
				return nil
			}),
		},
	)

	return migrateCmd
}

func withMigrator(fn func(m *database.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfigFrom(configFile)
		if err != nil {
			return err
		}
		if cfg.DB.Driver == config.DriverSQLite {
			return fmt.Errorf("migrations target postgres, sqlite schemas are created on startup")
		}

		m, err := database.NewMigrator(cfg.DB.MigrationsPath, database.PostgresURL(cfg.DB))
		if err != nil {
			return err
		}
		defer m.Close()

		return fn(m)
	}
}
