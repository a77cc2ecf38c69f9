package main

import (
	"database/sql"
	"errors"
	"os"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/hustler-ledger/ledger-server/internal/config"
	"github.com/hustler-ledger/ledger-server/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "db_migrations",
		Usage: "apply the ledger schema to DATABASE_URL",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "source",
				Value: "file://migrations",
				Usage: "migration source URL",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "apply all pending migrations",
				Action: runUp,
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: runDown,
			},
			{
				Name:   "version",
				Usage:  "print the applied migration version",
				Action: runVersion,
			},
		},
		DefaultCommand: "up",
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("db_migrations")
	}
}

func openMigrator(c *cli.Context) (*storage.Migrator, error) {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, err
	}
	if env.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", env.DatabaseURL)
	if err != nil {
		return nil, err
	}

	return storage.NewMigrator(db, c.String("source"))
}

func runUp(c *cli.Context) error {
	m, err := openMigrator(c)
	if err != nil {
		return err
	}

	preMigrationVersion, postMigrationVersion, err := m.Up()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
	return nil
}

func runDown(c *cli.Context) error {
	m, err := openMigrator(c)
	if err != nil {
		return err
	}

	if err := m.Down(c.Int("steps")); err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Migration status")
	return nil
}

func runVersion(c *cli.Context) error {
	m, err := openMigrator(c)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("Migration status")
	return nil
}
