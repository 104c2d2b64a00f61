package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
)

// SourceURL for the migrations directory under rootDir
func SourceURL(rootDir string) string {
	return "file://" + path.Join(rootDir, "migrations")
}

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand builds the up / down / force / version commands, dsn in golang-migrate form
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	sourceURL := SourceURL(".")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return ignoreNoChange(newMigrate(sourceURL, dsn).Up())
			},
		},
		&cobra.Command{
			Use:   "down [N]",
			Short: "apply N down migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return ignoreNoChange(newMigrate(sourceURL, dsn).Steps(-n))
			},
		},
		&cobra.Command{
			Use:   "force [VERSION]",
			Short: "set version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return newMigrate(sourceURL, dsn).Force(v)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print current version",
			RunE: func(cmd *cobra.Command, args []string) error {
				version, dirty, err := newMigrate(sourceURL, dsn).Version()
				if err != nil {
					return err
				}
				fmt.Println("VERSION:", version, "DIRTY:", dirty)
				return nil
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting runs all up migrations, panics on error
func MigrateUpForTesting(rootDir string, dsn string) {
	err := ignoreNoChange(newMigrate(SourceURL(rootDir), dsn).Up())
	if err != nil {
		panic(err)
	}
}
