// Command dbtool manages the database schema: dbtool up | down | version.
package main

import (
	"errors"
	"fmt"
	"os"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

var errUsage = errors.New("usage: dbtool up|down|version")

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, errUsage)
		os.Exit(2)
	}

	if err := run(cmd.LoadConfig(), os.Args[1]); err != nil {
		log.Fatalf("dbtool %s: %v", os.Args[1], err)
	}
}

func run(config cmd.Config, command string) (err error) {
	migrator, err := postgres.NewMigrator(config.MigrationURL())
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, migrator.Close())
	}()

	switch command {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "version":
		version, dirty, versionErr := migrator.Version()
		if versionErr != nil {
			return versionErr
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	default:
		return errUsage
	}
}
