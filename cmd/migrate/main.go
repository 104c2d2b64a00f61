package main

import (
	"fmt"
	"github.com/QuangTung97/club-reminder/config"
	"github.com/QuangTung97/club-reminder/pkg/migration"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"os"
)

func main() {
	conf := config.Load()
	cmd := migration.MigrateCommand(conf.MySQL.MigrateDSN())
	err := cmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
		os.Exit(1)
	}
}
