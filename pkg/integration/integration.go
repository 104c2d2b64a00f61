package integration

import (
	"fmt"
	"github.com/QuangTung97/club-reminder/config"
	"github.com/QuangTung97/club-reminder/pkg/migration"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"os"
	"path"
	"sync"

	// for integration test, must not be imported in any main.go
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// TestCase ...
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

var initOnce sync.Once

var globalConf config.Config
var globalDB *sqlx.DB

// NewTestCase ...
func NewTestCase() *TestCase {
	initOnce.Do(func() {
		rootDir := findRootDir()

		conf := config.LoadTestConfig(rootDir)
		migration.MigrateUpForTesting(rootDir, conf.MySQL.MigrateDSN())

		db := conf.MySQL.MustConnect(zap.NewNop())

		globalConf = conf
		globalDB = db
	})

	return &TestCase{
		Conf: globalConf,
		DB:   globalDB,
	}
}

// Truncate ...
func (tc *TestCase) Truncate(table string) {
	tc.DB.MustExec(fmt.Sprintf("TRUNCATE %s", table))
}

func findRootDir() string {
	workdir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	directory := workdir
	for {
		files, err := os.ReadDir(directory)
		if err != nil {
			panic(err)
		}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if file.Name() == "go.mod" {
				return directory
			}
		}

		parent := path.Dir(directory)
		if parent == directory {
			panic("go.mod not found")
		}
		directory = parent
	}
}
