package config

import (
	"fmt"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"net/url"
	"strings"
)

// MySQLOption for MySQL options
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for configuring MySQL
type MySQLConfig struct {
	Host         string        `mapstructure:"host"`
	Port         uint16        `mapstructure:"port"`
	Database     string        `mapstructure:"database"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	Options      []MySQLOption `mapstructure:"options"`
}

// requiredOptions must be present for scanning DATETIME columns into time.Time in UTC
var requiredOptions = []MySQLOption{
	{Key: "parseTime", Value: "true"},
	{Key: "loc", Value: "UTC"},
}

func (c MySQLConfig) allOptions() []MySQLOption {
	existed := map[string]struct{}{}
	for _, o := range c.Options {
		existed[o.Key] = struct{}{}
	}

	opts := append([]MySQLOption(nil), c.Options...)
	for _, o := range requiredOptions {
		if _, ok := existed[o.Key]; ok {
			continue
		}
		opts = append(opts, o)
	}
	return opts
}

func (c MySQLConfig) optionsString() string {
	var opts []string
	for _, o := range c.allOptions() {
		key := url.QueryEscape(o.Key)
		value := url.QueryEscape(o.Value)
		opts = append(opts, key+"="+value)
	}
	return strings.Join(opts, "&")
}

// DSN returns data source name
func (c MySQLConfig) DSN() string {
	optStr := c.optionsString()
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", c.Username, c.Password, c.Host, c.Port, c.Database, optStr)
}

// MigrateDSN returns the data source name in the form golang-migrate expects
func (c MySQLConfig) MigrateDSN() string {
	return "mysql://" + c.DSN() + "&multiStatements=true"
}

// MustConnect connects to database using sqlx
func (c MySQLConfig) MustConnect(logger *zap.Logger) *sqlx.DB {
	db := sqlx.MustConnect("mysql", c.DSN())

	logger.Info("connected to mysql",
		zap.String("host", c.Host),
		zap.String("database", c.Database),
		zap.Int("max_open_conns", c.MaxOpenConns),
		zap.Int("max_idle_conns", c.MaxIdleConns),
		zap.String("options", c.optionsString()),
	)

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	return db
}
