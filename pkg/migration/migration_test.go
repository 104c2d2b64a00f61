package migration

import (
	"errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://migrations", SourceURL("."))
	assert.Equal(t, "file:///app/migrations", SourceURL("/app"))
}

func TestIgnoreNoChange(t *testing.T) {
	assert.Equal(t, nil, ignoreNoChange(nil))
	assert.Equal(t, nil, ignoreNoChange(migrate.ErrNoChange))

	err := errors.New("some error")
	assert.Equal(t, err, ignoreNoChange(err))
}

func TestMigrateCommand__Sub_Commands(t *testing.T) {
	cmd := MigrateCommand("mysql://root:1@tcp(localhost:3306)/club")

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"down", "force", "up", "version"}, names)
}
