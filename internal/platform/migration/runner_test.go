package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/db":   "pgx5://u:p@localhost:5432/db",
		"postgresql://u:p@localhost:5432/db": "pgx5://u:p@localhost:5432/db",
		"pgx5://u:p@localhost:5432/db":       "pgx5://u:p@localhost:5432/db",
	}

	for in, want := range cases {
		assert.Equal(t, want, convertToPgx5DSN(in), in)
	}
}

func TestNewMigrator_UnsupportedDriver(t *testing.T) {
	_, err := newMigrator("mysql", "whatever")
	assert.ErrorContains(t, err, "unsupported driver")
}
