package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("SQLite In Memory", func(t *testing.T) {
		cfg := Config{
			Driver: "sqlite",
			Name:   ":memory:",
		}
		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:     "localhost",
			Port:     9999, // Unused port
			User:     "shopzada",
			Password: "wrongpassword",
			Name:     "shopzada",
			Driver:   "postgres",
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestQuote(t *testing.T) {
	cfg := Config{Driver: "sqlite", Name: ":memory:"}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.Equal(t, `"user id"`, Quote(db, "user id"))
}
