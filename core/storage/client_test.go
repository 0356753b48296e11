package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("Strips scheme from endpoint", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		}

		// Client creation is lazy; no connection is attempted here.
		client, err := NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Invalid endpoint", func(t *testing.T) {
		cfg := Config{
			Endpoint: "not a valid endpoint",
		}

		client, err := NewClient(cfg)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
