package redis

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "http://not-redis", slog.New(slog.DiscardHandler))
	assert.ErrorContains(t, err, "redis: invalid URL")
}
