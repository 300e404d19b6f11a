package redis

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewStreamRepository_BlockTimeout(t *testing.T) {
	client := redis.NewClient(&redis.Options{})

	t.Run("uses configured timeout", func(t *testing.T) {
		repo, ok := NewStreamRepository(client, zap.NewNop(), 5*time.Second).(*streamRepository)
		require.True(t, ok)
		assert.Equal(t, 5*time.Second, repo.block)
	})

	t.Run("falls back to default when unset", func(t *testing.T) {
		repo, ok := NewStreamRepository(client, zap.NewNop(), 0).(*streamRepository)
		require.True(t, ok)
		assert.Equal(t, defaultBlockTimeout, repo.block)
	})
}
