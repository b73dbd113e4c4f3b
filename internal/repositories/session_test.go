package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewSessionRepository(rdb, 2*time.Second)

	t.Run("Save and Get", func(t *testing.T) {
		err := repo.Save(ctx, "session-1", 7)
		assert.NoError(t, err)

		userID, err := repo.Get(ctx, "session-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("Get unknown session returns zero", func(t *testing.T) {
		userID, err := repo.Get(ctx, "no-such-session")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), userID)
	})

	t.Run("Delete revokes the session", func(t *testing.T) {
		err := repo.Save(ctx, "session-2", 8)
		assert.NoError(t, err)

		err = repo.Delete(ctx, "session-2")
		assert.NoError(t, err)

		userID, err := repo.Get(ctx, "session-2")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), userID)
	})

	t.Run("Delete unknown session is a no-op", func(t *testing.T) {
		err := repo.Delete(ctx, "no-such-session")
		assert.NoError(t, err)
	})

	t.Run("Session expires", func(t *testing.T) {
		err := repo.Save(ctx, "session-3", 9)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		userID, err := repo.Get(ctx, "session-3")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), userID)
	})
}
