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

func TestSnapshotCacheRepository(t *testing.T) {
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

	repo := NewSnapshotCacheRepository(rdb, 2*time.Second)

	t.Run("miss before any set", func(t *testing.T) {
		_, _, err := repo.GetLatest(ctx)
		assert.Error(t, err)
	})

	t.Run("set and get latest snapshot", func(t *testing.T) {
		blob := []byte(`{"_meta":{"version":1},"accounts":[]}`)
		err := repo.SetLatest(ctx, "backup_20250101T000000Z", blob)
		assert.NoError(t, err)

		name, data, err := repo.GetLatest(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "backup_20250101T000000Z", name)
		assert.Equal(t, blob, data)
	})

	t.Run("expires after TTL", func(t *testing.T) {
		err := repo.SetLatest(ctx, "short-lived", []byte("x"))
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, _, err = repo.GetLatest(ctx)
		assert.Error(t, err)
	})
}
