//go:build integration

package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chapel/internal/platform/config"
	chapelredis "chapel/internal/platform/redis"
	"chapel/pkg/testutil/containers"
)

func TestNewAgainstRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	c, err := chapelredis.New(ctx, config.RedisConfig{URL: rc.URL, PoolSize: 2})
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.NoError(t, c.Health(ctx))
	require.NoError(t, c.Close())
	assert.Error(t, c.Health(ctx), "closed pool fails readiness")
}
