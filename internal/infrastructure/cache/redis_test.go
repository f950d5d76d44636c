package cache

import (
	"context"
	"testing"

	"go-medical-booking/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(config.RedisConfig{Host: mr.Host(), Port: mr.Port(), DB: 0})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "revoked:abc", "1", 0).Err())
	assert.True(t, mr.Exists("revoked:abc"))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	client, err := NewRedisClient(config.RedisConfig{Host: "127.0.0.1", Port: "1"})
	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping redis at 127.0.0.1:1")
}

func TestRedisOptions(t *testing.T) {
	opts := redisOptions(config.RedisConfig{Host: "cache.internal", Port: "6380", Password: "s3cret", DB: 2})

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, poolSize, opts.PoolSize)
	assert.Equal(t, ioTimeout, opts.ReadTimeout)
}
