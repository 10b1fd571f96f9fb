package redis

import (
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_NotConfigured(t *testing.T) {
	rdb, err := NewRedisClient("", "", 0)
	assert.Nil(t, rdb)
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestNewRedisClient_Success(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewRedisClient(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, mr.Set("k", "v"))
	got, err := rdb.Get(t.Context(), "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	rdb, err := NewRedisClient(addr, "", 0)
	assert.Error(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedisClient_WrongPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("secret")

	_, err := NewRedisClient(mr.Addr(), "wrong", 0)
	assert.Error(t, err)
}
