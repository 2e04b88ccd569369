package monitor

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_DisabledCache(t *testing.T) {
	m := New(nil, time.Second, nil)
	m.Start()
	defer m.Stop()

	m.Refresh()
	status := m.GetStatus()
	assert.False(t, status.CacheEnabled)
	assert.False(t, status.CacheOnline)
	assert.False(t, m.IsOnline())
}

func TestMonitor_TracksRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	m := New(client, time.Hour, nil)
	m.Refresh()
	assert.True(t, m.IsOnline())
	assert.True(t, m.GetStatus().CacheEnabled)
	assert.False(t, m.GetStatus().LastCheck.IsZero())

	mr.Close()
	m.Refresh()
	assert.False(t, m.IsOnline())
	assert.True(t, m.GetStatus().CacheEnabled)
}

func TestMonitor_StopIsIdempotent(t *testing.T) {
	m := New(nil, time.Second, nil)
	m.Stop()
	m.Stop()
}
