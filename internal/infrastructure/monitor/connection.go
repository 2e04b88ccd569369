package monitor

import (
	"context"
	"sync"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Status is the last observed state of the metadata cache backend.
type Status struct {
	CacheEnabled bool      `json:"cacheEnabled"`
	CacheOnline  bool      `json:"cacheOnline"`
	LastCheck    time.Time `json:"lastCheck"`
}

// Pinger is satisfied by *redis.Client.
type Pinger interface {
	Ping(ctx context.Context) *redislib.StatusCmd
}

type Monitor struct {
	redis Pinger

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

// New builds a monitor. A nil client means the cache is disabled and the
// monitor never reports it online.
func New(redis Pinger, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		redis:    redis,
		status:   Status{CacheEnabled: redis != nil},
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	if m.redis == nil {
		return
	}
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// IsOnline reports whether the cache answered the last ping.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.CacheOnline
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh()
	for {
		select {
		case <-ticker.C:
			m.Refresh()
		case <-m.stopCh:
			return
		}
	}
}

// Refresh pings the cache once and records the result.
func (m *Monitor) Refresh() {
	online := m.checkRedis()

	m.mu.Lock()
	if m.status.CacheOnline != online && !m.status.LastCheck.IsZero() {
		m.logger.Warn("metadata cache connectivity changed", zap.Bool("online", online))
	}
	m.status = Status{
		CacheEnabled: m.redis != nil,
		CacheOnline:  online,
		LastCheck:    time.Now().UTC(),
	}
	m.mu.Unlock()
}

func (m *Monitor) checkRedis() bool {
	if m.redis == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.redis.Ping(ctx).Err() == nil
}
