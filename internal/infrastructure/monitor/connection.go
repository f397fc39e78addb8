package monitor

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Probe checks one dependency; a nil error means it is reachable.
type Probe func(ctx context.Context) error

// BufferSizer is implemented by the retry buffer.
type BufferSizer interface {
	Size() (int, error)
}

// PostgresProbe pings the pool.
func PostgresProbe(pool *pgxpool.Pool) Probe {
	return func(ctx context.Context) error {
		return pool.Ping(ctx)
	}
}

// RedisProbe pings the client.
func RedisProbe(client *redislib.Client) Probe {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// Monitor probes the registered dependencies on an interval and caches the
// result for health checks and the buffer processor.
type Monitor struct {
	probes       map[string]Probe
	buffer       BufferSizer
	probeTimeout time.Duration

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

func New(interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		probes:       make(map[string]Probe),
		probeTimeout: 3 * time.Second,
		interval:     interval,
		stopCh:       make(chan struct{}),
		logger:       logger,
	}
}

// Register adds a named probe. Call before Start.
func (m *Monitor) Register(name string, probe Probe) {
	m.probes[name] = probe
}

// WatchBuffer reports the retry buffer's size alongside the services.
func (m *Monitor) WatchBuffer(buffer BufferSizer) {
	m.buffer = buffer
}

func (m *Monitor) Start() {
	m.Refresh(context.Background())
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// IsOnline reports whether every registered service was reachable at the
// last check.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Healthy()
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	services := make(map[string]bool, len(m.status.Services))
	for name, ok := range m.status.Services {
		services[name] = ok
	}
	status := m.status
	status.Services = services
	return status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Refresh(context.Background())
		case <-m.stopCh:
			return
		}
	}
}

// Refresh runs every probe once and stores the result.
func (m *Monitor) Refresh(ctx context.Context) Status {
	names := make([]string, 0, len(m.probes))
	for name := range m.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	status := Status{Services: make(map[string]bool, len(names))}
	for _, name := range names {
		status.Services[name] = m.check(ctx, name, m.probes[name])
	}
	status.Buffer, status.BufferSize = m.checkBuffer()
	status.LastCheck = time.Now()

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
	return status
}

func (m *Monitor) check(ctx context.Context, name string, probe Probe) bool {
	ctx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()
	if err := probe(ctx); err != nil {
		m.logger.Warn("dependency unreachable", zap.String("service", name), zap.Error(err))
		return false
	}
	return true
}

func (m *Monitor) checkBuffer() (bool, int) {
	if m.buffer == nil {
		return false, 0
	}
	size, err := m.buffer.Size()
	if err != nil {
		m.logger.Warn("buffer size check failed", zap.Error(err))
		return false, size
	}
	return true, size
}
