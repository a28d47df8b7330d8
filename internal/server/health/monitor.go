// Package health tracks whether the task store is reachable and publishes the
// result on the standard gRPC health service.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name reported alongside "".
const ServiceName = "gophtasks"

// Human-readable database states reported by GET /.
const (
	StatusPending      = "Pending..."
	StatusConnected    = "Connected"
	StatusDisconnected = "Disconnected"
)

// Pinger is anything that can tell whether storage answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Monitor struct {
	pinger   Pinger
	interval time.Duration
	logger   logging.Logger
	server   *health.Server

	mu     sync.RWMutex
	status string
}

func NewMonitor(p Pinger, interval time.Duration, l logging.Logger) *Monitor {
	m := &Monitor{
		pinger:   p,
		interval: interval,
		logger:   l.With("module", "health"),
		server:   health.NewServer(),
		status:   StatusPending,
	}
	m.setServing(healthpb.HealthCheckResponse_NOT_SERVING)
	return m
}

// Server is the grpc.health.v1 implementation kept in sync with the store.
func (m *Monitor) Server() *health.Server {
	return m.server
}

// DatabaseStatus returns the latest known storage state.
func (m *Monitor) DatabaseStatus() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Check pings the store once and records the outcome.
func (m *Monitor) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.pinger.Ping(ctx)

	next := StatusConnected
	serving := healthpb.HealthCheckResponse_SERVING
	if err != nil {
		next = StatusDisconnected
		serving = healthpb.HealthCheckResponse_NOT_SERVING
	}

	m.mu.Lock()
	prev := m.status
	m.status = next
	m.mu.Unlock()

	if prev != next {
		if err != nil {
			m.logger.Warn(ctx, "storage unreachable", "error", err)
		} else {
			m.logger.Info(ctx, "storage reachable")
		}
	}
	m.setServing(serving)
}

// Run checks immediately and then every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.server.Shutdown()
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

func (m *Monitor) setServing(s healthpb.HealthCheckResponse_ServingStatus) {
	m.server.SetServingStatus("", s)
	m.server.SetServingStatus(ServiceName, s)
}
