package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakePinger struct {
	fail  atomic.Bool
	calls atomic.Int32
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls.Add(1)
	if f.fail.Load() {
		return errors.New("down")
	}
	return nil
}

func servingStatus(t *testing.T, m *Monitor, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := m.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestMonitor_InitialState(t *testing.T) {
	m := NewMonitor(&fakePinger{}, time.Second, logging.Nop{})

	assert.Equal(t, StatusPending, m.DatabaseStatus())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, m, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, m, ServiceName))
}

func TestMonitor_CheckTransitions(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(p, time.Second, logging.Nop{})

	m.Check(context.Background())
	assert.Equal(t, StatusConnected, m.DatabaseStatus())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, m, ServiceName))

	p.fail.Store(true)
	m.Check(context.Background())
	assert.Equal(t, StatusDisconnected, m.DatabaseStatus())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, m, ""))
}

func TestMonitor_RunStopsOnCancel(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(p, 10*time.Millisecond, logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return p.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, StatusConnected, m.DatabaseStatus())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, m, ""))
}
