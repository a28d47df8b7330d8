package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, health.NewServer())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, health.NewServer())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected listen error, got nil")
	}
}

func TestRun_ServesHealth(t *testing.T) {
	t.Parallel()

	hs := health.NewServer()
	hs.SetServingStatus("gophtasks", healthpb.HealthCheckResponse_SERVING)

	addr := freeAddr(t)
	srv := NewGRPCServer(addr, logging.Nop{}, hs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = srv.Run(ctx) }()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)

	deadline := time.Now().Add(2 * time.Second)
	for {
		callCtx, callCancel := context.WithTimeout(ctx, 200*time.Millisecond)
		resp, err := client.Check(callCtx, &healthpb.HealthCheckRequest{Service: "gophtasks"})
		callCancel()
		if err == nil {
			if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
				t.Fatalf("status = %v, want SERVING", resp.GetStatus())
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("health check never succeeded: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	_, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: "unknown"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown service code = %v, want NotFound", status.Code(err))
	}
}
