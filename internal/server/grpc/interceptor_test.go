package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, health.NewServer())
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	handlerCalled := false
	resp, err := s.loggingInterceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled || resp != "ok" {
		t.Fatalf("handler not invoked correctly: called=%v resp=%v", handlerCalled, resp)
	}

	boom := errors.New("boom")
	_, err = s.loggingInterceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
