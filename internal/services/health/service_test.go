package health

import (
	"context"
	"errors"
	"testing"
)

func TestStatusAllHealthy(t *testing.T) {
	svc := NewService(map[string]Pinger{
		"db":    PingFunc(func(context.Context) error { return nil }),
		"cache": nil,
	})
	ok, checks := svc.Status(context.Background())
	if !ok {
		t.Fatalf("expected ok, got %v", checks)
	}
	if len(checks) != 1 || checks["db"] != "ok" {
		t.Fatalf("unexpected checks %v", checks)
	}
}

func TestStatusReportsFailure(t *testing.T) {
	svc := NewService(map[string]Pinger{
		"db":    PingFunc(func(context.Context) error { return nil }),
		"cache": PingFunc(func(context.Context) error { return errors.New("redis ping failed") }),
	})
	ok, checks := svc.Status(context.Background())
	if ok {
		t.Fatalf("expected failure")
	}
	if checks["cache"] != "redis ping failed" || checks["db"] != "ok" {
		t.Fatalf("unexpected checks %v", checks)
	}
}

func TestStatusWithoutChecks(t *testing.T) {
	ok, checks := NewService(nil).Status(context.Background())
	if !ok || len(checks) != 0 {
		t.Fatalf("expected ok with no checks, got %v %v", ok, checks)
	}
}
