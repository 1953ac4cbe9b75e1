package server

import (
	"context"
	"log/slog"
	"time"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// Pinger is implemented by backends that can report their own liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 2 * time.Second

// PingHealthChecker is healthy while its Pinger answers within pingTimeout.
type PingHealthChecker struct {
	name   string
	pinger Pinger
}

func NewPingHealthChecker(name string, p Pinger) *PingHealthChecker {
	return &PingHealthChecker{name: name, pinger: p}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := hc.pinger.Ping(ctx); err != nil {
		slog.Warn("Health check failed", "backend", hc.name, "error", err)
		return false
	}
	return true
}

// ForBackend returns a PingHealthChecker when backend can be pinged and an
// OkHealthChecker otherwise.
func ForBackend(name string, backend any) HealthChecker {
	if p, ok := backend.(Pinger); ok {
		return NewPingHealthChecker(name, p)
	}
	return NewOkHealthChecker()
}
