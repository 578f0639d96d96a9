package postgres

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

var _ ports.HealthChecker = (*HealthChecker)(nil)

// HealthChecker reports whether the database accepts connections.
type HealthChecker struct {
	db Pinger
}

// NewHealthChecker creates a HealthChecker.
func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string { return "postgres" }

// HealthCheck acquires a connection and pings the server.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.db.Ping(ctx); err != nil {
		return fmt.Errorf("pinging postgres: %w", err)
	}
	return nil
}
