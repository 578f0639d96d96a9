package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// mapError translates driver errors into domain errors. A missing row
// becomes domain.ErrNotFound; everything else is a *domain.StoreError
// carrying the driver error unchanged so its message reaches the client.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return &domain.StoreError{Op: op, Err: err}
}
