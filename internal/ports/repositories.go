package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository defines the persistence port for todos. Implemented by the
// Postgres adapter; called by the application layer. Each method runs exactly
// one statement against the store and does not open a transaction.
//
// Errors are reported in domain terms: domain.ErrNotFound when the id matches
// no row, and a *domain.StoreError for anything the pool or database reports.
type TodoRepository interface {
	// List returns every todo ordered by ID ascending. An empty table yields
	// an empty, non-nil slice.
	List(ctx context.Context) ([]todo.Todo, error)

	// Get returns the todo with the given ID.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Insert stores a new todo and returns it with the generated ID. Nil
	// fields are sent as NULL.
	Insert(ctx context.Context, fields todo.Fields) (*todo.Todo, error)

	// Update overwrites both columns of an existing todo and returns the
	// stored row. Nil fields are sent as NULL.
	Update(ctx context.Context, id int64, fields todo.Fields) (*todo.Todo, error)

	// Delete removes the todo with the given ID and returns the removed row.
	Delete(ctx context.Context, id int64) (*todo.Todo, error)
}
