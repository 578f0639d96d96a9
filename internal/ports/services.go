package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns all todos ordered by ID ascending.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo stores a new todo. An unset Completed defaults to false; an
	// unset Name is left for the store to reject.
	CreateTodo(ctx context.Context, fields todo.Fields) (*todo.Todo, error)

	// ReplaceTodo overwrites name and completed unconditionally.
	// Returns domain.ErrNotFound if the todo does not exist.
	ReplaceTodo(ctx context.Context, id int64, fields todo.Fields) (*todo.Todo, error)

	// MergeTodo reads the stored todo, keeps every field the patch leaves
	// unset, and writes the result back. The read and the write are separate
	// statements.
	// Returns domain.ErrNotFound if the todo does not exist.
	MergeTodo(ctx context.Context, id int64, patch todo.Fields) (*todo.Todo, error)

	// DeleteTodo removes a todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
