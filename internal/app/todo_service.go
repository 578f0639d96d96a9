// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoRepository. Each
// use case is one repository call except MergeTodo, which reads and then
// writes without a transaction. No content validation happens here.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TodoService{
		repo:   repo,
		logger: logger,
	}
}

// ListTodos returns all todos ordered by ID ascending.
func (s *TodoService) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	s.logger.DebugContext(ctx, "listing todos")

	todos, err := s.repo.List(ctx)
	if err != nil {
		s.logFailure(ctx, "ListTodos", 0, err)
		return nil, err
	}

	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "fetching todo", logging.TodoID(id))

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetTodo", id, err)
		return nil, err
	}

	return t, nil
}

// CreateTodo stores a new todo with Completed defaulting to false.
func (s *TodoService) CreateTodo(ctx context.Context, fields todo.Fields) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "creating todo")

	created, err := s.repo.Insert(ctx, fields.WithCompletedDefault())
	if err != nil {
		s.logFailure(ctx, "CreateTodo", 0, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo created", logging.TodoID(created.ID))
	return created, nil
}

// ReplaceTodo overwrites both fields of an existing todo.
func (s *TodoService) ReplaceTodo(ctx context.Context, id int64, fields todo.Fields) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "replacing todo", logging.TodoID(id))

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logFailure(ctx, "ReplaceTodo", id, err)
		return nil, err
	}

	return updated, nil
}

// MergeTodo applies patch over the stored todo. Concurrent merges on the
// same ID may overwrite each other.
func (s *TodoService) MergeTodo(ctx context.Context, id int64, patch todo.Fields) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "merging todo", logging.TodoID(id))

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "MergeTodo", id, err)
		return nil, fmt.Errorf("reading todo %d: %w", id, err)
	}

	updated, err := s.repo.Update(ctx, id, patch.MergeOnto(*current))
	if err != nil {
		s.logFailure(ctx, "MergeTodo", id, err)
		return nil, fmt.Errorf("writing todo %d: %w", id, err)
	}

	return updated, nil
}

// DeleteTodo removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	s.logger.DebugContext(ctx, "deleting todo", logging.TodoID(id))

	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteTodo", id, err)
		return err
	}

	s.logger.InfoContext(ctx, "todo deleted", logging.TodoID(id))
	return nil
}

// logFailure records a failed use case. Missing rows are expected traffic and
// are logged at warn; everything else is an error.
func (s *TodoService) logFailure(ctx context.Context, op string, id int64, err error) {
	attrs := []any{logging.Operation(op)}
	if id != 0 {
		attrs = append(attrs, logging.TodoID(id))
	}
	attrs = append(attrs, logging.Err(err))

	if errors.Is(err, domain.ErrNotFound) {
		s.logger.WarnContext(ctx, "todo not found", attrs...)
		return
	}
	s.logger.ErrorContext(ctx, "todo operation failed", attrs...)
}
