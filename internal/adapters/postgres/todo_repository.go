package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const (
	listTodosSQL  = `SELECT id, name, completed FROM todo_app ORDER BY id`
	getTodoSQL    = `SELECT id, name, completed FROM todo_app WHERE id = $1`
	insertTodoSQL = `INSERT INTO todo_app (name, completed) VALUES ($1::text, $2::text::boolean) RETURNING id, name, completed`
	updateTodoSQL = `UPDATE todo_app SET name = $1::text, completed = $2::text::boolean WHERE id = $3 RETURNING id, name, completed`
	deleteTodoSQL = `DELETE FROM todo_app WHERE id = $1 RETURNING id, name, completed`
)

// Querier is the subset of *pgxpool.Pool the repository uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

// TodoRepository stores todos in the todo_app table. Every method is a
// single statement. Fields are bound as text and cast in SQL, so Postgres
// decides which spellings of a boolean it accepts; absent Fields are sent
// as SQL NULL and left for the table constraints to judge.
type TodoRepository struct {
	db Querier
}

// NewTodoRepository creates a TodoRepository.
func NewTodoRepository(db Querier) *TodoRepository {
	return &TodoRepository{db: db}
}

// List returns every row ordered by id.
func (r *TodoRepository) List(ctx context.Context) ([]todo.Todo, error) {
	rows, err := r.db.Query(ctx, listTodosSQL)
	if err != nil {
		return nil, mapError("list todos", err)
	}

	todos, err := pgx.CollectRows(rows, scanTodo)
	if err != nil {
		return nil, mapError("list todos", err)
	}
	if todos == nil {
		todos = []todo.Todo{}
	}
	return todos, nil
}

// Get returns the row with the given id.
func (r *TodoRepository) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	return r.queryOne(ctx, "get todo", getTodoSQL, id)
}

// Insert adds a row and returns it with its generated id.
func (r *TodoRepository) Insert(ctx context.Context, fields todo.Fields) (*todo.Todo, error) {
	return r.queryOne(ctx, "insert todo", insertTodoSQL, fields.Name, fields.Completed)
}

// Update overwrites both columns of an existing row.
func (r *TodoRepository) Update(ctx context.Context, id int64, fields todo.Fields) (*todo.Todo, error) {
	return r.queryOne(ctx, "update todo", updateTodoSQL, fields.Name, fields.Completed, id)
}

// Delete removes a row and returns what it held.
func (r *TodoRepository) Delete(ctx context.Context, id int64) (*todo.Todo, error) {
	return r.queryOne(ctx, "delete todo", deleteTodoSQL, id)
}

func (r *TodoRepository) queryOne(ctx context.Context, op, sql string, args ...any) (*todo.Todo, error) {
	var t todo.Todo
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.Name, &t.Completed); err != nil {
		return nil, mapError(op, err)
	}
	return &t, nil
}

func scanTodo(row pgx.CollectableRow) (todo.Todo, error) {
	var t todo.Todo
	err := row.Scan(&t.ID, &t.Name, &t.Completed)
	return t, err
}
