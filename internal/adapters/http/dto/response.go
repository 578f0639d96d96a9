// Package dto holds the wire shapes of the HTTP adapter: JSON request and
// response bodies, and the plain-text error writer.
package dto

import "github.com/jsamuelsen11/todo-service/internal/domain/todo"

// TodoResponse is a todo as it appears on the wire.
type TodoResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// ToTodoResponse converts a domain Todo.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Name:      t.Name,
		Completed: t.Completed,
	}
}

// ToTodoListResponse converts a slice of todos into a bare JSON array. An
// empty input yields [] rather than null.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}
