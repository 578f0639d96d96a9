package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// DeletedMessage is the body of a successful DELETE.
const DeletedMessage = "Todo deleted"

// TodoHandler serves the /todos resource.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List handles GET /todos.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.ListTodos(r.Context())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoListResponse(todos))
}

// Get handles GET /todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// Create handles POST /todos. A missing name is passed through and rejected
// by the store.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTodoRequest(w, r)
	if !ok {
		return
	}

	created, err := h.svc.CreateTodo(r.Context(), req.ToFields())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTodoResponse(created))
}

// Replace handles PUT /todos/{id}.
func (h *TodoHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	req, ok := decodeTodoRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.ReplaceTodo(r.Context(), id, req.ToFields())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(updated))
}

// Merge handles PATCH /todos/{id}.
func (h *TodoHandler) Merge(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	req, ok := decodeTodoRequest(w, r)
	if !ok {
		return
	}

	merged, err := h.svc.MergeTodo(r.Context(), id, req.ToFields())
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(merged))
}

// Delete handles DELETE /todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteText(w, r, http.StatusOK, DeletedMessage)
}
