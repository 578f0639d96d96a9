package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRequest is the JSON body accepted by POST, PUT, and PATCH. Values are
// kept as raw JSON so that any scalar reaches the store: {"completed":"true"}
// and {"name":123} are as valid as their natively typed forms. A key that is
// absent and a key set to null both convert to nil.
type TodoRequest struct {
	Name      json.RawMessage `json:"name"`
	Completed json.RawMessage `json:"completed"`
}

// ToFields converts the request into domain presence-aware fields.
func (r *TodoRequest) ToFields() todo.Fields {
	return todo.Fields{
		Name:      jsonText(r.Name),
		Completed: jsonText(r.Completed),
	}
}

// jsonText returns the text form of a raw JSON value: the contents of a
// string, or the literal itself for numbers, booleans, objects, and arrays.
// Absent and null values yield nil.
func jsonText(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err == nil {
			return &s
		}
	}
	s = string(raw)
	return &s
}
