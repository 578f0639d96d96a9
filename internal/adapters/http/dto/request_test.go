package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

func TestTodoRequest_ToFields(t *testing.T) {
	t.Parallel()

	str := func(v string) *string { return &v }

	tests := []struct {
		name          string
		body          string
		wantName      *string
		wantCompleted *string
	}{
		{name: "empty object", body: `{}`},
		{name: "explicit nulls", body: `{"name":null,"completed":null}`},
		{name: "explicit false", body: `{"completed":false}`, wantCompleted: str("false")},
		{name: "explicit true", body: `{"completed":true}`, wantCompleted: str("true")},
		{name: "empty name", body: `{"name":""}`, wantName: str("")},
		{name: "unknown keys ignored", body: `{"title":"x"}`},
		{name: "string completed", body: `{"name":"a","completed":"true"}`, wantName: str("a"), wantCompleted: str("true")},
		{name: "numeric completed", body: `{"completed":1}`, wantCompleted: str("1")},
		{name: "numeric name", body: `{"name":123}`, wantName: str("123")},
		{name: "boolean name", body: `{"name":true}`, wantName: str("true")},
		{name: "escaped string", body: `{"name":"tab\there é"}`, wantName: str("tab\there é")},
		{name: "object name kept as json", body: `{"name":{"a":1}}`, wantName: str(`{"a":1}`)},
		{name: "unconvertible completed passed through", body: `{"completed":"maybe"}`, wantCompleted: str("maybe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.TodoRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.body, err)
			}
			fields := req.ToFields()

			if (fields.Name == nil) != (tt.wantName == nil) {
				t.Fatalf("Name present = %v, want %v", fields.Name != nil, tt.wantName != nil)
			}
			if tt.wantName != nil && *fields.Name != *tt.wantName {
				t.Errorf("Name = %q, want %q", *fields.Name, *tt.wantName)
			}
			if (fields.Completed == nil) != (tt.wantCompleted == nil) {
				t.Fatalf("Completed present = %v, want %v", fields.Completed != nil, tt.wantCompleted != nil)
			}
			if tt.wantCompleted != nil && *fields.Completed != *tt.wantCompleted {
				t.Errorf("Completed = %q, want %q", *fields.Completed, *tt.wantCompleted)
			}
		})
	}
}
