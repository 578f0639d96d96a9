// Package todo holds the Todo entity and the client-supplied field set used
// to create, replace and merge it.
package todo

import "strconv"

// Todo is a named item with a completion flag. ID is assigned by the store
// and never changes after creation.
type Todo struct {
	ID        int64
	Name      string
	Completed bool
}

// Fields carries the writable columns of a Todo as supplied by a client, in
// text form. The store converts each value to its column type, so
// Completed may hold "true", "t", "1" or "yes", and Name may hold the digits
// of a JSON number. Values the store cannot convert fail there.
//
// A nil pointer means the key was absent from the request body or was an
// explicit JSON null; the two are not distinguished. Non-nil pointers are
// always honored, including "false" and the empty string.
type Fields struct {
	Name      *string
	Completed *string
}

// FormatCompleted renders a completion flag the way Fields carries it.
func FormatCompleted(completed bool) string {
	return strconv.FormatBool(completed)
}

// WithCompletedDefault returns a copy of f in which an unset Completed is
// replaced by "false". Name is left alone: a missing name is passed to the
// store as NULL and rejected there.
func (f Fields) WithCompletedDefault() Fields {
	if f.Completed == nil {
		completed := FormatCompleted(false)
		f.Completed = &completed
	}
	return f
}

// MergeOnto returns a fully populated field set where every value that f
// leaves unset is taken from current.
func (f Fields) MergeOnto(current Todo) Fields {
	merged := Fields{Name: f.Name, Completed: f.Completed}
	if merged.Name == nil {
		name := current.Name
		merged.Name = &name
	}
	if merged.Completed == nil {
		completed := FormatCompleted(current.Completed)
		merged.Completed = &completed
	}
	return merged
}

// IsEmpty reports whether f sets no field at all.
func (f Fields) IsEmpty() bool {
	return f.Name == nil && f.Completed == nil
}
