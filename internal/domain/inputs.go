package domain

import (
	"bytes"
	"encoding/json"
)

// CreateTaskInput is the body of a create-task request
type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	CategoryID  *int64  `json:"categoryId,omitempty"`
	TagIDs      []int64 `json:"tagIds,omitempty"`
}

// UpdateTaskInput is the body of an update-task request. Absent fields are
// left unchanged; an empty description clears it.
type UpdateTaskInput struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Completed   *bool         `json:"completed,omitempty"`
	CategoryID  OptionalInt64 `json:"categoryId,omitzero"`
	TagIDs      *[]int64      `json:"tagIds,omitempty"`
}

// CreateCategoryInput is the body of a create-category request
type CreateCategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CreateTagInput is the body of a create-tag request
type CreateTagInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// OptionalInt64 tells an absent JSON field apart from an explicit null.
// Set is true whenever the field appeared; Value is nil for null.
type OptionalInt64 struct {
	Set   bool
	Value *int64
}

// SetInt64 returns a present, non-null OptionalInt64
func SetInt64(v int64) OptionalInt64 {
	return OptionalInt64{Set: true, Value: &v}
}

// Null returns a present OptionalInt64 holding null
func Null() OptionalInt64 {
	return OptionalInt64{Set: true}
}

// IsZero reports whether the field was absent; used by omitzero
func (o OptionalInt64) IsZero() bool {
	return !o.Set
}

func (o OptionalInt64) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func (o *OptionalInt64) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
