package validation

import (
	"taskboard/internal/domain"
)

// TaskValidator checks task requests before they reach storage
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateCreate requires a non-blank title
func (tv *TaskValidator) ValidateCreate(input domain.CreateTaskInput) error {
	ve := NewValidationError("task")
	if !tv.validator.IsNonEmptyString(input.Title) {
		ve.Require("title")
	}
	return ve.Err()
}

// ValidateUpdate checks the task ID and, when a title is supplied, that it is not blank
func (tv *TaskValidator) ValidateUpdate(id int64, input domain.UpdateTaskInput) error {
	ve := NewValidationError("task")
	ve.RequirePositive("id", id)
	if input.Title != nil && !tv.validator.IsNonEmptyString(*input.Title) {
		ve.Require("title")
	}
	return ve.Err()
}

// ValidateID checks a task ID taken from a request path
func (tv *TaskValidator) ValidateID(id int64) error {
	ve := NewValidationError("task")
	ve.RequirePositive("id", id)
	return ve.Err()
}
