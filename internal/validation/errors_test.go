package validation

import (
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
	}{
		{"No errors", nil, "invalid task"},
		{"Single error", []FieldError{{Field: "title", Rule: RuleRequired}}, "invalid task: title is required"},
		{"Multiple errors", []FieldError{
			{Field: "id", Rule: RulePositive, Value: int64(0)},
			{Field: "title", Rule: RuleRequired},
		}, "invalid task: id must be a positive integer; title is required"},
		{"Unknown rule", []FieldError{{Field: "color", Rule: Rule("hex")}}, "invalid task: color is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Resource: "task", Errors: tt.errors}
			if result := ve.Error(); result != tt.expected {
				t.Errorf("ValidationError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestValidationError_Err(t *testing.T) {
	ve := NewValidationError("tag")
	if ve.Err() != nil {
		t.Errorf("Err() should be nil before any check fails")
	}

	ve.RequirePositive("id", 4)
	if ve.Err() != nil {
		t.Errorf("RequirePositive should accept a positive id")
	}

	ve.Require("name")
	if ve.Err() == nil {
		t.Errorf("Err() should return the error after Require")
	}
}

func TestValidationError_RequirePositive(t *testing.T) {
	ve := NewValidationError("task")
	ve.RequirePositive("id", -1)

	if len(ve.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(ve.Errors))
	}
	fe := ve.Errors[0]
	if fe.Field != "id" || fe.Rule != RulePositive || fe.Value != int64(-1) {
		t.Errorf("unexpected field error %+v", fe)
	}
}

func TestValidationError_Fields(t *testing.T) {
	ve := NewValidationError("task")
	ve.RequirePositive("id", 0)
	ve.Require("title")

	fields := ve.Fields()
	if len(fields) != 2 || fields[0] != "id" || fields[1] != "title" {
		t.Errorf("Fields() = %v, want [id title]", fields)
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError("category")
	if msg := ve.GetUserFriendlyMessage(); msg != "invalid category" {
		t.Errorf("unexpected message for empty error: %q", msg)
	}

	ve.Require("name")
	if msg := ve.GetUserFriendlyMessage(); msg != "name is required" {
		t.Errorf("unexpected message for single error: %q", msg)
	}

	ve.Require("color")
	if msg := ve.GetUserFriendlyMessage(); msg != "name is required, color is required" {
		t.Errorf("unexpected message for multiple errors: %q", msg)
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError("task")
	if !IsValidationError(ve) {
		t.Errorf("IsValidationError should be true for *ValidationError")
	}
	if !IsValidationError(fmt.Errorf("wrapped: %w", ve)) {
		t.Errorf("IsValidationError should see through wrapping")
	}
	if IsValidationError(fmt.Errorf("plain")) {
		t.Errorf("IsValidationError should be false for other errors")
	}
}
