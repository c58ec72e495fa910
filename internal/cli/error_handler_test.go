package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"taskboard/internal/client"
	"taskboard/internal/config"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "create task",
			err:       apperrors.NewValidationError("title is required", nil),
			expected:  "failed to create task: title is required",
		},
		{
			name:      "Not found error",
			operation: "get user",
			err:       apperrors.NewNotFoundError("user", "123"),
			expected:  "failed to get user: user not found: 123",
		},
		{
			name:      "Storage error",
			operation: "save post",
			err:       apperrors.NewStorageError("insert", errors.New("timeout")),
			expected:  "failed to save post: A storage error occurred. Please try again.",
		},
		{
			name:      "Missing row",
			operation: "publish post",
			err:       fmt.Errorf("post 9: %w", sql.ErrNoRows),
			expected:  "failed to publish post: not found",
		},
		{
			name:      "API error",
			operation: "toggle task",
			err:       &client.APIError{StatusCode: http.StatusNotFound, Message: "Task not found"},
			expected:  "failed to toggle task: Task not found",
		},
		{
			name:      "Config error",
			operation: "load configuration",
			err:       &config.ConfigError{Field: "database.dsn", Message: "required for postgres"},
			expected:  "failed to load configuration: database.dsn: required for postgres",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}

	if eh.Handle("noop", nil) != nil {
		t.Errorf("ErrorHandler.Handle() should return nil for nil error")
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError("tag")
	ve.Require("name")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Field validation error",
			err:      ve,
			expected: "name is required",
		},
		{
			name:     "Storage error",
			err:      apperrors.NewStorageError("insert", errors.New("timeout")),
			expected: "A storage error occurred. Please try again.",
		},
		{
			name:     "API error without message",
			err:      &client.APIError{StatusCode: http.StatusBadGateway},
			expected: "api error: status 502",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	if !eh.IsValidationError(apperrors.NewValidationError("bad", nil)) {
		t.Errorf("IsValidationError should return true for validation AppError")
	}
	if !eh.IsValidationError(&validation.ValidationError{}) {
		t.Errorf("IsValidationError should return true for field validation errors")
	}
	if !eh.IsNotFoundError(sql.ErrNoRows) {
		t.Errorf("IsNotFoundError should return true for sql.ErrNoRows")
	}
	if !eh.IsNotFoundError(&client.APIError{StatusCode: http.StatusNotFound}) {
		t.Errorf("IsNotFoundError should return true for a 404 response")
	}
	if eh.IsNotFoundError(errors.New("boom")) {
		t.Errorf("IsNotFoundError should return false for regular error")
	}
	if !eh.IsStorageError(apperrors.NewStorageError("query", nil)) {
		t.Errorf("IsStorageError should return true for storage errors")
	}
	if eh.GetErrorCode(apperrors.NewNotFoundError("tag", "1")) != "NOT_FOUND" {
		t.Errorf("GetErrorCode should return the AppError code")
	}
}
