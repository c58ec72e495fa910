package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Rule names the check a request field failed
type Rule string

const (
	RuleRequired Rule = "required"
	RulePositive Rule = "positive"
)

// FieldError is one failed check on a request field
type FieldError struct {
	Field string
	Rule  Rule
	Value interface{}
}

// Message renders the failure for people
func (fe FieldError) Message() string {
	switch fe.Rule {
	case RuleRequired:
		return fe.Field + " is required"
	case RulePositive:
		return fe.Field + " must be a positive integer"
	default:
		return fe.Field + " is invalid"
	}
}

// ValidationError collects every failed check of one request against a
// resource such as "task", "category" or "tag"
type ValidationError struct {
	Resource string
	Errors   []FieldError
}

// NewValidationError starts an empty error for resource
func NewValidationError(resource string) *ValidationError {
	return &ValidationError{Resource: resource}
}

func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return fmt.Sprintf("invalid %s", ve.Resource)
	}
	return fmt.Sprintf("invalid %s: %s", ve.Resource, strings.Join(ve.messages(), "; "))
}

// Require records that field was missing or blank
func (ve *ValidationError) Require(field string) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Rule: RuleRequired})
}

// RequirePositive records a failure when id is not a usable row id
func (ve *ValidationError) RequirePositive(field string, id int64) {
	if id <= 0 {
		ve.Errors = append(ve.Errors, FieldError{Field: field, Rule: RulePositive, Value: id})
	}
}

// Err returns ve when any check failed and nil otherwise
func (ve *ValidationError) Err() error {
	if len(ve.Errors) == 0 {
		return nil
	}
	return ve
}

// Fields lists the failed fields in the order they were checked
func (ve *ValidationError) Fields() []string {
	fields := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// GetUserFriendlyMessage joins the field messages without the resource prefix
func (ve *ValidationError) GetUserFriendlyMessage() string {
	if len(ve.Errors) == 0 {
		return fmt.Sprintf("invalid %s", ve.Resource)
	}
	return strings.Join(ve.messages(), ", ")
}

func (ve *ValidationError) messages() []string {
	out := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		out[i] = fe.Message()
	}
	return out
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
