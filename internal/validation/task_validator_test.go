package validation

import (
	"testing"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateCreate(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       domain.CreateTaskInput
		expectError bool
	}{
		{"Valid title", domain.CreateTaskInput{Title: "Write report"}, false},
		{"Empty title", domain.CreateTaskInput{Title: ""}, true},
		{"Whitespace only", domain.CreateTaskInput{Title: "   "}, true},
		{"Any characters allowed", domain.CreateTaskInput{Title: "Task@#$% 🚀"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateCreate(tt.input)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "task", ve.Resource)
			assert.Equal(t, RuleRequired, ve.Errors[0].Rule)
			assert.Equal(t, []string{"title"}, ve.Fields())
		})
	}
}

func TestTaskValidator_ValidateUpdate(t *testing.T) {
	validator := NewTaskValidator()
	blank := " "
	title := "Renamed"

	assert.NoError(t, validator.ValidateUpdate(1, domain.UpdateTaskInput{}))
	assert.NoError(t, validator.ValidateUpdate(1, domain.UpdateTaskInput{Title: &title}))

	err := validator.ValidateUpdate(1, domain.UpdateTaskInput{Title: &blank})
	assert.True(t, IsValidationError(err))

	err = validator.ValidateUpdate(0, domain.UpdateTaskInput{Title: &blank})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"id", "title"}, ve.Fields())
}

func TestTaskValidator_ValidateID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateID(3))
	assert.EqualError(t, validator.ValidateID(0), "invalid task: id must be a positive integer")
}

func TestLabelValidator(t *testing.T) {
	lv := NewLabelValidator(nil)

	assert.NoError(t, lv.ValidateName("category", "Work"))
	assert.EqualError(t, lv.ValidateName("tag", "  "), "invalid tag: name is required")
	assert.Equal(t, "#3b82f6", lv.CategoryColor(""))
	assert.Equal(t, "#10b981", lv.TagColor(""))
}
