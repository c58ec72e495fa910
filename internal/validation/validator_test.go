package validation

import (
	"testing"

	"taskboard/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("a"))
	assert.True(t, v.IsNonEmptyString("  a  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString(" \t\n"))
}

func TestValidator_IsValidID(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidID(1))
	assert.False(t, v.IsValidID(0))
	assert.False(t, v.IsValidID(-4))
}

func TestDefaultColor(t *testing.T) {
	tests := []struct {
		name     string
		color    string
		expected string
	}{
		{"absent", "", "#3b82f6"},
		{"blank", "   ", "#3b82f6"},
		{"given", "#ff0000", "#ff0000"},
		{"not hex is kept", "red", "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultColor(tt.color, "#3b82f6"))
		})
	}
}

func TestValidator_Colors(t *testing.T) {
	v := NewValidator()
	assert.Equal(t, "#3b82f6", v.CategoryColor(""))
	assert.Equal(t, "#10b981", v.TagColor(""))
	assert.Equal(t, "#123456", v.TagColor("#123456"))

	cfg := config.NewConfig()
	cfg.Defaults.CategoryColor = "#111111"
	cfg.Defaults.TagColor = "#222222"
	configured := NewValidatorWithConfig(cfg)
	assert.Equal(t, "#111111", configured.CategoryColor(""))
	assert.Equal(t, "#222222", configured.TagColor(" "))
}
