package validation

import (
	"strings"

	"taskboard/internal/config"
	"taskboard/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidID checks if an ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// CategoryColor returns color, or the configured category default when blank
func (v *Validator) CategoryColor(color string) string {
	fallback := domain.DefaultCategoryColor
	if v.config != nil && v.config.Defaults.CategoryColor != "" {
		fallback = v.config.Defaults.CategoryColor
	}
	return DefaultColor(color, fallback)
}

// TagColor returns color, or the configured tag default when blank
func (v *Validator) TagColor(color string) string {
	fallback := domain.DefaultTagColor
	if v.config != nil && v.config.Defaults.TagColor != "" {
		fallback = v.config.Defaults.TagColor
	}
	return DefaultColor(color, fallback)
}

// DefaultColor returns the trimmed color, or fallback when it is blank.
// The value is not checked for hex format.
func DefaultColor(color, fallback string) string {
	if c := strings.TrimSpace(color); c != "" {
		return c
	}
	return fallback
}
