package validation

// LabelValidator checks category and tag requests
type LabelValidator struct {
	validator *Validator
}

// NewLabelValidator creates a label validator that defaults colors from v
func NewLabelValidator(v *Validator) *LabelValidator {
	if v == nil {
		v = NewValidator()
	}
	return &LabelValidator{validator: v}
}

// ValidateName requires a non-blank name. kind is "category" or "tag".
func (lv *LabelValidator) ValidateName(kind, name string) error {
	ve := NewValidationError(kind)
	if !lv.validator.IsNonEmptyString(name) {
		ve.Require("name")
	}
	return ve.Err()
}

// CategoryColor applies the category color default
func (lv *LabelValidator) CategoryColor(color string) string {
	return lv.validator.CategoryColor(color)
}

// TagColor applies the tag color default
func (lv *LabelValidator) TagColor(color string) string {
	return lv.validator.TagColor(color)
}
