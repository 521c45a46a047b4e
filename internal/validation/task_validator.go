package validation

// TaskValidator provides validation for task operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{validator: NewValidator()}
}

// ValidateText validates task text for creation or edit
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimText(text)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("text")
	} else if !tv.validator.IsValidTextLength(trimmed) {
		validationError.AddInvalidLengthError("text", trimmed, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateID validates a task identifier
func (tv *TaskValidator) ValidateID(id string) error {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyID(id) {
		validationError.AddRequiredError("id")
	}
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// CleanText returns the task text as it will be stored
func (tv *TaskValidator) CleanText(text string) string {
	return tv.validator.TrimText(text)
}
