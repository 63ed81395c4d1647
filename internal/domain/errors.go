package domain

// Field names used in ConstraintError.
const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldTag         = "tag"
	FieldDate        = "date"
	FieldDescription = "description"
	FieldScope       = "scope"
	FieldIndex       = "index"
)

// ConstraintError reports a raw value rejected by its field validator.
// Message is the field's fixed constraint text.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func constraint(field, message string) error {
	return &ConstraintError{Field: field, Message: message}
}
