package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyGroupName    = errors.New("group name is required")
	ErrInvalidIconID     = errors.New("icon identifier cannot be negative")
	ErrEmptyFieldKey     = errors.New("custom field key cannot be empty")
	ErrReservedFieldKey  = errors.New("custom field key collides with a reserved field")
	ErrDuplicateFieldKey = errors.New("custom field keys must be unique")
)
