package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLabel = errors.New("label cannot be empty")
	ErrEmptyValue = errors.New("value cannot be empty")

	ErrInvalidEncoding = errors.New("label and value must be valid UTF-8")
)
