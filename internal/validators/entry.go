package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-safe-vault/models"
)

// Field name constants accepted by [EntryValidator] for field-level scoping.
const (
	// FieldLabel targets the entry label. Only the empty string is
	// rejected, trimming is left to the input surfaces.
	FieldLabel = "label"

	// FieldValue targets the secret value. Whitespace is significant in
	// values, only the empty string is rejected.
	FieldValue = "value"
)

// EntryValidator implements [Validator] for [models.Entry].
type EntryValidator struct {
}

// NewEntryValidator constructs a new EntryValidator and returns it as the
// Validator interface.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate checks an entry, optionally restricted to the named fields.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(ctx, value, fields...)
	case *models.Entry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntry(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(_ context.Context, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLabel, FieldValue}
	}

	for _, f := range fields {
		switch f {
		case FieldLabel:
			if entry.Label == "" {
				return ErrEmptyLabel
			}
			if !utf8.ValidString(entry.Label) {
				return ErrInvalidEncoding
			}
		case FieldValue:
			if entry.Value == "" {
				return ErrEmptyValue
			}
			// The collection is stored as JSON, which cannot carry
			// arbitrary bytes.
			if !utf8.ValidString(entry.Value) {
				return ErrInvalidEncoding
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
