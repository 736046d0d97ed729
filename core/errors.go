package core

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	// ErrFetchFailed is reported whenever a list could not be loaded.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrMutationFailed is reported whenever a create, update or delete did not go through.
	ErrMutationFailed = errors.New("mutation failed")
	// ErrRequiredFields is the cause of every local validation failure.
	ErrRequiredFields = errors.New("please fill all required fields")
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	if len(err.Fields) == 0 {
		return err.Err.Error()
	}
	msgs := make([]string, 0, len(err.Fields))
	for _, f := range err.Fields {
		msgs = append(msgs, f.Field+": "+f.Error)
	}
	return err.Err.Error() + " (" + strings.Join(msgs, "; ") + ")"
}

// IsValidation reports whether err (or its cause) is a *ValidationError.
func IsValidation(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// FromValidatorErrors converts validator errors into a *ValidationError with translated messages.
// Any other error is returned untouched.
func FromValidatorErrors(err error, v *Validator) error {
	vErrs, ok := errors.Cause(err).(validator.ValidationErrors)
	if !ok {
		return err
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(v.Translator)})
	}
	return NewValidationError(ErrRequiredFields, flds...)
}
