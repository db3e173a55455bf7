package views

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under the names the forms submit them with
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidationError lists the failed rule per form field. No request is sent when a
// form does not validate.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

func validateForm(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate form: %w", err)
	}
	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fe.Field()] = fe.Tag()
	}
	return verr
}

// AsValidationError unwraps a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// rejectForm reports a form the decoder could not fully map. Fields the decoder
// refused keep their rule and the other failing fields are added to them.
func rejectForm(form interface{}, decodeErr *ValidationError) *ValidationError {
	out := &ValidationError{Fields: make(map[string]string, len(decodeErr.Fields))}
	for name, rule := range decodeErr.Fields {
		out.Fields[name] = rule
	}
	if verr, ok := AsValidationError(validateForm(form)); ok {
		for name, rule := range verr.Fields {
			if _, refused := out.Fields[name]; !refused {
				out.Fields[name] = rule
			}
		}
	}
	return out
}
