// Package validate wraps a shared go-playground validator for domain commands.
// Failures wrap ErrInvalid and are reported by JSON field name. String
// lengths are measured in Unicode code points.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every constraint violation.
var ErrInvalid = errors.New("validation failed")

var instance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Violation lists every failed constraint of a single validation pass.
type Violation struct {
	Messages []string
}

func (v *Violation) Error() string {
	return ErrInvalid.Error() + ": " + strings.Join(v.Messages, "; ")
}

// Is reports ErrInvalid as the target.
func (v *Violation) Is(target error) bool {
	return target == ErrInvalid
}

// Struct checks s against its validate struct tags.
func Struct(s any) error {
	return convert(instance.Struct(s), "")
}

// Var checks a single value against tag, reporting failures under field.
func Var(field string, value any, tag string) error {
	return convert(instance.Var(value, tag), field)
}

// All merges the violations of every check into one error, or nil when all pass.
// A non-validation error is returned as is.
func All(checks ...error) error {
	var merged Violation
	for _, err := range checks {
		if err == nil {
			continue
		}
		var v *Violation
		if !errors.As(err, &v) {
			return err
		}
		merged.Messages = append(merged.Messages, v.Messages...)
	}
	if len(merged.Messages) == 0 {
		return nil
	}
	return &merged
}

func convert(err error, field string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	v := &Violation{}
	for _, fe := range fieldErrs {
		name := field
		if name == "" {
			name = fe.Field()
		}
		v.Messages = append(v.Messages, message(name, fe))
	}
	return v
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
