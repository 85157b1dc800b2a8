package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated rule, keyed by the JSON path of the field (e.g. "measurements.bust").
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists violations in struct field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}

// Summary is the client-facing message: the first violation only.
func (e *ValidationError) Summary() string {
	if len(e.Fields) == 0 {
		return "Validation error"
	}
	return "Validation error: " + e.Fields[0].Message
}

// Map returns field -> message. The first message wins for a field with several violations.
func (e *ValidationError) Map() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

// Validator wraps go-playground/validator with JSON field names and the custom rules from rules.go.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

// Validate checks i and returns *ValidationError when a rule fails.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		name := fieldPath(fe)
		fields = append(fields, FieldError{
			Field:   name,
			Message: fmt.Sprintf("%q %s", name, message(fe)),
		})
	}
	return &ValidationError{Fields: fields}
}

// fieldPath drops the top-level struct name from the namespace: "orderRequest.measurements.bust" -> "measurements.bust".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "trimmed-required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url", "http_url":
		return "must be a valid URL"
	case "is-order-status":
		return "must be one of: " + joinStatuses(orderStatusNames())
	case "is-freelancer-status":
		return "must be one of: " + joinStatuses(freelancerStatusNames())
	default:
		return fmt.Sprintf("is invalid (failed on '%s')", fe.Tag())
	}
}

func joinStatuses(names []string) string {
	return strings.Join(names, ", ")
}
