package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError names one field and the rule it violated.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error is returned when inbound data or an entity fails validation.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether field failed the given rule. An empty rule matches any.
func (e *Error) Has(field, rule string) bool {
	for _, f := range e.Fields {
		if f.Field == field && (rule == "" || f.Rule == rule) {
			return true
		}
	}
	return false
}

// Map flattens the error into field -> message.
func (e *Error) Map() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// AsError unwraps err into *Error.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email_pattern":
		return "Invalid email format"
	case "min":
		if isNumber(fe) {
			return fmt.Sprintf("Must be at least %s", fe.Param())
		}
		return fmt.Sprintf("Minimum length is %s", fe.Param())
	case "max":
		if isNumber(fe) {
			return fmt.Sprintf("Must be at most %s", fe.Param())
		}
		return fmt.Sprintf("Maximum length is %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "decimal":
		maxDigits, places, err := ParsePrecision(fe.Param())
		if err != nil {
			return "Invalid decimal"
		}
		return fmt.Sprintf("Must have at most %d digits with %d decimal places", maxDigits, places)
	case "decimal_gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "decimal_lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "url":
		return "Must be a valid URL"
	default:
		return fmt.Sprintf("Invalid %s field", fe.Field())
	}
}

func isNumber(fe validator.FieldError) bool {
	switch fe.Kind().String() {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64":
		return true
	}
	return false
}
