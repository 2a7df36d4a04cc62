package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// EmailPattern is the accepted shape for user emails: local@domain.tld.
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the marketplace rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = newValidator()
	})
	return validate
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// decimals are validated through their exact string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "email_pattern", func(fl validator.FieldLevel) bool {
		return EmailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "decimal", validatePrecision)
	mustRegister(v, "decimal_gte", func(fl validator.FieldLevel) bool {
		return compareDecimal(fl, func(d, bound decimal.Decimal) bool { return d.GreaterThanOrEqual(bound) })
	})
	mustRegister(v, "decimal_lte", func(fl validator.FieldLevel) bool {
		return compareDecimal(fl, func(d, bound decimal.Decimal) bool { return d.LessThanOrEqual(bound) })
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates s and returns *Error when any field rule fails.
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}
	return out
}

// ParsePrecision splits a "P_S" rule parameter into max digits and scale.
func ParsePrecision(param string) (maxDigits, places int, err error) {
	parts := strings.SplitN(param, "_", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid decimal precision %q", param)
	}
	if maxDigits, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid decimal precision %q: %w", param, err)
	}
	if places, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid decimal precision %q: %w", param, err)
	}
	if places < 0 || maxDigits < places {
		return 0, 0, fmt.Errorf("invalid decimal precision %q", param)
	}
	return maxDigits, places, nil
}

// FitsPrecision reports whether d fits a decimal(maxDigits, places) column
// without rounding.
func FitsPrecision(d decimal.Decimal, maxDigits, places int) bool {
	whole, frac := Digits(d)
	return frac <= places && whole <= maxDigits-places
}

// Digits counts the integer and fractional digits of d, ignoring leading and
// trailing zeros.
func Digits(d decimal.Decimal) (whole, frac int) {
	s := d.Abs().String()
	intPart, fracPart, _ := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")
	fracPart = strings.TrimRight(fracPart, "0")
	return len(intPart), len(fracPart)
}

func validatePrecision(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	if !ok {
		return false
	}
	maxDigits, places, err := ParsePrecision(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("validation: %v", err))
	}
	return FitsPrecision(d, maxDigits, places)
}

func compareDecimal(fl validator.FieldLevel, cmp func(d, bound decimal.Decimal) bool) bool {
	d, ok := fieldDecimal(fl)
	if !ok {
		return false
	}
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("validation: invalid bound %q for %s", fl.Param(), fl.GetTag()))
	}
	return cmp(d, bound)
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(field.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
