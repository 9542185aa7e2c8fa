package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, ok := MonthIndex(fl.Field().String())
		return ok
	})
	return v
}

// validationMessage turns the first validator failure into the short
// human-readable message the API returns.
func validationMessage(err error) string {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "month":
		return "month must be a calendar month name (January..December)"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "min", "max":
		if fe.Field() == "year" {
			return "year must be between 2000 and 2100"
		}
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fe.Field() + " must be non-negative"
	default:
		return fe.Field() + " is invalid"
	}
}
