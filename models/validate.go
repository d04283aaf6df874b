package models

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var alphaspaceRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so error details line up with the
	// payload the caller sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaspaceRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Validate runs the struct's field constraints and returns every violation,
// not just the first. A nil result means the value is valid.
func Validate(value any) []FieldError {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "payload", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), "'", ""))
	case "alphaspace":
		return fmt.Sprintf("%s can only contain letters and spaces", field)
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s cannot contain more than %s item(s)", field, fe.Param())
		default:
			return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
		}
	}

	return fmt.Sprintf("%s is invalid", field)
}
