package dto

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Indian mobile number shape, same rule the API has always enforced.
var mobilePattern = regexp.MustCompile(`^[7-9][0-9]{9}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the struct tags and returns a field -> message map,
// or nil when the input is valid. Handlers put the map straight into
// the response envelope so clients get field-level detail.
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		out["body"] = "invalid request body"
		return out
	}

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "this field is required"
		case "email":
			out[fe.Field()] = "must be a valid email address"
		case "mobile":
			out[fe.Field()] = "must be a valid 10 digit mobile number"
		case "min":
			out[fe.Field()] = fmt.Sprintf("must be at least %s", fe.Param())
		case "max":
			out[fe.Field()] = fmt.Sprintf("must be at most %s", fe.Param())
		case "len":
			out[fe.Field()] = fmt.Sprintf("must be exactly %s characters", fe.Param())
		case "gt":
			out[fe.Field()] = fmt.Sprintf("must be greater than %s", fe.Param())
		case "nefield":
			out[fe.Field()] = fmt.Sprintf("must differ from %s", fe.Param())
		default:
			out[fe.Field()] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
	}
	return out
}
