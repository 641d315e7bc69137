package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator"
	"github.com/gosimple/slug"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names so errors match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.IsSlug(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks v against its validate tags. A constraint failure is
// returned as validator.ValidationErrors.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
