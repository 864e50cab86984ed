package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/idelchi/gogen/pkg/validator"
)

// registerByteSize adds the "bytesize" tag, accepting sizes such as "2GiB", "500MB" or "0".
// Errors name fields by their label tag, so messages refer to flags rather than struct fields.
func registerByteSize(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"bytesize",
		validateByteSize,
		"{0} must be a size such as 2GiB, 500MB or 0",
	); err != nil {
		return fmt.Errorf("registering bytesize validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateByteSize reports whether a string field parses as a human readable size.
func validateByteSize(fl validator.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() != reflect.String {
		return false
	}

	_, err := humanize.ParseBytes(field.String())

	return err == nil
}
