package validator

import (
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"

	"roomslots/shared/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)

		return ok && strings.TrimSpace(str) != ""
	})
	if err != nil {
		panic(err)
	}
}

// ValidateStruct runs the struct's validate tags and reports the first violation as invalid data.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.InvalidDataFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateRows validates every row and prefixes the first failure with its 1-based data row number.
func ValidateRows[T any](rows []T) error {
	for i := range rows {
		if err := ValidateStruct(&rows[i]); err != nil {
			return failure.InvalidDataFromString(fmt.Sprintf("row %d: %s", i+1, err.Error())) //nolint:wrapcheck
		}
	}

	return nil
}
