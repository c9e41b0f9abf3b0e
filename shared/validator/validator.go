package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"tempo/shared/failure"
	"tempo/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerIANAZoneValidation(field val.FieldLevel) bool {
	zoneID, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.System().Location(zoneID)

	return err == nil
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	if err := validate.RegisterValidation("ianazone", registerIANAZoneValidation); err != nil {
		panic(err)
	}
}

// RegisterValidation adds a custom string tag to the shared validator. Call it
// from package init only, before any request is validated.
func RegisterValidation(tag string, fn func(value string) bool) {
	err := validate.RegisterValidation(tag, func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)

		return ok && fn(str)
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
