package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"

	"zonetag/shared/failure"
	"zonetag/shared/timezone"
)

var validate *val.Validate

// registerCatalogZoneValidation accepts only zone ids offered by the catalog.
func registerCatalogZoneValidation(field val.FieldLevel) bool {
	zone, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return timezone.IsCataloged(zone)
}

// registerZoneValidation accepts any id the bundled tz database can load.
func registerZoneValidation(field val.FieldLevel) bool {
	zone, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.LoadLocation(zone)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request body.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("catalogzone", registerCatalogZoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("tzid", registerZoneValidation)
	if err != nil {
		panic(err)
	}
}

// Validate decodes a JSON document from r into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
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
