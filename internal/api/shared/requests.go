package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse. Field names in validation errors come
// from the json tags so clients see the wire names, not Go identifiers.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ErrUnknownField is returned by DecodeJSON when the payload carries a field
// no schema declares. Unknown fields are rejected, not ignored.
var ErrUnknownField = errors.New("unknown field in request body")

// DecodeJSON decodes the request body into the given struct.
// Unknown fields and trailing garbage are both rejected.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		return err
	}

	// A body like `{"name":"a"}{"name":"b"}` is malformed, not two requests.
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}

	return nil
}

// ValidateRequest validates the given struct using the validator package.
// On failure it returns a validator.ValidationErrors which the API layer
// renders as a per-field error list.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// FieldErrorsFromValidation converts validator failures into the structured
// per-field list carried by error responses.
func FieldErrorsFromValidation(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: validationTagMessage(fe.Tag()),
		})
	}
	return fields
}

// validationTagMessage maps validation tags to user-friendly messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "gt":
		return "must be positive"
	default:
		return "is invalid"
	}
}
