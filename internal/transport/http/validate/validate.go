package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/baechuer/visit-service/internal/domain"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// Report fields by their JSON name.
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = val.RegisterValidation("visit_kind", func(fl validator.FieldLevel) bool {
		return domain.Kind(fl.Field().String()).Valid()
	})
	_ = val.RegisterValidation("visit_gender", func(fl validator.FieldLevel) bool {
		return domain.Gender(fl.Field().String()).Valid()
	})
	_ = val.RegisterValidation("visit_age", func(fl validator.FieldLevel) bool {
		return domain.AgeBracket(fl.Field().String()).Valid()
	})
	_ = val.RegisterValidation("post_code", func(fl validator.FieldLevel) bool {
		return domain.ValidPostCode(fl.Field().String())
	})
	return val
}

func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// Struct runs the `validate` tags of req and reports every failing field in
// the error meta.
func Struct(req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return domain.ErrValidation(err.Error())
	}
	meta := make(map[string]string, len(ves))
	for _, fe := range ves {
		meta[fieldPath(fe)] = formatFieldError(fe)
	}
	return domain.ErrValidationMeta("invalid request body", meta)
}

// fieldPath drops the root struct name: "CreateEventReq.kind" -> "kind".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "visit_kind":
		return "must be one of: " + join(domain.Kinds)
	case "visit_gender":
		return "must be one of: " + join(domain.Genders)
	case "visit_age":
		return "must be one of: " + join(domain.AgeBrackets)
	case "post_code":
		return "must be 5 digits"
	case "max":
		return fmt.Sprintf("must have at most %s items", fe.Param())
	default:
		return "is invalid"
	}
}

func join[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
