// Package validation checks entity structs against their `validate` tags
// and reports failures as errs.KindInvalidArgument, naming fields by their
// database column.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Leganyst/restaurant-staff/internal/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(columnName)
	return v
}

// columnName reports a field by its gorm column so messages match the
// names used in predicates and updates.
func columnName(f reflect.StructField) string {
	for _, part := range strings.Split(f.Tag.Get("gorm"), ";") {
		if name, ok := strings.CutPrefix(part, "column:"); ok {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

// Struct validates v, an entity stored in table.
func Struct(table string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.InvalidArgument(table, err, "validation failed")
	}

	fields := make([]string, 0, len(verrs))
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
		msgs = append(msgs, fe.Field()+" "+describe(fe))
	}
	return errs.InvalidArgument(table, nil, strings.Join(msgs, "; "), fields...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD form"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
}
