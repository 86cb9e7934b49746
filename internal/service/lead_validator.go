package service

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/thunder-org/thunder-site/internal/models"
	appErrors "github.com/thunder-org/thunder-site/pkg/errors"
)

// NewLeadValidator returns a validator that knows the closed option sets of the
// lead form and reports fields by their JSON names.
func NewLeadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.EventTypeOptions, fl.Field().String())
	})
	_ = v.RegisterValidation("budget", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.BudgetOptions, fl.Field().String())
	})
	return v
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.ErrValidation.With(err, "invalid lead form")
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is not one of the offered options", fe.Field()))
		}
	}
	return appErrors.ErrValidation.With(err, strings.Join(msgs, "; "))
}
