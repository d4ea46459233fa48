package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100000
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report query parameter names rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// resolvePage validates skip/limit and fills in defaults.
func resolvePage(p PageParams) (repository.Page, error) {
	if err := validate.Struct(p); err != nil {
		return repository.Page{}, toInvalidInput(err)
	}
	page := repository.Page{Limit: DefaultLimit}
	if p.Skip != nil {
		page.Offset = *p.Skip
	}
	if p.Limit != nil {
		page.Limit = *p.Limit
	}
	return page, nil
}

func toInvalidInput(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := make([]FieldError, 0, len(verrs))
	for _, v := range verrs {
		fe = append(fe, FieldError{Field: v.Field(), Message: message(v)})
	}
	return NewInvalidInputError(fe)
}

func message(v validator.FieldError) string {
	switch v.Tag() {
	case "gte":
		return fmt.Sprintf("must be >= %s", v.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", v.Param())
	default:
		return "is invalid"
	}
}
