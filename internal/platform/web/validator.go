package web

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var clockTimePattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

// FieldError is a single per-field validation failure reported to clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator adapts go-playground/validator to echo's Validator interface,
// turning tag failures into a 422 application error with per-field details.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names as their json tag so details match request bodies.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return clockTimePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return ValidationDetails("Erro de validação", details)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "Email inválido"
	case "uuid":
		return "deve ser um UUID válido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("deve ter pelo menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("deve ser menor ou igual a %s", fe.Param())
	case "clocktime":
		return "Formato de hora inválido (use HH:MM ou HH:MM:SS)"
	case "datetime":
		return "Formato de data/hora inválido"
	default:
		return fmt.Sprintf("falhou na validação %q", fe.Tag())
	}
}
