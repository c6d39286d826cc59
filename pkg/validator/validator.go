package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " é obrigatório"
			case "email":
				errors[field] = field + " deve ser um email válido"
			case "min":
				errors[field] = field + " deve ter pelo menos " + e.Param() + " caracteres"
			case "max":
				errors[field] = field + " deve ter no máximo " + e.Param() + " caracteres"
			case "oneof":
				errors[field] = field + " deve ser um de: " + e.Param()
			case "datetime":
				errors[field] = field + " deve seguir o formato " + e.Param()
			default:
				errors[field] = field + " é inválido"
			}
		}
	}

	return errors
}
