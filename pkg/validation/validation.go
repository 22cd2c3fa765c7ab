package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia única del validador (es thread-safe y cachea metadata de structs).
var validate = validator.New()

// Struct valida un DTO según sus tags `validate` y devuelve los mensajes por campo.
// Retorna nil si el struct es válido.
func Struct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

// Var valida un valor suelto contra una regla (ej. "required,gte=0").
func Var(field string, value interface{}, rule string) []string {
	if err := validate.Var(value, rule); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []string{err.Error()}
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: regla '%s' no cumplida", field, fe.Tag()))
		}
		return msgs
	}
	return nil
}

func message(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es requerido", field)
	case "min":
		return fmt.Sprintf("el campo %s debe tener al menos %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("el campo %s no puede exceder %s caracteres", field, fe.Param())
	case "email":
		return fmt.Sprintf("el campo %s no es un email válido", field)
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("el campo %s debe ser mayor o igual a %s", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("el campo %s debe ser un código hexadecimal válido", field)
	case "len":
		return fmt.Sprintf("el campo %s debe tener %s caracteres", field, fe.Param())
	default:
		return fmt.Sprintf("el campo %s no es válido (regla %s)", field, fe.Tag())
	}
}
