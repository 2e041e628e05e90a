package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mativale/boda-api/internal/dto"
)

// user-facing messages, always in Spanish
const (
	MsgInvalidData      = "Datos inválidos"
	MsgServerMisconfig  = "Configuración del servidor incompleta"
	MsgWriteFailed      = "Error al guardar la confirmación. Por favor, intenta nuevamente."
	MsgInternalError    = "Error interno del servidor"
	MsgMethodNotAllowed = "Método no permitido"
	MsgRsvpRegistered   = "Confirmación registrada exitosamente"
)

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "min":
		return "Debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "No puede exceder " + fe.Param() + " caracteres"
	case "nombre":
		return "Solo puede contener letras"
	case "celular":
		return "Número de celular inválido"
	}

	return "Valor inválido"
}

// fieldPath turns a validator namespace like
// "RsvpSubmission.mainAttendee.name" into "mainAttendee.name". Segment
// names are already json tag names via RegisterTagNameFunc.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationErrors(ve validator.ValidationErrors) []dto.FieldError {
	out := make([]dto.FieldError, len(ve))
	for i, fe := range ve {
		out[i] = dto.FieldError{
			Path:    fieldPath(fe),
			Message: getErrorMsg(fe),
		}
	}
	return out
}
