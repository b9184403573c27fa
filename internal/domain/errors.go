package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrValidation   = errors.New("validación fallida")
	ErrParse        = errors.New("datos persistidos ilegibles")
)

// ValidationError error recuperable que se muestra al usuario; no muta estado.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is permite errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ParseError una colección persistida no se pudo decodificar.
// Se recupera localmente descartando esa colección; nunca es fatal.
type ParseError struct {
	Collection string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decodificar %s: %v", e.Collection, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrParse).
func (e *ParseError) Is(target error) bool { return target == ErrParse }
