package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound: el registro objetivo no existe cuando la operación lo requiere.
var ErrNotFound = errors.New("recurso no encontrado")

// ValidationError entrada malformada o semánticamente inválida (culpa del caller,
// recuperable corrigiendo el payload).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf construye un ValidationError con formato.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError la operación es válida en sí misma pero choca con una restricción
// de unicidad o una guarda referencial existente.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflictf construye un ConflictError con formato.
func Conflictf(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation indica si err es un ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict indica si err es un ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
