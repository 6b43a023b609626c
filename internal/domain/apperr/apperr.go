// Package apperr define los cuatro tipos de error que cruzan los módulos:
// not-found, validación, conflicto y fatal. Los handlers los traducen a status HTTP.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// NotFound: la entidad buscada por ID no existe.
type NotFound struct {
	Entity string
	ID     int64
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// Validation: el registro enviado está malformado por sí solo,
// independiente del resto del sistema.
type Validation struct {
	Summary    string
	Violations []string
}

func (e *Validation) Error() string {
	return e.Summary + ": " + strings.Join(e.Violations, "; ")
}

// Conflict: el registro está bien formado pero contradice
// el estado relacional existente (sexo del padre, fechas, referencias).
type Conflict struct {
	Summary    string
	Violations []string
}

func (e *Conflict) Error() string {
	return e.Summary + ": " + strings.Join(e.Violations, "; ")
}

// Fatal: el store devolvió datos que violan invariantes que el core asume
// ya garantizadas (referencia persistida que no resuelve). No es culpa del
// caller: se loguea en error y sale como 500 genérico.
type Fatal struct {
	Msg string
	Err error
}

func (e *Fatal) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Fatal) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var t *NotFound
	return errors.As(err, &t)
}

func IsValidation(err error) bool {
	var t *Validation
	return errors.As(err, &t)
}

func IsConflict(err error) bool {
	var t *Conflict
	return errors.As(err, &t)
}

func IsFatal(err error) bool {
	var t *Fatal
	return errors.As(err, &t)
}
