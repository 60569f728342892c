package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUnknownLocation = errors.New("sede desconocida")
	ErrInvalidInput    = errors.New("entrada inválida")
)
