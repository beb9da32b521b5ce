package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidPayload     = errors.New("payload inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrStorage            = errors.New("error de almacenamiento")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
