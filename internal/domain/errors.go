package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrEntryNotFound      = errors.New("registro de stock no encontrado")
	ErrCategoryNotFound   = errors.New("categoría no encontrada")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidChange      = errors.New("el cambio de stock no puede ser cero")
	ErrInsufficientStock  = errors.New("el stock no puede quedar por debajo de cero")
	ErrCategoryInUse      = errors.New("la categoría tiene productos asociados")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
