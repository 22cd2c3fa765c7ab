package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los traducen
// al sobre de respuesta con el status correspondiente.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserInactive       = errors.New("usuario inactivo")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrHasDependents      = errors.New("el recurso tiene dependientes asociados")
	ErrParentNotActive    = errors.New("la referencia padre no existe o no está activa")
	ErrHierarchyMismatch  = errors.New("la subcategoría no pertenece a la categoría indicada")
	ErrStockNotTracked    = errors.New("el producto no maneja control de stock")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
