package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrMissingRegistryEntry   = errors.New("descripción no registrada")
	ErrInvalidBackupStructure = errors.New("archivo de backup inválido: estructura incorrecta")
	ErrStorageUnavailable     = errors.New("almacén de registros no disponible")
)

// MissingRegistryEntryError indica que el nombre de un producto no existe como descripción
// en los cadastros; se compara con errors.Is contra ErrMissingRegistryEntry.
type MissingRegistryEntryError struct {
	ProductName string
}

func (e *MissingRegistryEntryError) Error() string {
	return fmt.Sprintf("no hay descripción registrada con el nombre %q", e.ProductName)
}

func (e *MissingRegistryEntryError) Unwrap() error { return ErrMissingRegistryEntry }
