package inventory

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el procesador de salidas.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}
