package repository

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para transacciones financieras.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	List(ctx context.Context) ([]*entity.Transaction, error)
	Delete(ctx context.Context, id string) error
}
