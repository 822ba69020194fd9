package records

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre registros "transacao".
type TransactionRepo struct {
	c collection[entity.Transaction]
}

// NewTransactionRepository construye el repositorio.
func NewTransactionRepository(store repository.RecordStore) *TransactionRepo {
	return &TransactionRepo{c: collection[entity.Transaction]{
		store: store,
		kind:  entity.RecordTransaction,
		key:   func(t *entity.Transaction) string { return t.ID },
	}}
}

func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.c.create(ctx, tx)
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.c.get(ctx, id)
}

func (r *TransactionRepo) Update(ctx context.Context, tx *entity.Transaction) error {
	return r.c.update(ctx, tx)
}

func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	return r.c.list(ctx)
}

func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
