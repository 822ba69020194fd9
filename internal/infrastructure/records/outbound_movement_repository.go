package records

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

var _ repository.OutboundMovementRepository = (*OutboundMovementRepo)(nil)

// OutboundMovementRepo implementación de OutboundMovementRepository sobre registros "saida".
type OutboundMovementRepo struct {
	c collection[entity.OutboundMovement]
}

// NewOutboundMovementRepository construye el repositorio.
func NewOutboundMovementRepository(store repository.RecordStore) *OutboundMovementRepo {
	return &OutboundMovementRepo{c: collection[entity.OutboundMovement]{
		store: store,
		kind:  entity.RecordOutbound,
		key:   func(m *entity.OutboundMovement) string { return m.ID },
	}}
}

func (r *OutboundMovementRepo) Create(ctx context.Context, movement *entity.OutboundMovement) error {
	return r.c.create(ctx, movement)
}

func (r *OutboundMovementRepo) GetByID(ctx context.Context, id string) (*entity.OutboundMovement, error) {
	return r.c.get(ctx, id)
}

func (r *OutboundMovementRepo) Update(ctx context.Context, movement *entity.OutboundMovement) error {
	return r.c.update(ctx, movement)
}

func (r *OutboundMovementRepo) List(ctx context.Context) ([]*entity.OutboundMovement, error) {
	return r.c.list(ctx)
}

func (r *OutboundMovementRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
