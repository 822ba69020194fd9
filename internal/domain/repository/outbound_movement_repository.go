package repository

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// OutboundMovementRepository define el puerto de persistencia para salidas de producto.
type OutboundMovementRepository interface {
	Create(ctx context.Context, movement *entity.OutboundMovement) error
	GetByID(ctx context.Context, id string) (*entity.OutboundMovement, error)
	Update(ctx context.Context, movement *entity.OutboundMovement) error
	List(ctx context.Context) ([]*entity.OutboundMovement, error)
	Delete(ctx context.Context, id string) error
}
