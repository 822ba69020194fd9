package repository

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// RegistryRepository persiste el único registro de cadastros.
// Get devuelve entity.DefaultRegistry() si todavía no se guardó nada.
type RegistryRepository interface {
	Get(ctx context.Context) (*entity.Registry, error)
	Save(ctx context.Context, registry *entity.Registry) error
}
