package records

import (
	"context"
	"errors"

	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

var _ repository.RegistryRepository = (*RegistryRepo)(nil)

// RegistryRepo guarda los cadastros en un único registro con clave fija.
type RegistryRepo struct {
	c collection[entity.Registry]
}

// NewRegistryRepository construye el repositorio.
func NewRegistryRepository(store repository.RecordStore) *RegistryRepo {
	return &RegistryRepo{c: collection[entity.Registry]{
		store: store,
		kind:  entity.RecordRegistry,
		key:   func(*entity.Registry) string { return entity.RegistryRecordKey },
	}}
}

// Get devuelve los cadastros guardados o los valores por defecto.
func (r *RegistryRepo) Get(ctx context.Context) (*entity.Registry, error) {
	reg, err := r.c.get(ctx, entity.RegistryRecordKey)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return entity.DefaultRegistry(), nil
	}
	return reg, nil
}

// Save actualiza el registro de cadastros o lo crea si todavía no existe.
func (r *RegistryRepo) Save(ctx context.Context, registry *entity.Registry) error {
	err := r.c.update(ctx, registry)
	if errors.Is(err, domain.ErrNotFound) {
		return r.c.create(ctx, registry)
	}
	return err
}
