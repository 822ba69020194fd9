package records

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre registros "produto".
type ProductRepo struct {
	c collection[entity.Product]
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store repository.RecordStore) *ProductRepo {
	return &ProductRepo{c: collection[entity.Product]{
		store: store,
		kind:  entity.RecordProduct,
		key:   func(p *entity.Product) string { return p.ID },
	}}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return r.c.create(ctx, product)
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.c.get(ctx, id)
}

// GetByCode busca por código leyendo todos los productos (lectura completa y filtro en memoria).
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	list, err := r.c.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return r.c.update(ctx, product)
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.c.list(ctx)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
