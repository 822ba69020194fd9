// Package records implementa los repositorios tipados sobre un RecordStore:
// cada entidad se guarda como payload JSON etiquetado con su tipo y su ID como clave.
package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

// collection codifica/decodifica entidades de un mismo tipo de registro.
type collection[T any] struct {
	store repository.RecordStore
	kind  string
	key   func(*T) string
}

func (c collection[T]) encode(v *T) (*entity.Record, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codificar %s: %w", c.kind, err)
	}
	return &entity.Record{Kind: c.kind, Key: c.key(v), Payload: payload}, nil
}

func (c collection[T]) decode(rec *entity.Record) (*T, error) {
	var v T
	if err := json.Unmarshal(rec.Payload, &v); err != nil {
		return nil, fmt.Errorf("decodificar %s #%d: %w", c.kind, rec.ID, err)
	}
	return &v, nil
}

func (c collection[T]) create(ctx context.Context, v *T) error {
	rec, err := c.encode(v)
	if err != nil {
		return err
	}
	return c.store.Append(ctx, rec)
}

func (c collection[T]) update(ctx context.Context, v *T) error {
	rec, err := c.encode(v)
	if err != nil {
		return err
	}
	return c.store.Replace(ctx, rec)
}

func (c collection[T]) get(ctx context.Context, key string) (*T, error) {
	rec, err := c.store.Find(ctx, c.kind, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return c.decode(rec)
}

func (c collection[T]) list(ctx context.Context) ([]*T, error) {
	recs, err := c.store.ListByKind(ctx, c.kind)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(recs))
	for _, rec := range recs {
		v, err := c.decode(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c collection[T]) delete(ctx context.Context, key string) error {
	return c.store.Remove(ctx, c.kind, key)
}

// NewRepositories construye todos los repositorios sobre el mismo almacén (pool o transacción).
func NewRepositories(store repository.RecordStore) repository.Repositories {
	return repository.Repositories{
		Records:      store,
		Transactions: NewTransactionRepository(store),
		Products:     NewProductRepository(store),
		Movements:    NewOutboundMovementRepository(store),
		Registry:     NewRegistryRepository(store),
	}
}
