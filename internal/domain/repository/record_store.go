package repository

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// RecordStore define el puerto del almacén de registros tipados (DIP).
// Implementaciones: sqlite (gorm) y postgres (pgx). Todas las escrituras usan actualización en el lugar.
type RecordStore interface {
	// Append inserta un registro nuevo; asigna ID y ModifiedAt.
	Append(ctx context.Context, rec *entity.Record) error
	// Replace actualiza el payload del registro (Kind, Key); domain.ErrNotFound si no existe.
	Replace(ctx context.Context, rec *entity.Record) error
	// Find devuelve el registro (Kind, Key) o nil si no existe.
	Find(ctx context.Context, kind, key string) (*entity.Record, error)
	ListByKind(ctx context.Context, kind string) ([]*entity.Record, error)
	ListAll(ctx context.Context) ([]*entity.Record, error)
	// Remove elimina el registro (Kind, Key); domain.ErrNotFound si no existe.
	Remove(ctx context.Context, kind, key string) error
	// Clear borra todos los registros.
	Clear(ctx context.Context) error
}
