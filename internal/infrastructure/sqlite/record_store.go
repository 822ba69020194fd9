package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

var _ repository.RecordStore = (*RecordStore)(nil)

// RecordStore implementación de RecordStore sobre gorm (usable con la DB o con una tx).
type RecordStore struct {
	db *gorm.DB
}

// NewRecordStore construye el adaptador. Pasar la DB o una transacción.
func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) Append(ctx context.Context, rec *entity.Record) error {
	m := recordModel{
		Kind:       rec.Kind,
		Key:        rec.Key,
		Payload:    datatypes.JSON(rec.Payload),
		ModifiedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insertar registro %s: %w", rec.Kind, err)
	}
	rec.ID = m.ID
	rec.ModifiedAt = m.ModifiedAt
	return nil
}

func (s *RecordStore) Replace(ctx context.Context, rec *entity.Record) error {
	now := time.Now().UTC()
	res := s.db.WithContext(ctx).
		Model(&recordModel{}).
		Where("tipo = ? AND chave = ?", rec.Kind, rec.Key).
		Updates(map[string]interface{}{
			"dados":            datatypes.JSON(rec.Payload),
			"data_modificacao": now,
		})
	if res.Error != nil {
		return fmt.Errorf("actualizar registro %s: %w", rec.Kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	rec.ModifiedAt = now
	return nil
}

func (s *RecordStore) Find(ctx context.Context, kind, key string) (*entity.Record, error) {
	var m recordModel
	err := s.db.WithContext(ctx).
		Where("tipo = ? AND chave = ?", kind, key).
		Order("id DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar registro %s: %w", kind, err)
	}
	return toEntity(m), nil
}

func (s *RecordStore) ListByKind(ctx context.Context, kind string) ([]*entity.Record, error) {
	var ms []recordModel
	if err := s.db.WithContext(ctx).Where("tipo = ?", kind).Order("id").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("listar registros %s: %w", kind, err)
	}
	return toEntities(ms), nil
}

func (s *RecordStore) ListAll(ctx context.Context) ([]*entity.Record, error) {
	var ms []recordModel
	if err := s.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("listar registros: %w", err)
	}
	return toEntities(ms), nil
}

func (s *RecordStore) Remove(ctx context.Context, kind, key string) error {
	res := s.db.WithContext(ctx).Where("tipo = ? AND chave = ?", kind, key).Delete(&recordModel{})
	if res.Error != nil {
		return fmt.Errorf("eliminar registro %s: %w", kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *RecordStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&recordModel{}).Error; err != nil {
		return fmt.Errorf("limpiar registros: %w", err)
	}
	return nil
}

func toEntity(m recordModel) *entity.Record {
	return &entity.Record{
		ID:         m.ID,
		Kind:       m.Kind,
		Key:        m.Key,
		Payload:    json.RawMessage(m.Payload),
		ModifiedAt: m.ModifiedAt,
	}
}

func toEntities(ms []recordModel) []*entity.Record {
	out := make([]*entity.Record, 0, len(ms))
	for _, m := range ms {
		out = append(out, toEntity(m))
	}
	return out
}
