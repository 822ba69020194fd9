package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

var _ repository.RecordStore = (*RecordStore)(nil)

// RecordStore implementación de RecordStore sobre PostgreSQL (usable con pool o tx).
type RecordStore struct {
	q Querier
}

// NewRecordStore construye el adaptador. Pasar pool o tx (Querier).
func NewRecordStore(q Querier) *RecordStore {
	return &RecordStore{q: q}
}

func (s *RecordStore) Append(ctx context.Context, rec *entity.Record) error {
	query := `
		INSERT INTO registros (tipo, chave, dados, data_modificacao)
		VALUES ($1, $2, $3, now())
		RETURNING id, data_modificacao`
	err := s.q.QueryRow(ctx, query, rec.Kind, rec.Key, []byte(rec.Payload)).Scan(&rec.ID, &rec.ModifiedAt)
	if err != nil {
		return wrapErr("insertar registro "+rec.Kind, err)
	}
	return nil
}

func (s *RecordStore) Replace(ctx context.Context, rec *entity.Record) error {
	cmd, err := s.q.Exec(ctx,
		`UPDATE registros SET dados = $3, data_modificacao = now() WHERE tipo = $1 AND chave = $2`,
		rec.Kind, rec.Key, []byte(rec.Payload),
	)
	if err != nil {
		return wrapErr("actualizar registro "+rec.Kind, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *RecordStore) Find(ctx context.Context, kind, key string) (*entity.Record, error) {
	query := `
		SELECT id, tipo, chave, dados, data_modificacao
		FROM registros WHERE tipo = $1 AND chave = $2
		ORDER BY id DESC LIMIT 1`
	rec, err := scanRecord(s.q.QueryRow(ctx, query, kind, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("buscar registro "+kind, err)
	}
	return rec, nil
}

func (s *RecordStore) ListByKind(ctx context.Context, kind string) ([]*entity.Record, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, tipo, chave, dados, data_modificacao FROM registros WHERE tipo = $1 ORDER BY id`, kind)
	if err != nil {
		return nil, wrapErr("listar registros "+kind, err)
	}
	return collectRecords(rows)
}

func (s *RecordStore) ListAll(ctx context.Context) ([]*entity.Record, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, tipo, chave, dados, data_modificacao FROM registros ORDER BY id`)
	if err != nil {
		return nil, wrapErr("listar registros", err)
	}
	return collectRecords(rows)
}

func (s *RecordStore) Remove(ctx context.Context, kind, key string) error {
	cmd, err := s.q.Exec(ctx, `DELETE FROM registros WHERE tipo = $1 AND chave = $2`, kind, key)
	if err != nil {
		return wrapErr("eliminar registro "+kind, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *RecordStore) Clear(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, `DELETE FROM registros`); err != nil {
		return wrapErr("limpiar registros", err)
	}
	return nil
}

func scanRecord(row pgx.Row) (*entity.Record, error) {
	var rec entity.Record
	var payload []byte
	if err := row.Scan(&rec.ID, &rec.Kind, &rec.Key, &payload, &rec.ModifiedAt); err != nil {
		return nil, err
	}
	rec.Payload = payload
	return &rec, nil
}

func collectRecords(rows pgx.Rows) ([]*entity.Record, error) {
	defer rows.Close()
	var list []*entity.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, wrapErr("scan registro", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
