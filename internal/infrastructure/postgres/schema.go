package postgres

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS registros (
	id               BIGSERIAL PRIMARY KEY,
	tipo             VARCHAR(20) NOT NULL,
	chave            VARCHAR(64) NOT NULL,
	dados            JSONB NOT NULL,
	data_modificacao TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_registros_tipo_chave ON registros (tipo, chave);
CREATE INDEX IF NOT EXISTS idx_registros_data_modificacao ON registros (data_modificacao);
`

// EnsureSchema crea la tabla registros si no existe (idempotente).
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema registros: %w", err)
	}
	return nil
}
