package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestfinance-api/internal/domain"
)

func TestWrapErr_MarcaFallosDeConexion(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"connection exception", &pgconn.PgError{Code: "08006"}, true},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapErr("listar registros", tt.err)
			assert.Equal(t, tt.unavailable, errors.Is(err, domain.ErrStorageUnavailable))
			assert.Contains(t, err.Error(), "listar registros")
		})
	}
}
