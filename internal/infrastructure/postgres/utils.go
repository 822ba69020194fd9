package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/gestfinance-api/internal/domain"
)

// isConnectionFailure verifica si el error indica que el servidor no está disponible:
// clase 08 (connection exception), 57P01-57P03 (shutdown) o fallo de conexión del driver.
func isConnectionFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") ||
			pgErr.Code == "57P01" || pgErr.Code == "57P02" || pgErr.Code == "57P03"
	}
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr) || pgconn.SafeToRetry(err)
}

// wrapErr agrega contexto y marca con ErrStorageUnavailable los fallos de conexión.
func wrapErr(op string, err error) error {
	if isConnectionFailure(err) {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
