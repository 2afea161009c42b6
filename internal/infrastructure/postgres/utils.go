package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUndefinedTable verifica si un error indica que la tabla no existe (42P01).
func isUndefinedTable(err error) bool {
	return hasCode(err, "42P01")
}

// isUndefinedColumn verifica si falta alguna columna esperada (42703).
func isUndefinedColumn(err error) bool {
	return hasCode(err, "42703")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
