package apierror

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE de PostgreSQL que el envelope reconoce.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02" // ej. UUID malformado en un cast
)

// categorizePostgres clasifica errores de la capa de persistencia: fila
// inexistente y violaciones de constraint. Funciona a través de wrapping %w.
func categorizePostgres(err error) (Category, bool) {
	if errors.Is(err, pgx.ErrNoRows) {
		return CategoryNotFound, true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return CategoryBadRequest, true
		case pgForeignKeyViolation, pgInvalidTextRepr:
			return CategoryUnknownObject, true
		}
	}
	return "", false
}
