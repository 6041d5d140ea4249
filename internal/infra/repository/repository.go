package repository

import (
	"errors"

	"schnittwerk-api/internal/infra"
	"schnittwerk-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// errNoRowsUpdated marks an UPDATE that matched nothing; wrapQueryErr turns
// it into a NOT_FOUND repository error.
var errNoRowsUpdated = pgx.ErrNoRows

// wrapQueryErr classifies a pgx error into a repository error kind so the
// usecase layer never inspects driver errors directly.
func wrapQueryErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}

	return infra.WrapRepoErr(msg, err)
}
