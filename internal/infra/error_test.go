//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []RepositoryErrorKind
		want RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, want: KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: KindConflict},
		{name: "other pg error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: KindDBFailure},
		{name: "plain error", err: errors.New("boom"), want: KindDBFailure},
		{name: "explicit kind wins", err: errors.New("zero rows"), kind: []RepositoryErrorKind{KindConflict}, want: KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestWrapRepoErrWithoutCause(t *testing.T) {
	err := WrapRepoErr("nothing to update", nil, KindNotFound)

	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "NOT_FOUND: nothing to update", err.Error())
}
