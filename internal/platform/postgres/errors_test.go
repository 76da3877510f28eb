package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/devhussain7/medium-api/internal/store"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "test error",
		ConstraintName: "users_username_key",
		ColumnName:     "username",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil stays nil",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows maps to not found",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "wrapped no rows maps to not found",
			err:     fmt.Errorf("query user: %w", sql.ErrNoRows),
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation maps to duplicate",
			err:     pgError(uniqueViolationCode),
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "foreign key violation maps to invalid entity",
			err:     pgError(foreignKeyViolationCode),
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "not null violation maps to invalid entity",
			err:     pgError(notNullViolationCode),
			wantErr: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}

	t.Run("unrecognized errors pass through unchanged", func(t *testing.T) {
		t.Parallel()

		original := errors.New("connection reset")
		assert.Equal(t, original, MapError(original))
	})

	t.Run("other postgres codes pass through unchanged", func(t *testing.T) {
		t.Parallel()

		// 57014 is query_canceled; it is not a store-level condition.
		err := pgError("57014")
		assert.Equal(t, error(err), MapError(err))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(pgError(uniqueViolationCode)))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", pgError(uniqueViolationCode))))
	assert.False(t, IsUniqueViolation(pgError(foreignKeyViolationCode)))
	assert.False(t, IsUniqueViolation(errors.New("some error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForeignKeyViolation(pgError(foreignKeyViolationCode)))
	assert.False(t, IsForeignKeyViolation(pgError(uniqueViolationCode)))
	assert.False(t, IsForeignKeyViolation(nil))
}
