package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNewUserStore(t *testing.T) {
	t.Run("nil db panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewUserStore(nil, nil)
		})
	})

	t.Run("nil logger uses default", func(t *testing.T) {
		s := NewUserStore(&mockDBTX{}, nil)
		assert.NotNil(t, s.logger)
	})
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		fn   func(error) bool
		want bool
	}{
		{
			name: "unique violation detected",
			err:  &pgconn.PgError{Code: uniqueViolationCode},
			fn:   isUniqueViolation,
			want: true,
		},
		{
			name: "foreign key violation is not unique violation",
			err:  &pgconn.PgError{Code: foreignKeyViolationCode},
			fn:   isUniqueViolation,
			want: false,
		},
		{
			name: "foreign key violation detected",
			err:  &pgconn.PgError{Code: foreignKeyViolationCode},
			fn:   isForeignKeyViolation,
			want: true,
		},
		{
			name: "nil error",
			err:  nil,
			fn:   isUniqueViolation,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.err))
		})
	}
}
