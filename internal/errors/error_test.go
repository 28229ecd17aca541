package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFromStore(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedKind Kind
	}{
		{
			name:         "no rows maps to not found",
			err:          pgx.ErrNoRows,
			expectedKind: KindNotFound,
		},
		{
			name:         "foreign key violation maps to constraint",
			err:          &pgconn.PgError{Code: "23503"},
			expectedKind: KindConstraint,
		},
		{
			name:         "unique violation maps to constraint",
			err:          &pgconn.PgError{Code: "23505"},
			expectedKind: KindConstraint,
		},
		{
			name:         "deadline exceeded maps to transient",
			err:          context.DeadlineExceeded,
			expectedKind: KindTransient,
		},
		{
			name:         "canceled maps to transient",
			err:          context.Canceled,
			expectedKind: KindTransient,
		},
		{
			name:         "anything else maps to internal",
			err:          fmt.Errorf("boom"),
			expectedKind: KindInternal,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := FromStore(test.err, "failed")
			assert.Equal(t, test.expectedKind, KindOf(err))
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestFromStoreNil(t *testing.T) {
	assert.NoError(t, FromStore(nil, "failed"))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "validation maps to 422",
			err:      New(KindValidation, "invalid"),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "not found maps to 404",
			err:      New(KindNotFound, "missing"),
			expected: http.StatusNotFound,
		},
		{
			name:     "constraint maps to 503",
			err:      New(KindConstraint, "conflict"),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "transient maps to 503",
			err:      New(KindTransient, "unreachable"),
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "wrapped typed error keeps its status",
			err:      fmt.Errorf("failed finding customer with error=%w", New(KindNotFound, "missing")),
			expected: http.StatusNotFound,
		},
		{
			name:     "untyped maps to 500",
			err:      fmt.Errorf("boom"),
			expected: http.StatusInternalServerError,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, HTTPStatus(test.err))
		})
	}
}
