package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	boom := errors.New("boom")
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"not found passes", repository.ErrNotFound, repository.ErrNotFound},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), repository.ErrUnavailable},
		{"canceled", context.Canceled, repository.ErrUnavailable},
		{"query canceled", &pgconn.PgError{Code: pgerrcode.QueryCanceled}, repository.ErrUnavailable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, repository.ErrUnavailable},
		{"admin shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, repository.ErrUnavailable},
		{"undefined table passes", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, nil},
		{"unknown passes", boom, boom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := repository.MapPgError(tc.in)
			switch {
			case tc.in == nil:
				assert.NoError(t, got)
			case tc.want == nil:
				assert.Equal(t, tc.in, got)
				assert.False(t, errors.Is(got, repository.ErrUnavailable))
			default:
				assert.ErrorIs(t, got, tc.want)
			}
		})
	}
}
