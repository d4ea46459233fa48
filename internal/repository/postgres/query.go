package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
)

// selectQuery composes a filtered, ordered, paged SELECT over a single table.
// Predicates use named args, so the order they are added in never changes which value binds where.
type selectQuery struct {
	from    string
	where   []string
	args    pgx.NamedArgs
	orderBy string
}

func newSelect(from, orderBy string) *selectQuery {
	return &selectQuery{from: from, orderBy: orderBy, args: pgx.NamedArgs{}}
}

// whereEq adds "column = @column" when v is set. A nil filter value adds nothing.
func whereEq[T any](s *selectQuery, column string, v *T) *selectQuery {
	if v != nil {
		s.where = append(s.where, column+" = @"+column)
		s.args[column] = *v
	}
	return s
}

// whereGte adds an inclusive lower bound "column >= @min_column" when v is set.
func whereGte[T any](s *selectQuery, column string, v *T) *selectQuery {
	if v != nil {
		s.where = append(s.where, column+" >= @min_"+column)
		s.args["min_"+column] = *v
	}
	return s
}

func (s *selectQuery) page(p repository.Page) *selectQuery {
	s.args["limit"] = p.Limit
	s.args["offset"] = p.Offset
	return s
}

func (s *selectQuery) sql() string {
	var b strings.Builder
	b.WriteString(s.from)
	if len(s.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(s.where, " AND "))
	}
	b.WriteString(" ORDER BY ")
	b.WriteString(s.orderBy)
	if _, ok := s.args["limit"]; ok {
		b.WriteString(" LIMIT @limit OFFSET @offset")
	}
	return b.String()
}

// collect scans every row into T by column name and maps driver errors.
func collect[T any](rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// collectOne scans a single row, turning pgx.ErrNoRows into repository.ErrNotFound.
func collectOne[T any](rows pgx.Rows, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, repository.MapPgError(err)
	}
	out, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, repository.ErrNotFound
		}
		return zero, repository.MapPgError(err)
	}
	return out, nil
}
