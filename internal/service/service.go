// Package service holds the read use cases served by the HTTP layer.
// Each operation validates its input, runs inside one read-only transaction and returns projected documents.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/fantasy-stats-service/internal/projection"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error, or nil when fe is empty.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	var ie *invalidInputError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}

// PageParams carries raw skip/limit values; nil means the client omitted them.
type PageParams struct {
	Skip  *int `json:"skip" validate:"omitnil,gte=0"`
	Limit *int `json:"limit" validate:"omitnil,gte=0,lte=100000"`
}

type PlayerQuery struct {
	PageParams
	FirstName *string
	LastName  *string
}

type PerformanceQuery struct {
	PageParams
	MinLastChangedDate *time.Time
}

type TeamQuery struct {
	PageParams
	TeamName *string
	LeagueID *int64
}

type PlayerService interface {
	ListPlayers(ctx context.Context, q PlayerQuery) ([]projection.Player, error)
	GetPlayer(ctx context.Context, id int64) (projection.Player, error)
}

type PerformanceService interface {
	ListPerformances(ctx context.Context, q PerformanceQuery) ([]projection.Performance, error)
}

type LeagueService interface {
	ListLeagues(ctx context.Context, p PageParams) ([]projection.League, error)
	GetLeague(ctx context.Context, id int64) (projection.League, error)
}

type TeamService interface {
	ListTeams(ctx context.Context, q TeamQuery) ([]projection.Team, error)
	GetTeam(ctx context.Context, id int64) (projection.Team, error)
}

type WeekService interface {
	ListWeeks(ctx context.Context, p PageParams) ([]projection.Week, error)
	GetWeek(ctx context.Context, weekNumber string) (projection.Week, error)
}

// CountsService reports entity totals. All four counts come from one snapshot.
type CountsService interface {
	GetCounts(ctx context.Context) (projection.Counts, error)
}
