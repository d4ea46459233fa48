package repository

import (
	"context"

	"github.com/maxviazov/fantasy-stats-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager scopes a read operation to one pooled connection and one snapshot.
// The connection is released on every exit path, including errors and panics.
type TxManager interface {
	WithinReadTx(ctx context.Context, fn TxFunc) error
}

// PlayerRepository reads players and their weekly performances.
type PlayerRepository interface {
	List(ctx context.Context, f PlayerFilter, p Page) ([]model.Player, error)
	GetByID(ctx context.Context, id int64) (model.Player, error)
	// PerformancesFor loads the performances of all given players in one query.
	PerformancesFor(ctx context.Context, playerIDs []int64) ([]model.Performance, error)
}

// PerformanceRepository reads the flat performance collection.
type PerformanceRepository interface {
	List(ctx context.Context, f PerformanceFilter, p Page) ([]model.Performance, error)
}

// LeagueRepository reads leagues and the teams they own.
type LeagueRepository interface {
	List(ctx context.Context, p Page) ([]model.League, error)
	GetByID(ctx context.Context, id int64) (model.League, error)
	// TeamsFor loads the teams of all given leagues in one query.
	TeamsFor(ctx context.Context, leagueIDs []int64) ([]model.Team, error)
}

// TeamRepository reads teams, their rosters and weekly scores.
type TeamRepository interface {
	List(ctx context.Context, f TeamFilter, p Page) ([]model.Team, error)
	GetByID(ctx context.Context, id int64) (model.Team, error)
	// RelationsFor loads rosters and weekly scores of all given teams in a single round trip.
	RelationsFor(ctx context.Context, teamIDs []int64) (model.TeamRelations, error)
}

// WeekRepository reads the week reference table.
type WeekRepository interface {
	List(ctx context.Context, p Page) ([]model.Week, error)
	GetByNumber(ctx context.Context, weekNumber string) (model.Week, error)
}

// CountsRepository returns the row count of every top-level entity kind in one statement.
type CountsRepository interface {
	Counts(ctx context.Context) (model.Counts, error)
}
