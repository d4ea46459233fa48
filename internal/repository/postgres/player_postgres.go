package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
)

const (
	playerColumns      = `player_id, gsis_id, first_name, last_name, position, last_changed_date`
	performanceColumns = `performance_id, player_id, week_number, fantasy_points, last_changed_date`
)

type playerRepository struct{ pool *pgxpool.Pool }

func NewPlayerRepository(pool *pgxpool.Pool) repository.PlayerRepository {
	return &playerRepository{pool: pool}
}

func (r *playerRepository) List(ctx context.Context, f repository.PlayerFilter, p repository.Page) ([]model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	sq := newSelect(`SELECT `+playerColumns+` FROM player`, "player_id")
	whereEq(sq, "first_name", f.FirstName)
	whereEq(sq, "last_name", f.LastName)
	sq.page(p)

	rows, err := getQ(ctx, r.pool).Query(ctx, sq.sql(), sq.args)
	return collect[model.Player](rows, err)
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (model.Player, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Player{}, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+playerColumns+` FROM player WHERE player_id = @id`,
		pgx.NamedArgs{"id": id},
	)
	return collectOne[model.Player](rows, err)
}

func (r *playerRepository) PerformancesFor(ctx context.Context, playerIDs []int64) ([]model.Performance, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	if len(playerIDs) == 0 {
		return []model.Performance{}, nil
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+performanceColumns+`
		 FROM performance
		 WHERE player_id = ANY(@ids)
		 ORDER BY performance_id`,
		pgx.NamedArgs{"ids": playerIDs},
	)
	return collect[model.Performance](rows, err)
}

var _ repository.PlayerRepository = (*playerRepository)(nil)
