package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
)

const leagueColumns = `league_id, league_name, scoring_type, league_size, last_changed_date`

type leagueRepository struct{ pool *pgxpool.Pool }

func NewLeagueRepository(pool *pgxpool.Pool) repository.LeagueRepository {
	return &leagueRepository{pool: pool}
}

func (r *leagueRepository) List(ctx context.Context, p repository.Page) ([]model.League, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	sq := newSelect(`SELECT `+leagueColumns+` FROM league`, "league_id").page(p)
	rows, err := getQ(ctx, r.pool).Query(ctx, sq.sql(), sq.args)
	return collect[model.League](rows, err)
}

func (r *leagueRepository) GetByID(ctx context.Context, id int64) (model.League, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.League{}, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+leagueColumns+` FROM league WHERE league_id = @id`,
		pgx.NamedArgs{"id": id},
	)
	return collectOne[model.League](rows, err)
}

func (r *leagueRepository) TeamsFor(ctx context.Context, leagueIDs []int64) ([]model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	if len(leagueIDs) == 0 {
		return []model.Team{}, nil
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+teamColumns+`
		 FROM team
		 WHERE league_id = ANY(@ids)
		 ORDER BY team_id`,
		pgx.NamedArgs{"ids": leagueIDs},
	)
	return collect[model.Team](rows, err)
}

var _ repository.LeagueRepository = (*leagueRepository)(nil)
