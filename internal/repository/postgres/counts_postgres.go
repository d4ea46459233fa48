package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
)

type countsRepository struct{ pool *pgxpool.Pool }

func NewCountsRepository(pool *pgxpool.Pool) repository.CountsRepository {
	return &countsRepository{pool: pool}
}

// Counts reads all four totals in one statement, so they come from the same snapshot.
func (r *countsRepository) Counts(ctx context.Context) (model.Counts, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Counts{}, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx, `
		SELECT
			(SELECT COUNT(*) FROM league) AS league_count,
			(SELECT COUNT(*) FROM team)   AS team_count,
			(SELECT COUNT(*) FROM player) AS player_count,
			(SELECT COUNT(*) FROM week)   AS week_count`)
	return collectOne[model.Counts](rows, err)
}

var _ repository.CountsRepository = (*countsRepository)(nil)
