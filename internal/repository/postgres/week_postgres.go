package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
)

const weekColumns = `week_number,
	ppr_8_max_points, ppr_10_max_points, ppr_12_max_points, ppr_14_max_points,
	half_ppr_8_max_points, half_ppr_10_max_points, half_ppr_12_max_points, half_ppr_14_max_points,
	std_8_max_points, std_10_max_points, std_12_max_points, std_14_max_points,
	last_changed_date`

type weekRepository struct{ pool *pgxpool.Pool }

func NewWeekRepository(pool *pgxpool.Pool) repository.WeekRepository {
	return &weekRepository{pool: pool}
}

func (r *weekRepository) List(ctx context.Context, p repository.Page) ([]model.Week, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	sq := newSelect(`SELECT `+weekColumns+` FROM week`, "week_number").page(p)
	rows, err := getQ(ctx, r.pool).Query(ctx, sq.sql(), sq.args)
	return collect[model.Week](rows, err)
}

func (r *weekRepository) GetByNumber(ctx context.Context, weekNumber string) (model.Week, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Week{}, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+weekColumns+` FROM week WHERE week_number = @week_number`,
		pgx.NamedArgs{"week_number": weekNumber},
	)
	return collectOne[model.Week](rows, err)
}

var _ repository.WeekRepository = (*weekRepository)(nil)
