package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
)

type performanceRepository struct{ pool *pgxpool.Pool }

func NewPerformanceRepository(pool *pgxpool.Pool) repository.PerformanceRepository {
	return &performanceRepository{pool: pool}
}

func (r *performanceRepository) List(ctx context.Context, f repository.PerformanceFilter, p repository.Page) ([]model.Performance, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	sq := newSelect(`SELECT `+performanceColumns+` FROM performance`, "performance_id")
	whereGte(sq, "last_changed_date", f.MinLastChangedDate)
	sq.page(p)

	rows, err := getQ(ctx, r.pool).Query(ctx, sq.sql(), sq.args)
	return collect[model.Performance](rows, err)
}

var _ repository.PerformanceRepository = (*performanceRepository)(nil)
