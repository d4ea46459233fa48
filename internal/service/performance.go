package service

import (
	"context"

	"github.com/maxviazov/fantasy-stats-service/internal/projection"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type performanceService struct {
	tx    repository.TxManager
	perfs repository.PerformanceRepository
	log   zerolog.Logger
}

func NewPerformanceService(tx repository.TxManager, perfs repository.PerformanceRepository, logger zerolog.Logger) PerformanceService {
	l := logger.With().Str("module", "service").Str("component", "performance").Logger()
	return &performanceService{tx: tx, perfs: perfs, log: l}
}

// ListPerformances is the incremental sync feed: rows changed on or after the given date.
func (s *performanceService) ListPerformances(ctx context.Context, q PerformanceQuery) ([]projection.Performance, error) {
	page, err := resolvePage(q.PageParams)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []projection.Performance{}, nil
	}

	var out []projection.Performance
	err = s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		rows, err := s.perfs.List(ctx, repository.PerformanceFilter{MinLastChangedDate: q.MinLastChangedDate}, page)
		if err != nil {
			return err
		}
		out = projection.NewPerformances(rows)
		return nil
	})
	if err != nil {
		logFailure(s.log, err, "list_performances")
		return nil, err
	}
	return out, nil
}
