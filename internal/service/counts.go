package service

import (
	"context"

	"github.com/maxviazov/fantasy-stats-service/internal/projection"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type countsService struct {
	tx     repository.TxManager
	counts repository.CountsRepository
	log    zerolog.Logger
}

func NewCountsService(tx repository.TxManager, counts repository.CountsRepository, logger zerolog.Logger) CountsService {
	l := logger.With().Str("module", "service").Str("component", "counts").Logger()
	return &countsService{tx: tx, counts: counts, log: l}
}

func (s *countsService) GetCounts(ctx context.Context) (projection.Counts, error) {
	var out projection.Counts
	err := s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		c, err := s.counts.Counts(ctx)
		if err != nil {
			return err
		}
		out = projection.NewCounts(c)
		return nil
	})
	if err != nil {
		logFailure(s.log, err, "get_counts")
		return projection.Counts{}, err
	}
	return out, nil
}
