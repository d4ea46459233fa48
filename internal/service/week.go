package service

import (
	"context"

	"github.com/maxviazov/fantasy-stats-service/internal/projection"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type weekService struct {
	tx    repository.TxManager
	weeks repository.WeekRepository
	log   zerolog.Logger
}

func NewWeekService(tx repository.TxManager, weeks repository.WeekRepository, logger zerolog.Logger) WeekService {
	l := logger.With().Str("module", "service").Str("component", "week").Logger()
	return &weekService{tx: tx, weeks: weeks, log: l}
}

func (s *weekService) ListWeeks(ctx context.Context, p PageParams) ([]projection.Week, error) {
	page, err := resolvePage(p)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []projection.Week{}, nil
	}

	var out []projection.Week
	err = s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		weeks, err := s.weeks.List(ctx, page)
		if err != nil {
			return err
		}
		out = projection.NewWeeks(weeks)
		return nil
	})
	if err != nil {
		logFailure(s.log, err, "list_weeks")
		return nil, err
	}
	return out, nil
}

func (s *weekService) GetWeek(ctx context.Context, weekNumber string) (projection.Week, error) {
	var out projection.Week
	err := s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		w, err := s.weeks.GetByNumber(ctx, weekNumber)
		if err != nil {
			return err
		}
		out = projection.NewWeek(w)
		return nil
	})
	if err != nil {
		logFailure(s.log.With().Str("week_number", weekNumber).Logger(), err, "get_week")
		return projection.Week{}, err
	}
	return out, nil
}
