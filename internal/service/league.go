package service

import (
	"context"

	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/projection"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type leagueService struct {
	tx      repository.TxManager
	leagues repository.LeagueRepository
	log     zerolog.Logger
}

func NewLeagueService(tx repository.TxManager, leagues repository.LeagueRepository, logger zerolog.Logger) LeagueService {
	l := logger.With().Str("module", "service").Str("component", "league").Logger()
	return &leagueService{tx: tx, leagues: leagues, log: l}
}

func (s *leagueService) ListLeagues(ctx context.Context, p PageParams) ([]projection.League, error) {
	page, err := resolvePage(p)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []projection.League{}, nil
	}

	var out []projection.League
	err = s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		leagues, err := s.leagues.List(ctx, page)
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(leagues))
		for _, l := range leagues {
			ids = append(ids, l.ID)
		}
		teams, err := s.leagues.TeamsFor(ctx, ids)
		if err != nil {
			return err
		}
		out = projection.NewLeagues(leagues, teams)
		return nil
	})
	if err != nil {
		logFailure(s.log, err, "list_leagues")
		return nil, err
	}
	return out, nil
}

func (s *leagueService) GetLeague(ctx context.Context, id int64) (projection.League, error) {
	var out projection.League
	err := s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		league, err := s.leagues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		teams, err := s.leagues.TeamsFor(ctx, []int64{league.ID})
		if err != nil {
			return err
		}
		out = projection.NewLeagues([]model.League{league}, teams)[0]
		return nil
	})
	if err != nil {
		logFailure(s.log.With().Int64("league_id", id).Logger(), err, "get_league")
		return projection.League{}, err
	}
	return out, nil
}
