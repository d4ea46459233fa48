package service

import (
	"context"

	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/projection"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type teamService struct {
	tx    repository.TxManager
	teams repository.TeamRepository
	log   zerolog.Logger
}

func NewTeamService(tx repository.TxManager, teams repository.TeamRepository, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{tx: tx, teams: teams, log: l}
}

func (s *teamService) ListTeams(ctx context.Context, q TeamQuery) ([]projection.Team, error) {
	page, err := resolvePage(q.PageParams)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []projection.Team{}, nil
	}

	var out []projection.Team
	err = s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		teams, err := s.teams.List(ctx, repository.TeamFilter{Name: q.TeamName, LeagueID: q.LeagueID}, page)
		if err != nil {
			return err
		}
		out, err = s.project(ctx, teams)
		return err
	})
	if err != nil {
		logFailure(s.log, err, "list_teams")
		return nil, err
	}
	return out, nil
}

func (s *teamService) GetTeam(ctx context.Context, id int64) (projection.Team, error) {
	var out []projection.Team
	err := s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		team, err := s.teams.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out, err = s.project(ctx, []model.Team{team})
		return err
	})
	if err != nil {
		logFailure(s.log.With().Int64("team_id", id).Logger(), err, "get_team")
		return projection.Team{}, err
	}
	return out[0], nil
}

func (s *teamService) project(ctx context.Context, teams []model.Team) ([]projection.Team, error) {
	ids := make([]int64, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	rel, err := s.teams.RelationsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	docs, anomalies := projection.NewTeams(teams, rel)
	reportAnomalies(s.log, anomalies)
	return docs, nil
}
