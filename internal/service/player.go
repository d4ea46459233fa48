package service

import (
	"context"

	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/projection"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/rs/zerolog"
)

type playerService struct {
	tx      repository.TxManager
	players repository.PlayerRepository
	log     zerolog.Logger
}

func NewPlayerService(tx repository.TxManager, players repository.PlayerRepository, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{tx: tx, players: players, log: l}
}

func (s *playerService) ListPlayers(ctx context.Context, q PlayerQuery) ([]projection.Player, error) {
	page, err := resolvePage(q.PageParams)
	if err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("player query validation failed")
		return nil, err
	}
	if page.Empty() {
		return []projection.Player{}, nil
	}

	var out []projection.Player
	err = s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		players, err := s.players.List(ctx, repository.PlayerFilter{FirstName: q.FirstName, LastName: q.LastName}, page)
		if err != nil {
			return err
		}
		perfs, err := s.players.PerformancesFor(ctx, playerIDs(players))
		if err != nil {
			return err
		}
		out = projection.NewPlayers(players, perfs)
		return nil
	})
	if err != nil {
		logFailure(s.log, err, "list_players")
		return nil, err
	}
	return out, nil
}

func (s *playerService) GetPlayer(ctx context.Context, id int64) (projection.Player, error) {
	var out projection.Player
	err := s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		p, err := s.players.GetByID(ctx, id)
		if err != nil {
			return err
		}
		perfs, err := s.players.PerformancesFor(ctx, []int64{p.ID})
		if err != nil {
			return err
		}
		out = projection.NewPlayers([]model.Player{p}, perfs)[0]
		return nil
	})
	if err != nil {
		logFailure(s.log.With().Int64("player_id", id).Logger(), err, "get_player")
		return projection.Player{}, err
	}
	return out, nil
}

func playerIDs(ps []model.Player) []int64 {
	ids := make([]int64, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}
