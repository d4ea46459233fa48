package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
)

const teamColumns = `team_id, league_id, team_name, last_changed_date`

type teamRepository struct{ pool *pgxpool.Pool }

func NewTeamRepository(pool *pgxpool.Pool) repository.TeamRepository {
	return &teamRepository{pool: pool}
}

func (r *teamRepository) List(ctx context.Context, f repository.TeamFilter, p repository.Page) ([]model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	sq := newSelect(`SELECT `+teamColumns+` FROM team`, "team_id")
	whereEq(sq, "team_name", f.Name)
	whereEq(sq, "league_id", f.LeagueID)
	sq.page(p)

	rows, err := getQ(ctx, r.pool).Query(ctx, sq.sql(), sq.args)
	return collect[model.Team](rows, err)
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Team{}, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+teamColumns+` FROM team WHERE team_id = @id`,
		pgx.NamedArgs{"id": id},
	)
	return collectOne[model.Team](rows, err)
}

// RelationsFor sends the roster and weekly score queries as one batch.
// Both use LEFT JOINs so dangling references surface as rows instead of silently vanishing.
func (r *teamRepository) RelationsFor(ctx context.Context, teamIDs []int64) (model.TeamRelations, error) {
	out := model.TeamRelations{Roster: []model.RosterEntry{}, Scores: []model.WeeklyScore{}}
	if err := ensurePool(r.pool); err != nil {
		return out, err
	}
	if len(teamIDs) == 0 {
		return out, nil
	}

	batch := &pgx.Batch{}
	batch.Queue(`
		SELECT tp.team_id, tp.player_id,
		       p.player_id, p.gsis_id, p.first_name, p.last_name, p.position, p.last_changed_date
		FROM team_player tp
		LEFT JOIN player p ON p.player_id = tp.player_id
		WHERE tp.team_id = ANY($1)
		ORDER BY tp.team_id, tp.player_id`, teamIDs)
	batch.Queue(`
		SELECT tw.team_id, tw.week_number, tw.fantasy_points, tw.last_changed_date,
		       w.week_number IS NOT NULL AS week_exists
		FROM team_week tw
		LEFT JOIN week w ON w.week_number = tw.week_number
		WHERE tw.team_id = ANY($1)
		ORDER BY tw.team_id, tw.week_number`, teamIDs)

	br := getQ(ctx, r.pool).SendBatch(ctx, batch)
	defer br.Close()

	roster, err := br.Query()
	if err != nil {
		return out, repository.MapPgError(err)
	}
	out.Roster, err = pgx.CollectRows(roster, scanRosterEntry)
	if err != nil {
		return out, repository.MapPgError(err)
	}

	scores, err := br.Query()
	if err != nil {
		return out, repository.MapPgError(err)
	}
	out.Scores, err = pgx.CollectRows(scores, scanWeeklyScore)
	if err != nil {
		return out, repository.MapPgError(err)
	}

	if err := br.Close(); err != nil {
		return out, repository.MapPgError(err)
	}
	return out, nil
}

func scanRosterEntry(row pgx.CollectableRow) (model.RosterEntry, error) {
	var (
		e         model.RosterEntry
		playerID  *int64
		gsisID    *string
		firstName *string
		lastName  *string
		position  *string
		changed   *time.Time
	)
	if err := row.Scan(&e.TeamID, &e.PlayerID, &playerID, &gsisID, &firstName, &lastName, &position, &changed); err != nil {
		return e, err
	}
	if playerID == nil {
		return e, nil
	}
	e.Player = &model.Player{
		ID:        *playerID,
		GSISID:    gsisID,
		FirstName: deref(firstName),
		LastName:  deref(lastName),
		Position:  deref(position),
	}
	if changed != nil {
		e.Player.LastChangedDate = *changed
	}
	return e, nil
}

func scanWeeklyScore(row pgx.CollectableRow) (model.WeeklyScore, error) {
	var s model.WeeklyScore
	err := row.Scan(&s.TeamID, &s.WeekNumber, &s.FantasyPoints, &s.LastChangedDate, &s.WeekExists)
	return s, err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ repository.TeamRepository = (*teamRepository)(nil)
