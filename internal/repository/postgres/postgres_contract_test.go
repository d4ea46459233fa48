package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/maxviazov/fantasy-stats-service/internal/repository/contract"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const pgImage = "postgres:16.3-alpine"

var (
	pool   *pgxpool.Pool
	skippy string
)

func TestMain(m *testing.M) {
	os.Exit(runContract(m))
}

// startContainer converts a testcontainers panic (no docker host found) into an error.
func startContainer(ctx context.Context) (c *tcpostgres.PostgresContainer, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("docker provider: %v", r)
		}
	}()
	return tcpostgres.Run(ctx, pgImage,
		tcpostgres.WithDatabase("fantasy"),
		tcpostgres.WithUsername("ffuser"),
		tcpostgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
}

func runContract(m *testing.M) int {
	if os.Getenv("CONTRACT_TESTS") == "0" {
		skippy = "CONTRACT_TESTS=0"
		return m.Run()
	}
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		container, err := startContainer(ctx)
		if err != nil {
			// no docker on this host: unit tests in the package still run
			skippy = fmt.Sprintf("postgres container unavailable: %v", err)
			return m.Run()
		}
		defer func() { _ = container.Terminate(context.Background()) }()

		// the container is not configured for TLS
		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Println("[contract] connection string:", err)
			return 1
		}
	}

	var err error
	pool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("[contract] pgxpool new error:", err)
		return 1
	}
	defer pool.Close()

	if err := Migrate(ctx, pool, zerolog.Nop()); err != nil {
		fmt.Println("[contract] migrate error:", err)
		return 1
	}
	if err := seed(ctx, pool, contract.Fixture()); err != nil {
		fmt.Println("[contract] seed error:", err)
		return 1
	}
	return m.Run()
}

func skipIfNeeded(t *testing.T) {
	t.Helper()
	if skippy != "" {
		t.Skip("contract tests skipped: " + skippy)
	}
}

// seed replaces every table's content with the fixture using COPY.
func seed(ctx context.Context, pool *pgxpool.Pool, ds contract.Dataset) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE team_player, team_week, performance, team, league, player, week RESTART IDENTITY`); err != nil {
			return err
		}

		tables := []struct {
			name string
			cols []string
			rows [][]any
		}{
			{"week", []string{
				"week_number",
				"ppr_8_max_points", "ppr_10_max_points", "ppr_12_max_points", "ppr_14_max_points",
				"half_ppr_8_max_points", "half_ppr_10_max_points", "half_ppr_12_max_points", "half_ppr_14_max_points",
				"std_8_max_points", "std_10_max_points", "std_12_max_points", "std_14_max_points",
				"last_changed_date",
			}, nil},
			{"player", []string{"player_id", "gsis_id", "first_name", "last_name", "position", "last_changed_date"}, nil},
			{"performance", []string{"performance_id", "player_id", "week_number", "fantasy_points", "last_changed_date"}, nil},
			{"league", []string{"league_id", "league_name", "scoring_type", "league_size", "last_changed_date"}, nil},
			{"team", []string{"team_id", "league_id", "team_name", "last_changed_date"}, nil},
			{"team_week", []string{"team_id", "week_number", "fantasy_points", "last_changed_date"}, nil},
			{"team_player", []string{"team_id", "player_id", "last_changed_date"}, nil},
		}
		for _, w := range ds.Weeks {
			tables[0].rows = append(tables[0].rows, []any{
				w.WeekNumber,
				w.PPR8MaxPoints, w.PPR10MaxPoints, w.PPR12MaxPoints, w.PPR14MaxPoints,
				w.HalfPPR8MaxPoints, w.HalfPPR10MaxPoints, w.HalfPPR12MaxPoints, w.HalfPPR14MaxPoints,
				w.Std8MaxPoints, w.Std10MaxPoints, w.Std12MaxPoints, w.Std14MaxPoints,
				w.LastChangedDate,
			})
		}
		for _, p := range ds.Players {
			tables[1].rows = append(tables[1].rows, []any{p.ID, p.GSISID, p.FirstName, p.LastName, p.Position, p.LastChangedDate})
		}
		for _, p := range ds.Performances {
			tables[2].rows = append(tables[2].rows, []any{p.ID, p.PlayerID, p.WeekNumber, p.FantasyPoints, p.LastChangedDate})
		}
		for _, l := range ds.Leagues {
			tables[3].rows = append(tables[3].rows, []any{l.ID, l.Name, l.ScoringType, l.LeagueSize, l.LastChangedDate})
		}
		for _, tm := range ds.Teams {
			tables[4].rows = append(tables[4].rows, []any{tm.ID, tm.LeagueID, tm.Name, tm.LastChangedDate})
		}
		for _, s := range ds.TeamWeeks {
			tables[5].rows = append(tables[5].rows, []any{s.TeamID, s.WeekNumber, s.FantasyPoints, s.LastChangedDate})
		}
		for _, tp := range ds.TeamPlayers {
			tables[6].rows = append(tables[6].rows, []any{tp.TeamID, tp.PlayerID, tp.LastChangedDate})
		}

		for _, tbl := range tables {
			if _, err := tx.CopyFrom(ctx, pgx.Identifier{tbl.name}, tbl.cols, pgx.CopyFromRows(tbl.rows)); err != nil {
				return fmt.Errorf("copy %s: %w", tbl.name, err)
			}
		}
		return nil
	})
}

func makeRepos(t *testing.T) contract.Repos {
	skipIfNeeded(t)
	return contract.Repos{
		Players:      NewPlayerRepository(pool),
		Performances: NewPerformanceRepository(pool),
		Leagues:      NewLeagueRepository(pool),
		Teams:        NewTeamRepository(pool),
		Weeks:        NewWeekRepository(pool),
		Counts:       NewCountsRepository(pool),
		Tx:           NewTxManager(pool),
		Pinger:       NewPinger(pool),
	}
}

func TestPlayerRepository_PostgresContract(t *testing.T) {
	contract.RunPlayerRepositoryContract(t, makeRepos)
}

func TestPerformanceRepository_PostgresContract(t *testing.T) {
	contract.RunPerformanceRepositoryContract(t, makeRepos)
}

func TestLeagueRepository_PostgresContract(t *testing.T) {
	contract.RunLeagueRepositoryContract(t, makeRepos)
}

func TestTeamRepository_PostgresContract(t *testing.T) {
	contract.RunTeamRepositoryContract(t, makeRepos)
}

func TestWeekRepository_PostgresContract(t *testing.T) {
	contract.RunWeekRepositoryContract(t, makeRepos)
}

func TestCountsRepository_PostgresContract(t *testing.T) {
	contract.RunCountsRepositoryContract(t, makeRepos)
}

func TestTxManager_PostgresContract(t *testing.T) {
	contract.RunTxManagerContract(t, makeRepos)
}

func TestPinger_PostgresContract(t *testing.T) {
	contract.RunPingerContract(t, makeRepos)
}

func TestMigrate_Idempotent(t *testing.T) {
	skipIfNeeded(t)
	require.NoError(t, Migrate(context.Background(), pool, zerolog.Nop()))
}

// Dangling rows cannot be inserted with foreign keys enforced, so the test disables
// triggers for its own transaction and rolls everything back afterwards.
func TestTeamRepository_RelationsSurfaceDanglingRows(t *testing.T) {
	skipIfNeeded(t)
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `SET LOCAL session_replication_role = replica`)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `INSERT INTO team_player (team_id, player_id) VALUES (6003, 424242)`)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `INSERT INTO team_week (team_id, week_number, fantasy_points) VALUES (6003, '99', 1.5)`)
	require.NoError(t, err)

	rel, err := NewTeamRepository(pool).RelationsFor(withTx(ctx, tx), []int64{6003})
	require.NoError(t, err)

	var dangling []int64
	for _, e := range rel.Roster {
		if e.Player == nil {
			dangling = append(dangling, e.PlayerID)
		}
	}
	assert.Equal(t, []int64{424242}, dangling)
	require.Len(t, rel.Scores, 1)
	assert.Equal(t, "99", rel.Scores[0].WeekNumber)
	assert.False(t, rel.Scores[0].WeekExists)
}

func TestLastChangedDate_NeverMovesBackwards(t *testing.T) {
	skipIfNeeded(t)
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `UPDATE player SET last_changed_date = '2020-01-01' WHERE player_id = 1003`)
	require.NoError(t, err)

	got, err := NewPlayerRepository(pool).GetByID(withTx(ctx, tx), 1003)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), got.LastChangedDate.UTC())
}

func TestWithinReadTx_RejectsWrites(t *testing.T) {
	skipIfNeeded(t)
	err := NewTxManager(pool).WithinReadTx(context.Background(), func(ctx context.Context) error {
		_, err := getQ(ctx, pool).Exec(ctx, `UPDATE week SET std_8_max_points = 0`)
		return err
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrUnavailable)
}
