package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Repos bundles one implementation of every read repository, all backed by the same seeded store.
type Repos struct {
	Players      repository.PlayerRepository
	Performances repository.PerformanceRepository
	Leagues      repository.LeagueRepository
	Teams        repository.TeamRepository
	Weeks        repository.WeekRepository
	Counts       repository.CountsRepository
	Tx           repository.TxManager
	Pinger       repository.Pinger
}

// Factory returns repositories over a store already seeded with Fixture().
type Factory func(t *testing.T) Repos

func ptr[T any](v T) *T { return &v }

func playerIDs(ps []model.Player) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func RunPlayerRepositoryContract(t *testing.T, makeRepos Factory) {
	t.Helper()
	ds := Fixture()

	t.Run("list_all_ordered_by_id", func(t *testing.T) {
		repo := makeRepos(t).Players
		got, err := repo.List(context.Background(), repository.PlayerFilter{}, repository.Page{Limit: 10000})
		require.NoError(t, err)
		assert.Equal(t, []int64{1001, 1002, 1003, 1004, 1005}, playerIDs(got))
	})

	t.Run("page_is_subsequence", func(t *testing.T) {
		repo := makeRepos(t).Players
		ctx := context.Background()
		all, err := repo.List(ctx, repository.PlayerFilter{}, repository.Page{Limit: 10000})
		require.NoError(t, err)
		for skip := 0; skip <= len(all)+1; skip++ {
			got, err := repo.List(ctx, repository.PlayerFilter{}, repository.Page{Limit: 2, Offset: skip})
			require.NoError(t, err)
			end := min(skip+2, len(all))
			if skip >= len(all) {
				assert.Empty(t, got, "skip=%d", skip)
				continue
			}
			assert.Equal(t, all[skip:end], got, "skip=%d", skip)
		}
	})

	t.Run("filter_exact_names", func(t *testing.T) {
		repo := makeRepos(t).Players
		ctx := context.Background()
		got, err := repo.List(ctx, repository.PlayerFilter{FirstName: ptr("Bryce"), LastName: ptr("Young")}, repository.Page{Limit: 100})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1001), got[0].ID)
		assert.Equal(t, ds.Players[0].GSISID, got[0].GSISID)

		got, err = repo.List(ctx, repository.PlayerFilter{FirstName: ptr("Bryce")}, repository.Page{Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, []int64{1001, 1002}, playerIDs(got))

		got, err = repo.List(ctx, repository.PlayerFilter{FirstName: ptr("bryce")}, repository.Page{Limit: 100})
		require.NoError(t, err)
		assert.Empty(t, got, "names are case-sensitive")

		got, err = repo.List(ctx, repository.PlayerFilter{FirstName: ptr("Bry")}, repository.Page{Limit: 100})
		require.NoError(t, err)
		assert.Empty(t, got, "names are not prefix matched")
	})

	t.Run("get_by_id", func(t *testing.T) {
		repo := makeRepos(t).Players
		got, err := repo.GetByID(context.Background(), 1005)
		require.NoError(t, err)
		assert.Equal(t, "Kupp", got.LastName)
		assert.Nil(t, got.GSISID)
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo := makeRepos(t).Players
		_, err := repo.GetByID(context.Background(), 999999999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("performances_for_batch", func(t *testing.T) {
		repo := makeRepos(t).Players
		ctx := context.Background()
		got, err := repo.PerformancesFor(ctx, []int64{1001, 1003, 1005})
		require.NoError(t, err)
		perPlayer := map[int64]int{}
		for _, p := range got {
			perPlayer[p.PlayerID]++
		}
		assert.Equal(t, map[int64]int{1001: 4, 1003: 2}, perPlayer)

		none, err := repo.PerformancesFor(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func RunPerformanceRepositoryContract(t *testing.T, makeRepos Factory) {
	t.Helper()
	ds := Fixture()

	t.Run("list_all", func(t *testing.T) {
		repo := makeRepos(t).Performances
		got, err := repo.List(context.Background(), repository.PerformanceFilter{}, repository.Page{Limit: 20000})
		require.NoError(t, err)
		assert.Len(t, got, len(ds.Performances))
	})

	t.Run("min_last_changed_inclusive", func(t *testing.T) {
		repo := makeRepos(t).Performances
		ctx := context.Background()
		got, err := repo.List(ctx, repository.PerformanceFilter{MinLastChangedDate: ptr(SyncCutoff)}, repository.Page{Limit: 20000})
		require.NoError(t, err)

		want := 0
		for _, p := range ds.Performances {
			if !p.LastChangedDate.Before(SyncCutoff) {
				want++
			}
		}
		assert.Len(t, got, want)
		assert.Less(t, len(got), len(ds.Performances))
		for _, p := range got {
			assert.False(t, p.LastChangedDate.Before(SyncCutoff), "performance %d", p.ID)
		}
	})

	t.Run("zero_limit_is_empty", func(t *testing.T) {
		repo := makeRepos(t).Performances
		got, err := repo.List(context.Background(), repository.PerformanceFilter{}, repository.Page{Limit: 0})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func RunLeagueRepositoryContract(t *testing.T, makeRepos Factory) {
	t.Helper()

	t.Run("list_and_get", func(t *testing.T) {
		repo := makeRepos(t).Leagues
		ctx := context.Background()
		all, err := repo.List(ctx, repository.Page{Limit: 500})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, int64(5001), all[0].ID)

		got, err := repo.GetByID(ctx, 5002)
		require.NoError(t, err)
		assert.Equal(t, "Half-PPR", got.ScoringType)
		assert.Equal(t, 8, got.LeagueSize)
	})

	t.Run("get_not_found", func(t *testing.T) {
		_, err := makeRepos(t).Leagues.GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("teams_for_batch", func(t *testing.T) {
		repo := makeRepos(t).Leagues
		got, err := repo.TeamsFor(context.Background(), []int64{5001, 5003})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, tm := range got {
			assert.Equal(t, int64(5001), tm.LeagueID)
		}
	})
}

func RunTeamRepositoryContract(t *testing.T, makeRepos Factory) {
	t.Helper()

	t.Run("filter_by_league", func(t *testing.T) {
		repo := makeRepos(t).Teams
		got, err := repo.List(context.Background(), repository.TeamFilter{LeagueID: ptr(int64(5001))}, repository.Page{Limit: 500})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, tm := range got {
			assert.Equal(t, int64(5001), tm.LeagueID)
		}
	})

	t.Run("filters_commute", func(t *testing.T) {
		repo := makeRepos(t).Teams
		ctx := context.Background()
		both := repository.TeamFilter{Name: ptr("Fort Meow"), LeagueID: ptr(int64(5001))}
		got, err := repo.List(ctx, both, repository.Page{Limit: 500})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(6002), got[0].ID)

		mismatch := repository.TeamFilter{Name: ptr("Fort Meow"), LeagueID: ptr(int64(5002))}
		got, err = repo.List(ctx, mismatch, repository.Page{Limit: 500})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("relations_for_batch", func(t *testing.T) {
		repo := makeRepos(t).Teams
		rel, err := repo.RelationsFor(context.Background(), []int64{6001, 6002, 6003})
		require.NoError(t, err)

		roster := map[int64][]int64{}
		for _, e := range rel.Roster {
			require.NotNil(t, e.Player)
			roster[e.TeamID] = append(roster[e.TeamID], e.Player.ID)
		}
		assert.Equal(t, []int64{1001, 1003}, roster[6001])
		assert.Equal(t, []int64{1003, 1004}, roster[6002])
		assert.Equal(t, []int64{1005}, roster[6003])

		scores := map[int64]int{}
		for _, s := range rel.Scores {
			assert.True(t, s.WeekExists)
			scores[s.TeamID]++
		}
		assert.Equal(t, map[int64]int{6001: 4, 6002: 2}, scores)
	})

	t.Run("get_not_found", func(t *testing.T) {
		_, err := makeRepos(t).Teams.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func RunWeekRepositoryContract(t *testing.T, makeRepos Factory) {
	t.Helper()

	t.Run("list_and_get", func(t *testing.T) {
		repo := makeRepos(t).Weeks
		ctx := context.Background()
		all, err := repo.List(ctx, repository.Page{Limit: 1000})
		require.NoError(t, err)
		require.Len(t, all, 4)

		got, err := repo.GetByNumber(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, 155.0, got.Std14MaxPoints)
		assert.Equal(t, 195.0, got.PPR8MaxPoints)

		_, err = repo.GetByNumber(ctx, "wildcard")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func RunCountsRepositoryContract(t *testing.T, makeRepos Factory) {
	t.Helper()
	ds := Fixture()

	t.Run("counts_match_fixture", func(t *testing.T) {
		got, err := makeRepos(t).Counts.Counts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, model.Counts{
			LeagueCount: int64(len(ds.Leagues)),
			TeamCount:   int64(len(ds.Teams)),
			PlayerCount: int64(len(ds.Players)),
			WeekCount:   int64(len(ds.Weeks)),
		}, got)
	})
}

func RunTxManagerContract(t *testing.T, makeRepos Factory) {
	t.Helper()

	t.Run("reads_share_one_tx", func(t *testing.T) {
		repos := makeRepos(t)
		ctx := context.Background()
		var players []model.Player
		var counts model.Counts
		err := repos.Tx.WithinReadTx(ctx, func(ctx context.Context) error {
			var err error
			if players, err = repos.Players.List(ctx, repository.PlayerFilter{}, repository.Page{Limit: 10000}); err != nil {
				return err
			}
			counts, err = repos.Counts.Counts(ctx)
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, int64(len(players)), counts.PlayerCount)
	})

	t.Run("error_is_returned", func(t *testing.T) {
		repos := makeRepos(t)
		marker := errors.New("boom")
		err := repos.Tx.WithinReadTx(context.Background(), func(ctx context.Context) error { return marker })
		assert.ErrorIs(t, err, marker)
	})

	t.Run("canceled_context_is_unavailable", func(t *testing.T) {
		repos := makeRepos(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := repos.Tx.WithinReadTx(ctx, func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, repository.ErrUnavailable)
	})
}

func RunPingerContract(t *testing.T, makeRepos Factory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		assert.NoError(t, makeRepos(t).Pinger.Ping(context.Background()))
	})
}
