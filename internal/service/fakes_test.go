package service_test

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/maxviazov/fantasy-stats-service/internal/model"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/maxviazov/fantasy-stats-service/internal/repository/contract"
)

// memStore serves the repository interfaces from a contract.Dataset held in memory.
type memStore struct {
	ds    contract.Dataset
	calls atomic.Int64
	// fail, when set, is returned by every read
	fail error
}

func newMemStore() *memStore { return &memStore{ds: contract.Fixture()} }

type txKey struct{}

// memTx records how many transactions were opened and whether reads happened inside one.
type memTx struct {
	opened  atomic.Int64
	outside atomic.Int64
}

func (m *memTx) WithinReadTx(ctx context.Context, fn repository.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	m.opened.Add(1)
	return fn(context.WithValue(ctx, txKey{}, true))
}

func (s *memStore) read(ctx context.Context, tx *memTx) error {
	s.calls.Add(1)
	if tx != nil && ctx.Value(txKey{}) == nil {
		tx.outside.Add(1)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return s.fail
}

func paginate[T any](rows []T, p repository.Page) []T {
	if p.Offset >= len(rows) {
		return []T{}
	}
	end := min(p.Offset+p.Limit, len(rows))
	return slices.Clone(rows[p.Offset:end])
}

func eqOrNil[T comparable](want *T, got T) bool { return want == nil || *want == got }

// memRepos binds the store to one memTx so reads outside a transaction can be detected.
type memRepos struct {
	s  *memStore
	tx *memTx
}

func (r memRepos) List(ctx context.Context, f repository.PlayerFilter, p repository.Page) ([]model.Player, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return nil, err
	}
	var out []model.Player
	for _, pl := range sortedBy(r.s.ds.Players, func(a model.Player) int64 { return a.ID }) {
		if eqOrNil(f.FirstName, pl.FirstName) && eqOrNil(f.LastName, pl.LastName) {
			out = append(out, pl)
		}
	}
	return paginate(out, p), nil
}

func (r memRepos) GetByID(ctx context.Context, id int64) (model.Player, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return model.Player{}, err
	}
	for _, pl := range r.s.ds.Players {
		if pl.ID == id {
			return pl, nil
		}
	}
	return model.Player{}, repository.ErrNotFound
}

func (r memRepos) PerformancesFor(ctx context.Context, ids []int64) ([]model.Performance, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return nil, err
	}
	out := []model.Performance{}
	for _, p := range r.s.ds.Performances {
		if slices.Contains(ids, p.PlayerID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func sortedBy[T any, K int64 | string](rows []T, key func(T) K) []T {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
	return out
}

type memPerformances struct{ memRepos }

func (r memPerformances) List(ctx context.Context, f repository.PerformanceFilter, p repository.Page) ([]model.Performance, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return nil, err
	}
	var out []model.Performance
	for _, pf := range sortedBy(r.s.ds.Performances, func(a model.Performance) int64 { return a.ID }) {
		if f.MinLastChangedDate == nil || !pf.LastChangedDate.Before(*f.MinLastChangedDate) {
			out = append(out, pf)
		}
	}
	return paginate(out, p), nil
}

type memLeagues struct{ memRepos }

func (r memLeagues) List(ctx context.Context, p repository.Page) ([]model.League, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return nil, err
	}
	return paginate(sortedBy(r.s.ds.Leagues, func(a model.League) int64 { return a.ID }), p), nil
}

func (r memLeagues) GetByID(ctx context.Context, id int64) (model.League, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return model.League{}, err
	}
	for _, l := range r.s.ds.Leagues {
		if l.ID == id {
			return l, nil
		}
	}
	return model.League{}, repository.ErrNotFound
}

func (r memLeagues) TeamsFor(ctx context.Context, ids []int64) ([]model.Team, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return nil, err
	}
	out := []model.Team{}
	for _, t := range sortedBy(r.s.ds.Teams, func(a model.Team) int64 { return a.ID }) {
		if slices.Contains(ids, t.LeagueID) {
			out = append(out, t)
		}
	}
	return out, nil
}

type memTeams struct{ memRepos }

func (r memTeams) List(ctx context.Context, f repository.TeamFilter, p repository.Page) ([]model.Team, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return nil, err
	}
	var out []model.Team
	for _, t := range sortedBy(r.s.ds.Teams, func(a model.Team) int64 { return a.ID }) {
		if eqOrNil(f.Name, t.Name) && eqOrNil(f.LeagueID, t.LeagueID) {
			out = append(out, t)
		}
	}
	return paginate(out, p), nil
}

func (r memTeams) GetByID(ctx context.Context, id int64) (model.Team, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return model.Team{}, err
	}
	for _, t := range r.s.ds.Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Team{}, repository.ErrNotFound
}

func (r memTeams) RelationsFor(ctx context.Context, ids []int64) (model.TeamRelations, error) {
	out := model.TeamRelations{Roster: []model.RosterEntry{}, Scores: []model.WeeklyScore{}}
	if err := r.s.read(ctx, r.tx); err != nil {
		return out, err
	}
	for _, tp := range r.s.ds.TeamPlayers {
		if !slices.Contains(ids, tp.TeamID) {
			continue
		}
		e := model.RosterEntry{TeamID: tp.TeamID, PlayerID: tp.PlayerID}
		for _, pl := range r.s.ds.Players {
			if pl.ID == tp.PlayerID {
				e.Player = &pl
				break
			}
		}
		out.Roster = append(out.Roster, e)
	}
	for _, tw := range r.s.ds.TeamWeeks {
		if !slices.Contains(ids, tw.TeamID) {
			continue
		}
		exists := slices.ContainsFunc(r.s.ds.Weeks, func(w model.Week) bool { return w.WeekNumber == tw.WeekNumber })
		out.Scores = append(out.Scores, model.WeeklyScore{TeamWeek: tw, WeekExists: exists})
	}
	return out, nil
}

type memWeeks struct{ memRepos }

func (r memWeeks) List(ctx context.Context, p repository.Page) ([]model.Week, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return nil, err
	}
	return paginate(sortedBy(r.s.ds.Weeks, func(a model.Week) string { return a.WeekNumber }), p), nil
}

func (r memWeeks) GetByNumber(ctx context.Context, n string) (model.Week, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return model.Week{}, err
	}
	for _, w := range r.s.ds.Weeks {
		if w.WeekNumber == n {
			return w, nil
		}
	}
	return model.Week{}, repository.ErrNotFound
}

type memCounts struct{ memRepos }

func (r memCounts) Counts(ctx context.Context) (model.Counts, error) {
	if err := r.s.read(ctx, r.tx); err != nil {
		return model.Counts{}, err
	}
	return model.Counts{
		LeagueCount: int64(len(r.s.ds.Leagues)),
		TeamCount:   int64(len(r.s.ds.Teams)),
		PlayerCount: int64(len(r.s.ds.Players)),
		WeekCount:   int64(len(r.s.ds.Weeks)),
	}, nil
}

type memPinger struct{ memRepos }

func (r memPinger) Ping(ctx context.Context) error { return r.s.read(ctx, nil) }

func (s *memStore) repos(tx *memTx) contract.Repos {
	base := memRepos{s: s, tx: tx}
	return contract.Repos{
		Players:      base,
		Performances: memPerformances{base},
		Leagues:      memLeagues{base},
		Teams:        memTeams{base},
		Weeks:        memWeeks{base},
		Counts:       memCounts{base},
		Tx:           tx,
		Pinger:       memPinger{base},
	}
}
