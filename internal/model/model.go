// Package model contains the persisted entity shapes of the fantasy dataset.
// I keep it lean: plain rows with db tags, no behavior and no nesting.
package model

import "time"

// Player is a single NFL player row.
type Player struct {
	ID              int64     `db:"player_id"`
	GSISID          *string   `db:"gsis_id"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	Position        string    `db:"position"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

// Performance is one player's fantasy output for one week.
type Performance struct {
	ID              int64     `db:"performance_id"`
	PlayerID        int64     `db:"player_id"`
	WeekNumber      string    `db:"week_number"`
	FantasyPoints   float64   `db:"fantasy_points"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

// League groups fantasy teams under one scoring setup.
// LeagueSize is stored as ingested; it is not reconciled with the number of teams.
type League struct {
	ID              int64     `db:"league_id"`
	Name            string    `db:"league_name"`
	ScoringType     string    `db:"scoring_type"`
	LeagueSize      int       `db:"league_size"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

// Team is a fantasy team owned by exactly one league.
type Team struct {
	ID              int64     `db:"team_id"`
	LeagueID        int64     `db:"league_id"`
	Name            string    `db:"team_name"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

// TeamWeek is the aggregate score of a team for one week.
type TeamWeek struct {
	TeamID          int64     `db:"team_id"`
	WeekNumber      string    `db:"week_number"`
	FantasyPoints   float64   `db:"fantasy_points"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

// TeamPlayer is a roster membership row. Membership is not exclusive.
type TeamPlayer struct {
	TeamID          int64     `db:"team_id"`
	PlayerID        int64     `db:"player_id"`
	LastChangedDate time.Time `db:"last_changed_date"`
}

// Week carries the maximum possible points per scoring format and league size.
type Week struct {
	WeekNumber         string    `db:"week_number"`
	PPR8MaxPoints      float64   `db:"ppr_8_max_points"`
	PPR10MaxPoints     float64   `db:"ppr_10_max_points"`
	PPR12MaxPoints     float64   `db:"ppr_12_max_points"`
	PPR14MaxPoints     float64   `db:"ppr_14_max_points"`
	HalfPPR8MaxPoints  float64   `db:"half_ppr_8_max_points"`
	HalfPPR10MaxPoints float64   `db:"half_ppr_10_max_points"`
	HalfPPR12MaxPoints float64   `db:"half_ppr_12_max_points"`
	HalfPPR14MaxPoints float64   `db:"half_ppr_14_max_points"`
	Std8MaxPoints      float64   `db:"std_8_max_points"`
	Std10MaxPoints     float64   `db:"std_10_max_points"`
	Std12MaxPoints     float64   `db:"std_12_max_points"`
	Std14MaxPoints     float64   `db:"std_14_max_points"`
	LastChangedDate    time.Time `db:"last_changed_date"`
}

// RosterEntry is a team_player row joined with the player it points at.
// Player is nil when the membership references a player row that does not exist.
type RosterEntry struct {
	TeamID   int64
	PlayerID int64
	Player   *Player
}

// WeeklyScore is a team_week row plus whether its week row exists.
type WeeklyScore struct {
	TeamWeek
	WeekExists bool
}

// TeamRelations bundles the related collections of a page of teams.
type TeamRelations struct {
	Roster []RosterEntry
	Scores []WeeklyScore
}

// Counts holds the total row count of each top-level entity kind.
type Counts struct {
	LeagueCount int64 `db:"league_count"`
	TeamCount   int64 `db:"team_count"`
	PlayerCount int64 `db:"player_count"`
	WeekCount   int64 `db:"week_count"`
}
