// Package projection turns flat rows into the JSON documents served by the API.
// Every document nests exactly one level: children carry only their base fields.
package projection

import "time"

const dateLayout = "2006-01-02"

// Date is a calendar date rendered as YYYY-MM-DD.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return &time.ParseError{Layout: dateLayout, Value: string(b)}
	}
	t, err := time.Parse(dateLayout, string(b[1:len(b)-1]))
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

func (d Date) String() string { return time.Time(d).Format(dateLayout) }

type Performance struct {
	PerformanceID   int64   `json:"performance_id"`
	PlayerID        int64   `json:"player_id"`
	WeekNumber      string  `json:"week_number"`
	FantasyPoints   float64 `json:"fantasy_points"`
	LastChangedDate Date    `json:"last_changed_date"`
}

// PlayerBase is a player without nested collections. It is what a team roster shows.
type PlayerBase struct {
	PlayerID        int64   `json:"player_id"`
	GSISID          *string `json:"gsis_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Position        string  `json:"position"`
	LastChangedDate Date    `json:"last_changed_date"`
}

type Player struct {
	PlayerBase
	Performances []Performance `json:"performances"`
}

type TeamBase struct {
	LeagueID        int64  `json:"league_id"`
	TeamID          int64  `json:"team_id"`
	TeamName        string `json:"team_name"`
	LastChangedDate Date   `json:"last_changed_date"`
}

type WeeklyScore struct {
	WeekNumber      string  `json:"week_number"`
	FantasyPoints   float64 `json:"fantasy_points"`
	LastChangedDate Date    `json:"last_changed_date"`
}

type Team struct {
	TeamBase
	Players      []PlayerBase  `json:"players"`
	WeeklyScores []WeeklyScore `json:"weekly_scores"`
}

type League struct {
	LeagueID        int64      `json:"league_id"`
	LeagueName      string     `json:"league_name"`
	ScoringType     string     `json:"scoring_type"`
	LeagueSize      int        `json:"league_size"`
	LastChangedDate Date       `json:"last_changed_date"`
	Teams           []TeamBase `json:"teams"`
}

type Week struct {
	WeekNumber         string  `json:"week_number"`
	PPR8MaxPoints      float64 `json:"ppr_8_max_points"`
	PPR10MaxPoints     float64 `json:"ppr_10_max_points"`
	PPR12MaxPoints     float64 `json:"ppr_12_max_points"`
	PPR14MaxPoints     float64 `json:"ppr_14_max_points"`
	HalfPPR8MaxPoints  float64 `json:"half_ppr_8_max_points"`
	HalfPPR10MaxPoints float64 `json:"half_ppr_10_max_points"`
	HalfPPR12MaxPoints float64 `json:"half_ppr_12_max_points"`
	HalfPPR14MaxPoints float64 `json:"half_ppr_14_max_points"`
	Std8MaxPoints      float64 `json:"std_8_max_points"`
	Std10MaxPoints     float64 `json:"std_10_max_points"`
	Std12MaxPoints     float64 `json:"std_12_max_points"`
	Std14MaxPoints     float64 `json:"std_14_max_points"`
	LastChangedDate    Date    `json:"last_changed_date"`
}

type Counts struct {
	LeagueCount int64 `json:"league_count"`
	TeamCount   int64 `json:"team_count"`
	PlayerCount int64 `json:"player_count"`
	WeekCount   int64 `json:"week_count"`
}
