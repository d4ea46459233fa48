package contract

import (
	"time"

	"github.com/maxviazov/fantasy-stats-service/internal/model"
)

// Dataset is the fixture every repository implementation is seeded with before the suites run.
// League 5001 declares league_size 12 but owns two teams; league 5003 owns none.
// Player 1003 sits on two rosters at once.
type Dataset struct {
	Weeks        []model.Week
	Leagues      []model.League
	Teams        []model.Team
	Players      []model.Player
	Performances []model.Performance
	TeamPlayers  []model.TeamPlayer
	TeamWeeks    []model.TeamWeek
}

var (
	march = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	april = time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	// SyncCutoff splits performances into the March and April ingestion batches.
	SyncCutoff = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
)

func gsis(s string) *string { return &s }

func week(n string, base float64) model.Week {
	return model.Week{
		WeekNumber:    n,
		PPR8MaxPoints: base + 40, PPR10MaxPoints: base + 30, PPR12MaxPoints: base + 20, PPR14MaxPoints: base + 10,
		HalfPPR8MaxPoints: base + 35, HalfPPR10MaxPoints: base + 25, HalfPPR12MaxPoints: base + 15, HalfPPR14MaxPoints: base + 5,
		Std8MaxPoints: base + 30, Std10MaxPoints: base + 20, Std12MaxPoints: base + 10, Std14MaxPoints: base,
		LastChangedDate: march,
	}
}

// Fixture returns a fresh copy of the seed dataset.
func Fixture() Dataset {
	return Dataset{
		Weeks: []model.Week{week("1", 150), week("2", 160), week("3", 155), week("4", 170)},
		Leagues: []model.League{
			{ID: 5001, Name: "Pigskin Prodigy League", ScoringType: "PPR", LeagueSize: 12, LastChangedDate: march},
			{ID: 5002, Name: "Recurring Champions League", ScoringType: "Half-PPR", LeagueSize: 8, LastChangedDate: march},
			{ID: 5003, Name: "Empty Bench League", ScoringType: "Standard", LeagueSize: 10, LastChangedDate: april},
		},
		Teams: []model.Team{
			{ID: 6001, LeagueID: 5001, Name: "Wallaby Stew", LastChangedDate: march},
			{ID: 6002, LeagueID: 5001, Name: "Fort Meow", LastChangedDate: april},
			{ID: 6003, LeagueID: 5002, Name: "Ice Box", LastChangedDate: march},
		},
		Players: []model.Player{
			{ID: 1001, GSISID: gsis("00-0039150"), FirstName: "Bryce", LastName: "Young", Position: "QB", LastChangedDate: march},
			{ID: 1002, GSISID: gsis("00-0036264"), FirstName: "Bryce", LastName: "Hall", Position: "CB", LastChangedDate: march},
			{ID: 1003, GSISID: gsis("00-0034857"), FirstName: "Josh", LastName: "Allen", Position: "QB", LastChangedDate: april},
			{ID: 1004, GSISID: gsis("00-0034844"), FirstName: "Josh", LastName: "Jacobs", Position: "RB", LastChangedDate: march},
			{ID: 1005, FirstName: "Cooper", LastName: "Kupp", Position: "WR", LastChangedDate: march},
		},
		Performances: []model.Performance{
			{ID: 1, PlayerID: 1001, WeekNumber: "1", FantasyPoints: 8.4, LastChangedDate: march},
			{ID: 2, PlayerID: 1001, WeekNumber: "2", FantasyPoints: 11.2, LastChangedDate: march},
			{ID: 3, PlayerID: 1001, WeekNumber: "3", FantasyPoints: 4.9, LastChangedDate: april},
			{ID: 4, PlayerID: 1001, WeekNumber: "4", FantasyPoints: 15.6, LastChangedDate: april},
			{ID: 5, PlayerID: 1003, WeekNumber: "1", FantasyPoints: 31.1, LastChangedDate: march},
			{ID: 6, PlayerID: 1003, WeekNumber: "2", FantasyPoints: 24.7, LastChangedDate: SyncCutoff},
			{ID: 7, PlayerID: 1004, WeekNumber: "1", FantasyPoints: 12.0, LastChangedDate: march},
		},
		TeamPlayers: []model.TeamPlayer{
			{TeamID: 6001, PlayerID: 1001, LastChangedDate: march},
			{TeamID: 6001, PlayerID: 1003, LastChangedDate: march},
			{TeamID: 6002, PlayerID: 1003, LastChangedDate: april},
			{TeamID: 6002, PlayerID: 1004, LastChangedDate: march},
			{TeamID: 6003, PlayerID: 1005, LastChangedDate: march},
		},
		TeamWeeks: []model.TeamWeek{
			{TeamID: 6001, WeekNumber: "1", FantasyPoints: 101.5, LastChangedDate: march},
			{TeamID: 6001, WeekNumber: "2", FantasyPoints: 98.25, LastChangedDate: march},
			{TeamID: 6001, WeekNumber: "3", FantasyPoints: 120.0, LastChangedDate: april},
			{TeamID: 6001, WeekNumber: "4", FantasyPoints: 87.75, LastChangedDate: april},
			{TeamID: 6002, WeekNumber: "1", FantasyPoints: 110.0, LastChangedDate: march},
			{TeamID: 6002, WeekNumber: "2", FantasyPoints: 92.5, LastChangedDate: march},
		},
	}
}
