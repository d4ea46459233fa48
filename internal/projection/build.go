package projection

import (
	"strconv"

	"github.com/maxviazov/fantasy-stats-service/internal/model"
)

// Anomaly is a related row that points at something missing. It is dropped from the output.
type Anomaly struct {
	Kind     string // "roster_player" or "weekly_score_week"
	TeamID   int64
	Dangling string
}

func NewPerformance(p model.Performance) Performance {
	return Performance{
		PerformanceID:   p.ID,
		PlayerID:        p.PlayerID,
		WeekNumber:      p.WeekNumber,
		FantasyPoints:   p.FantasyPoints,
		LastChangedDate: Date(p.LastChangedDate),
	}
}

func NewPerformances(ps []model.Performance) []Performance {
	out := make([]Performance, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewPerformance(p))
	}
	return out
}

func NewPlayerBase(p model.Player) PlayerBase {
	return PlayerBase{
		PlayerID:        p.ID,
		GSISID:          p.GSISID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Position:        p.Position,
		LastChangedDate: Date(p.LastChangedDate),
	}
}

// NewPlayers attaches performances to their players. Input order is kept on both levels.
func NewPlayers(players []model.Player, perfs []model.Performance) []Player {
	byPlayer := make(map[int64][]Performance, len(players))
	for _, p := range perfs {
		byPlayer[p.PlayerID] = append(byPlayer[p.PlayerID], NewPerformance(p))
	}
	out := make([]Player, 0, len(players))
	for _, p := range players {
		doc := Player{PlayerBase: NewPlayerBase(p), Performances: byPlayer[p.ID]}
		if doc.Performances == nil {
			doc.Performances = []Performance{}
		}
		out = append(out, doc)
	}
	return out
}

func NewTeamBase(t model.Team) TeamBase {
	return TeamBase{
		LeagueID:        t.LeagueID,
		TeamID:          t.ID,
		TeamName:        t.Name,
		LastChangedDate: Date(t.LastChangedDate),
	}
}

// NewTeams attaches rosters and weekly scores to their teams.
// Rows whose player or week is missing are left out and returned as anomalies.
func NewTeams(teams []model.Team, rel model.TeamRelations) ([]Team, []Anomaly) {
	var anomalies []Anomaly

	players := make(map[int64][]PlayerBase, len(teams))
	for _, e := range rel.Roster {
		if e.Player == nil {
			anomalies = append(anomalies, Anomaly{Kind: "roster_player", TeamID: e.TeamID, Dangling: strconv.FormatInt(e.PlayerID, 10)})
			continue
		}
		players[e.TeamID] = append(players[e.TeamID], NewPlayerBase(*e.Player))
	}

	scores := make(map[int64][]WeeklyScore, len(teams))
	for _, s := range rel.Scores {
		if !s.WeekExists {
			anomalies = append(anomalies, Anomaly{Kind: "weekly_score_week", TeamID: s.TeamID, Dangling: s.WeekNumber})
			continue
		}
		scores[s.TeamID] = append(scores[s.TeamID], WeeklyScore{
			WeekNumber:      s.WeekNumber,
			FantasyPoints:   s.FantasyPoints,
			LastChangedDate: Date(s.LastChangedDate),
		})
	}

	out := make([]Team, 0, len(teams))
	for _, t := range teams {
		doc := Team{TeamBase: NewTeamBase(t), Players: players[t.ID], WeeklyScores: scores[t.ID]}
		if doc.Players == nil {
			doc.Players = []PlayerBase{}
		}
		if doc.WeeklyScores == nil {
			doc.WeeklyScores = []WeeklyScore{}
		}
		out = append(out, doc)
	}
	return out, anomalies
}

// NewLeagues attaches teams to their leagues.
func NewLeagues(leagues []model.League, teams []model.Team) []League {
	byLeague := make(map[int64][]TeamBase, len(leagues))
	for _, t := range teams {
		byLeague[t.LeagueID] = append(byLeague[t.LeagueID], NewTeamBase(t))
	}
	out := make([]League, 0, len(leagues))
	for _, l := range leagues {
		doc := League{
			LeagueID:        l.ID,
			LeagueName:      l.Name,
			ScoringType:     l.ScoringType,
			LeagueSize:      l.LeagueSize,
			LastChangedDate: Date(l.LastChangedDate),
			Teams:           byLeague[l.ID],
		}
		if doc.Teams == nil {
			doc.Teams = []TeamBase{}
		}
		out = append(out, doc)
	}
	return out
}

func NewWeek(w model.Week) Week {
	return Week{
		WeekNumber:         w.WeekNumber,
		PPR8MaxPoints:      w.PPR8MaxPoints,
		PPR10MaxPoints:     w.PPR10MaxPoints,
		PPR12MaxPoints:     w.PPR12MaxPoints,
		PPR14MaxPoints:     w.PPR14MaxPoints,
		HalfPPR8MaxPoints:  w.HalfPPR8MaxPoints,
		HalfPPR10MaxPoints: w.HalfPPR10MaxPoints,
		HalfPPR12MaxPoints: w.HalfPPR12MaxPoints,
		HalfPPR14MaxPoints: w.HalfPPR14MaxPoints,
		Std8MaxPoints:      w.Std8MaxPoints,
		Std10MaxPoints:     w.Std10MaxPoints,
		Std12MaxPoints:     w.Std12MaxPoints,
		Std14MaxPoints:     w.Std14MaxPoints,
		LastChangedDate:    Date(w.LastChangedDate),
	}
}

func NewWeeks(ws []model.Week) []Week {
	out := make([]Week, 0, len(ws))
	for _, w := range ws {
		out = append(out, NewWeek(w))
	}
	return out
}

func NewCounts(c model.Counts) Counts {
	return Counts{
		LeagueCount: c.LeagueCount,
		TeamCount:   c.TeamCount,
		PlayerCount: c.PlayerCount,
		WeekCount:   c.WeekCount,
	}
}
