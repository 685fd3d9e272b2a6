package memory

import (
	"time"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

// Seed match ids. Only the Clásico carries events and lineups.
const (
	SeedMatchClasico  int64 = 3825848
	SeedMatchAnoeta   int64 = 3825861
	SeedMatchBernabeu int64 = 3825865
)

// Seed player ids.
const (
	SeedPlayerPique   int64 = 5213
	SeedPlayerRakitic int64 = 5470
	SeedPlayerMessi   int64 = 5503
	SeedPlayerSuarez  int64 = 5246
	SeedPlayerArda    int64 = 6374
	SeedPlayerRamos   int64 = 5201
	SeedPlayerIsco    int64 = 5211
	SeedPlayerBale    int64 = 4926
	SeedPlayerBenzema int64 = 19677
	SeedPlayerRonaldo int64 = 5207
)

const (
	seedTeamBarcelona  = "Barcelona"
	seedTeamRealMadrid = "Real Madrid"
)

// SeedDataset is a three-match demo season used by local runs and tests.
func SeedDataset() *Dataset {
	return NewDataset(SeedMatches(), SeedEvents(), SeedLineups())
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID: SeedMatchClasico, Week: 31, Date: time.Date(2016, 4, 2, 0, 0, 0, 0, time.UTC), KickOff: "20:30:00.000",
			HomeTeam: seedTeamBarcelona, AwayTeam: seedTeamRealMadrid, HomeScore: 1, AwayScore: 2,
			Stadium: "Camp Nou", Referee: "Alejandro José Hernández Hernández",
		},
		{
			ID: SeedMatchAnoeta, Week: 32, Date: time.Date(2016, 4, 9, 0, 0, 0, 0, time.UTC), KickOff: "20:30:00.000",
			HomeTeam: "Real Sociedad", AwayTeam: seedTeamBarcelona, HomeScore: 1, AwayScore: 0,
			Stadium: "Estadio Anoeta",
		},
		{
			ID: SeedMatchBernabeu, Week: 32, Date: time.Date(2016, 4, 9, 0, 0, 0, 0, time.UTC), KickOff: "16:00:00.000",
			HomeTeam: seedTeamRealMadrid, AwayTeam: "Eibar", HomeScore: 4, AwayScore: 0,
			Stadium: "Estadio Santiago Bernabéu",
		},
	}
}

type seedPlayer struct {
	id       int64
	name     string
	nickname string
	team     string
	jersey   int
	country  string
	position string
}

var seedSquads = []seedPlayer{
	{SeedPlayerPique, "Gerard Piqué Bernabéu", "Gerard Piqué", seedTeamBarcelona, 3, "Spain", "Center Back"},
	{SeedPlayerRakitic, "Ivan Rakitić", "", seedTeamBarcelona, 4, "Croatia", "Right Center Midfield"},
	{SeedPlayerMessi, "Lionel Andrés Messi Cuccittini", "Lionel Messi", seedTeamBarcelona, 10, "Argentina", "Right Wing"},
	{SeedPlayerSuarez, "Luis Alberto Suárez Díaz", "Luis Suárez", seedTeamBarcelona, 9, "Uruguay", "Center Forward"},
	{SeedPlayerArda, "Arda Turan", "", seedTeamBarcelona, 7, "Turkey", ""},
	{SeedPlayerRamos, "Sergio Ramos García", "Sergio Ramos", seedTeamRealMadrid, 4, "Spain", "Right Center Back"},
	{SeedPlayerIsco, "Francisco Román Alarcón Suárez", "Isco", seedTeamRealMadrid, 22, "Spain", "Center Attacking Midfield"},
	{SeedPlayerBale, "Gareth Frank Bale", "Gareth Bale", seedTeamRealMadrid, 11, "Wales", "Right Wing"},
	{SeedPlayerBenzema, "Karim Benzema", "", seedTeamRealMadrid, 9, "France", "Center Forward"},
	{SeedPlayerRonaldo, "Cristiano Ronaldo dos Santos Aveiro", "Cristiano Ronaldo", seedTeamRealMadrid, 7, "Portugal", "Left Wing"},
}

func seedPlayerByID(id int64) seedPlayer {
	for _, p := range seedSquads {
		if p.id == id {
			return p
		}
	}
	return seedPlayer{}
}

func SeedLineups() []lineup.Entry {
	out := make([]lineup.Entry, 0, len(seedSquads))
	for _, p := range seedSquads {
		entry := lineup.Entry{
			MatchID:      SeedMatchClasico,
			PlayerID:     p.id,
			PlayerName:   p.name,
			Nickname:     p.nickname,
			Team:         p.team,
			JerseyNumber: p.jersey,
			Country:      p.country,
		}
		if p.id == SeedPlayerRamos {
			entry.Cards = []lineup.Card{
				{PlayerName: p.name, Type: lineup.CardYellow, Time: "33:20", Period: 1, Reason: "Foul Committed"},
				{PlayerName: p.name, Type: lineup.CardSecondYellow, Time: "82:40", Period: 2, Reason: "Foul Committed"},
			}
		}
		out = append(out, entry)
	}
	return out
}

type seedEvents struct {
	items []event.Event
}

func (s *seedEvents) add(e event.Event) {
	e.MatchID = SeedMatchClasico
	e.Index = len(s.items) + 1
	if e.Period == 0 {
		e.Period = 1
		if e.Minute >= 45 {
			e.Period = 2
		}
	}
	if e.PlayerID != 0 {
		p := seedPlayerByID(e.PlayerID)
		e.Player = p.name
		e.Team = p.team
	}
	s.items = append(s.items, e)
}

func at(x, y float64) *pitch.Point {
	return &pitch.Point{X: x, Y: y}
}

func startingXI(team string, formation int) event.Event {
	tactics := &event.Tactics{Formation: formation}
	for _, p := range seedSquads {
		if p.team == team && p.position != "" {
			tactics.Lineup = append(tactics.Lineup, event.LineupSlot{
				PlayerID:     p.id,
				Player:       p.name,
				JerseyNumber: p.jersey,
				Position:     p.position,
			})
		}
	}
	return event.Event{ID: "xi-" + team, Type: event.TypeStartingXI, Team: team, Tactics: tactics}
}

func pass(id string, minute int, from, to int64, origin, end *pitch.Point, outcome, passType string) event.Event {
	recipient := seedPlayerByID(to)
	return event.Event{
		ID: id, Minute: minute, Type: event.TypePass, PlayerID: from, Location: origin,
		Pass: &event.Pass{
			Outcome: outcome, Type: passType, Recipient: recipient.name, RecipientID: to, EndLocation: end,
		},
	}
}

func shot(id string, minute int, by int64, origin *pitch.Point, outcome string, xg float64, keyPass string) event.Event {
	return event.Event{
		ID: id, Minute: minute, Type: event.TypeShot, PlayerID: by, Location: origin,
		Shot: &event.Shot{Outcome: outcome, Type: "Open Play", XG: xg, KeyPassID: keyPass, EndLocation: at(120, 40)},
	}
}

// SeedEvents returns the Clásico event stream in feed order.
func SeedEvents() []event.Event {
	s := &seedEvents{}
	s.add(startingXI(seedTeamBarcelona, 433))
	s.add(startingXI(seedTeamRealMadrid, 4231))

	s.add(pass("p-rakitic-messi", 10, SeedPlayerRakitic, SeedPlayerMessi, at(60, 40), at(80, 30), "", ""))
	s.add(event.Event{ID: "r-messi", Minute: 10, Type: event.TypeBallReceipt, PlayerID: SeedPlayerMessi, Location: at(80, 30)})
	s.add(pass("p-messi-suarez", 20, SeedPlayerMessi, SeedPlayerSuarez, at(85, 25), at(100, 40), "", ""))
	s.add(event.Event{ID: "r-suarez", Minute: 20, Type: event.TypeBallReceipt, PlayerID: SeedPlayerSuarez, Location: at(100, 40)})
	s.add(pass("p-isco-bale", 25, SeedPlayerIsco, SeedPlayerBale, at(50, 40), at(70, 70), "", ""))
	s.add(pass("p-messi-lost", 30, SeedPlayerMessi, SeedPlayerSuarez, at(90, 20), at(105, 35), "Incomplete", ""))
	s.add(shot("s-suarez", 30, SeedPlayerSuarez, at(108, 36), "Saved", 0.12, ""))
	s.add(event.Event{ID: "c-messi", Minute: 40, Type: event.TypeCarry, PlayerID: SeedPlayerMessi, Location: at(70, 20)})
	s.add(event.Event{ID: "d-messi", Minute: 41, Type: event.TypeDribble, PlayerID: SeedPlayerMessi, Location: at(75, 22),
		Dribble: &event.Dribble{Outcome: event.DribbleOutcomeComplete}})
	s.add(event.Event{ID: "he-1-bar", Period: 1, Minute: 47, Second: 10, Type: event.TypeHalfEnd, Team: seedTeamBarcelona})
	s.add(event.Event{ID: "he-1-rma", Period: 1, Minute: 47, Second: 10, Type: event.TypeHalfEnd, Team: seedTeamRealMadrid})

	s.add(pass("p-corner", 55, SeedPlayerRakitic, SeedPlayerPique, at(120, 0.1), at(112, 40), "", "Corner"))
	s.add(shot("s-pique", 55, SeedPlayerPique, at(112, 40), "Goal", 0.18, "p-corner"))
	s.add(pass("p-isco-benzema", 61, SeedPlayerIsco, SeedPlayerBenzema, at(80, 40), at(108, 42), "", ""))
	s.add(shot("s-benzema", 61, SeedPlayerBenzema, at(108, 42), "Goal", 0.35, "p-isco-benzema"))
	s.add(event.Event{ID: "sub-rakitic", Minute: 73, Type: event.TypeSubstitution, PlayerID: SeedPlayerRakitic,
		Substitution: &event.Substitution{Replacement: "Arda Turan", ReplacementID: SeedPlayerArda, Outcome: "Tactical"}})
	s.add(event.Event{ID: "f-ramos", Minute: 82, Type: event.TypeFoulCommitted, PlayerID: SeedPlayerRamos, Location: at(40, 60)})
	s.add(event.Event{ID: "fw-messi", Minute: 82, Type: event.TypeFoulWon, PlayerID: SeedPlayerMessi, Location: at(80, 20)})
	s.add(pass("p-bale-ronaldo", 84, SeedPlayerBale, SeedPlayerRonaldo, at(95, 70), at(110, 45), "", ""))
	s.add(shot("s-ronaldo", 84, SeedPlayerRonaldo, at(110, 45), "Goal", 0.41, "p-bale-ronaldo"))
	s.add(event.Event{ID: "he-2-bar", Period: 2, Minute: 93, Second: 5, Type: event.TypeHalfEnd, Team: seedTeamBarcelona})
	s.add(event.Event{ID: "he-2-rma", Period: 2, Minute: 93, Second: 5, Type: event.TypeHalfEnd, Team: seedTeamRealMadrid})
	return s.items
}
