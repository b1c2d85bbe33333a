/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package game

import (
	"maps"
	"slices"
	"strings"
	"time"
)

const (
	MinPlayers    = 3
	MaxPlayers    = 20
	TotalRounds   = 3
	MaxNameLength = 32
)

// Phase is the stage of the match a session is in.
type Phase string

const (
	PhaseLobby     Phase = "LOBBY"
	PhaseAssigning Phase = "ASSIGNING"
	PhaseRounds    Phase = "ROUNDS"
	PhaseVoting    Phase = "VOTING"
	PhaseResults   Phase = "RESULTS"
	PhaseFinished  Phase = "FINISHED"
)

type Role string

const (
	RoleNone     Role = ""
	RoleImpostor Role = "IMPOSTOR"
	RoleCivil    Role = "CIVIL"
)

type Winner string

const (
	WinnerNone     Winner = ""
	WinnerCivils   Winner = "CIVILS"
	WinnerImpostor Winner = "IMPOSTOR"
	WinnerDraw     Winner = "DRAW"
)

// Participant is one seat in a session. ID is the transport connection id and
// changes on reconnect; Name (case-insensitive) is the stable identity.
type Participant struct {
	ID        string
	Name      string
	Role      Role
	IsHost    bool
	Connected bool
	JoinedAt  time.Time
}

// PlayerStats accumulates results across matches of one session.
type PlayerStats struct {
	PlayerID       string `json:"playerId"`
	Name           string `json:"name"`
	MatchesPlayed  int    `json:"matchesPlayed"`
	ImpostorCount  int    `json:"impostorCount"`
	CaughtCount    int    `json:"caughtCount"`
	CorrectGuesses int    `json:"correctGuesses"`
	DrawCount      int    `json:"drawCount"`
	WinsAsImpostor int    `json:"winsAsImpostor"`
	WinsAsCivil    int    `json:"winsAsCivil"`
}

// Triumphs counts wins plus draws.
func (s PlayerStats) Triumphs() int {
	return s.WinsAsCivil + s.WinsAsImpostor + s.DrawCount
}

// Session is the full authoritative state of one game.
type Session struct {
	ID               string
	HostID           string
	MaxPlayers       int
	Password         string
	WordCategoryID   string
	WordCategoryName string
	Phase            Phase
	Players          []Participant
	CurrentRound     int
	CurrentTurnIndex int
	CivilWord        string
	ImpostorWord     string
	Votes            map[string]string // voter id -> target id
	ImpostorGuess    string
	Winner           Winner
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Stats            map[string]*PlayerStats
}

// Clone returns a deep copy that shares no mutable state with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Players = slices.Clone(s.Players)
	c.Votes = maps.Clone(s.Votes)
	if c.Votes == nil {
		c.Votes = make(map[string]string)
	}
	c.Stats = make(map[string]*PlayerStats, len(s.Stats))
	for id, stats := range s.Stats {
		copied := *stats
		c.Stats[id] = &copied
	}
	return &c
}

func (s *Session) indexOf(id string) int {
	return slices.IndexFunc(s.Players, func(p Participant) bool { return p.ID == id })
}

// Player returns the participant with the given connection id.
func (s *Session) Player(id string) (*Participant, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return &s.Players[i], true
}

func (s *Session) playerByName(name string) (*Participant, bool) {
	for i := range s.Players {
		if strings.EqualFold(s.Players[i].Name, name) {
			return &s.Players[i], true
		}
	}
	return nil, false
}

// Impostor returns the participant currently holding the impostor role.
func (s *Session) Impostor() (*Participant, bool) {
	for i := range s.Players {
		if s.Players[i].Role == RoleImpostor {
			return &s.Players[i], true
		}
	}
	return nil, false
}

func (s *Session) ConnectedCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Connected {
			n++
		}
	}
	return n
}

// EligibleVoters returns the connected participants that are not the impostor.
func (s *Session) EligibleVoters() []Participant {
	var voters []Participant
	for _, p := range s.Players {
		if p.Connected && p.Role != RoleImpostor {
			voters = append(voters, p)
		}
	}
	return voters
}

// CurrentTurnPlayer returns the participant whose turn it is, if the session is in ROUNDS.
func (s *Session) CurrentTurnPlayer() (*Participant, bool) {
	if s.Phase != PhaseRounds || s.CurrentTurnIndex < 0 || s.CurrentTurnIndex >= len(s.Players) {
		return nil, false
	}
	return &s.Players[s.CurrentTurnIndex], true
}

// RebindParticipant moves every reference to oldID over to newID: the seat itself,
// both sides of the vote map, the stats record and the host pointer.
func (s *Session) RebindParticipant(oldID, newID string) {
	if oldID == newID {
		return
	}

	if p, ok := s.Player(oldID); ok {
		p.ID = newID
	}

	votes := make(map[string]string, len(s.Votes))
	for voter, target := range s.Votes {
		if voter == oldID {
			voter = newID
		}
		if target == oldID {
			target = newID
		}
		votes[voter] = target
	}
	s.Votes = votes

	if stats, ok := s.Stats[oldID]; ok {
		delete(s.Stats, oldID)
		stats.PlayerID = newID
		s.Stats[newID] = stats
	}

	if s.HostID == oldID {
		s.HostID = newID
	}
}

func (s *Session) ensureStats(p Participant) *PlayerStats {
	if stats, ok := s.Stats[p.ID]; ok {
		stats.Name = p.Name
		return stats
	}
	stats := &PlayerStats{PlayerID: p.ID, Name: p.Name}
	s.Stats[p.ID] = stats
	return stats
}

func (s *Session) firstConnected() int {
	return s.nextConnected(-1)
}

// nextConnected returns the first connected index strictly after i, or -1.
func (s *Session) nextConnected(i int) int {
	for j := i + 1; j < len(s.Players); j++ {
		if s.Players[j].Connected {
			return j
		}
	}
	return -1
}

// connectedFrom returns the first connected index at or after i, wrapping to the
// first connected participant when none follows.
func (s *Session) connectedFrom(i int) int {
	if j := s.nextConnected(i - 1); j >= 0 {
		return j
	}
	return s.firstConnected()
}

func (s *Session) clearMatch() {
	for i := range s.Players {
		s.Players[i].Role = RoleNone
	}
	s.CivilWord = ""
	s.ImpostorWord = ""
	s.Votes = make(map[string]string)
	s.ImpostorGuess = ""
}

// finish ends the current match without a winner.
func (s *Session) finish() {
	s.clearMatch()
	s.Phase = PhaseFinished
	s.Winner = WinnerNone
}

func (s *Session) transferHost(previousHostID string) {
	var candidates []Participant
	for _, p := range s.Players {
		if p.ID != previousHostID {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return
	}
	slices.SortStableFunc(candidates, func(a, b Participant) int {
		return a.JoinedAt.Compare(b.JoinedAt)
	})

	next := candidates[0]
	for _, p := range candidates {
		if p.Connected {
			next = p
			break
		}
	}

	s.HostID = next.ID
	for i := range s.Players {
		s.Players[i].IsHost = s.Players[i].ID == next.ID
	}
}

func (s *Session) removeVotesInvolving(id string) {
	for voter, target := range s.Votes {
		if voter == id || target == id {
			delete(s.Votes, voter)
		}
	}
}
