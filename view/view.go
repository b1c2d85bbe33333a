/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package view renders what a single participant is allowed to see of a session.
package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Seednode/impostor/game"
)

type PlayerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsHost    bool   `json:"isHost"`
	Connected bool   `json:"connected"`
}

// Self is the requesting participant's private state.
type Self struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	IsHost bool      `json:"isHost"`
	Role   game.Role `json:"role,omitempty"`
	Word   string    `json:"word,omitempty"`
	Vote   string    `json:"vote,omitempty"`
}

type Stats struct {
	game.PlayerStats
	TotalTriumphs int `json:"totalTriumphs"`
}

// View is one participant's redacted snapshot of a session.
type View struct {
	GameID              string          `json:"gameId"`
	Phase               game.Phase      `json:"phase"`
	MaxPlayers          int             `json:"maxPlayers"`
	PasswordRequired    bool            `json:"passwordRequired"`
	HostID              string          `json:"hostId"`
	WordCategoryID      string          `json:"wordCategoryId,omitempty"`
	WordCategoryName    string          `json:"wordCategoryName"`
	Players             []PlayerSummary `json:"players"`
	Self                Self            `json:"self"`
	CurrentRound        int             `json:"currentRound"`
	TotalRounds         int             `json:"totalRounds"`
	CurrentTurnPlayerID string          `json:"currentTurnPlayerId,omitempty"`
	PlayerCount         int             `json:"playerCount"`
	Winner              game.Winner     `json:"winner,omitempty"`
	ImpostorGuess       string          `json:"impostorGuess,omitempty"`
	ImpostorName        string          `json:"impostorName,omitempty"`
	PendingVoters       []string        `json:"pendingVoters"`
	PlayerStats         []Stats         `json:"playerStats"`
}

// ForParticipant projects s for the participant with the given connection id.
func ForParticipant(s *game.Session, participantID string) (View, error) {
	self, ok := s.Player(participantID)
	if !ok {
		return View{}, game.ErrPlayerNotFound
	}

	v := View{
		GameID:           s.ID,
		Phase:            s.Phase,
		MaxPlayers:       s.MaxPlayers,
		PasswordRequired: s.Password != "",
		HostID:           s.HostID,
		WordCategoryID:   s.WordCategoryID,
		WordCategoryName: s.WordCategoryName,
		Players:          make([]PlayerSummary, 0, len(s.Players)),
		Self: Self{
			ID:     self.ID,
			Name:   self.Name,
			IsHost: self.IsHost,
			Role:   self.Role,
			Vote:   s.Votes[self.ID],
		},
		CurrentRound:  s.CurrentRound,
		TotalRounds:   game.TotalRounds,
		PlayerCount:   len(s.Players),
		Winner:        s.Winner,
		PendingVoters: []string{},
		PlayerStats:   statsTable(s),
	}

	for _, p := range s.Players {
		v.Players = append(v.Players, PlayerSummary{
			ID:        p.ID,
			Name:      p.Name,
			IsHost:    p.IsHost,
			Connected: p.Connected,
		})
	}

	switch self.Role {
	case game.RoleImpostor:
		v.Self.Word = s.ImpostorWord
	case game.RoleCivil:
		v.Self.Word = s.CivilWord
	}

	if p, ok := s.CurrentTurnPlayer(); ok {
		v.CurrentTurnPlayerID = p.ID
	}

	reveal := s.Phase == game.PhaseResults
	if reveal || self.Role == game.RoleImpostor {
		v.ImpostorGuess = s.ImpostorGuess
	}
	if reveal {
		if impostor, ok := s.Impostor(); ok {
			v.ImpostorName = impostor.Name
		}
	}

	if s.Phase == game.PhaseVoting {
		for _, p := range s.EligibleVoters() {
			if _, voted := s.Votes[p.ID]; !voted {
				v.PendingVoters = append(v.PendingVoters, p.Name)
			}
		}
	}

	return v, nil
}

// statsTable lists every seated participant's stats, best first: triumphs,
// then correct guesses, then matches played, then name.
func statsTable(s *game.Session) []Stats {
	table := make([]Stats, 0, len(s.Players))
	for _, p := range s.Players {
		var stats game.PlayerStats
		if recorded, ok := s.Stats[p.ID]; ok {
			stats = *recorded
		}
		stats.PlayerID = p.ID
		stats.Name = p.Name
		table = append(table, Stats{PlayerStats: stats, TotalTriumphs: stats.Triumphs()})
	}

	slices.SortFunc(table, func(a, b Stats) int {
		return cmp.Or(
			cmp.Compare(b.TotalTriumphs, a.TotalTriumphs),
			cmp.Compare(b.CorrectGuesses, a.CorrectGuesses),
			cmp.Compare(b.MatchesPlayed, a.MatchesPlayed),
			strings.Compare(a.Name, b.Name),
		)
	})
	return table
}
