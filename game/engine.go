/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package game is the authoritative impostor state machine. Every session
// mutation goes through an Engine command; commands either apply completely or
// return an error and leave the session untouched.
package game

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/impostor/words"
)

const (
	sessionIDLength = 6
	sessionIDChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	maxIDAttempts   = 32
)

// ErrSessionExists is returned by Store.Insert when the id is taken.
var ErrSessionExists = errors.New("session id already in use")

// Commit tells a Store what to do with a mutated session.
type Commit int

const (
	// CommitDiscard drops the mutated copy and keeps the stored session.
	CommitDiscard Commit = iota
	// CommitSave replaces the stored session with the mutated copy.
	CommitSave
	// CommitRemove deletes the session.
	CommitRemove
)

// Store owns the live sessions. Update must serialize calls for the same id,
// pass fn a private copy, and only persist it according to the returned Commit.
// Update returns ErrSessionNotFound for unknown ids and a nil session after
// CommitRemove.
type Store interface {
	Insert(s *Session) error
	Get(id string) (*Session, bool)
	Update(id string, fn func(s *Session) (Commit, error)) (*Session, error)
}

// Result is what a command produced: the committed session (nil if the session
// was removed or never existed) and the events to broadcast, in order.
type Result struct {
	Session *Session
	Events  []Event
	Removed bool
}

type Engine struct {
	store   Store
	catalog *words.Catalog
	now     func() time.Time

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

type Option func(*Engine)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithRand overrides the random source used for ids, roles, words and seating.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func NewEngine(store Store, catalog *words.Catalog, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:])
		e.rng = rand.New(rand.NewChaCha8(seed))
	}
	return e
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLength {
		name = strings.TrimSpace(string(r[:MaxNameLength]))
	}
	return name
}

func normalizePassword(password string) string {
	return strings.TrimSpace(password)
}

func (e *Engine) newSessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	code := make([]byte, sessionIDLength)
	for i := range code {
		code[i] = sessionIDChars[e.rng.IntN(len(sessionIDChars))]
	}
	return string(code)
}

func (e *Engine) resolveCategory(id string) (string, string, error) {
	catID, catName, err := e.catalog.Resolve(id)
	if errors.Is(err, words.ErrUnknownCategory) {
		return "", "", ErrInvalidCategory
	}
	return catID, catName, err
}

// mutate runs fn against a private copy of the session and saves it on success.
func (e *Engine) mutate(id string, fn func(s *Session) ([]Event, error)) (Result, error) {
	var events []Event
	s, err := e.store.Update(id, func(s *Session) (Commit, error) {
		evs, err := fn(s)
		if err != nil {
			return CommitDiscard, err
		}
		events = evs
		s.UpdatedAt = e.now()
		return CommitSave, nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Session: s, Events: events}, nil
}

// Snapshot returns a copy of the current session state.
func (e *Engine) Snapshot(sessionID string) (*Session, error) {
	s, ok := e.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// CreateSession opens a lobby with the caller as host.
func (e *Engine) CreateSession(hostConnID, hostName string, maxPlayers int, password, categoryID string) (Result, error) {
	name := normalizeName(hostName)
	if name == "" {
		return Result{}, newError(CodeValidation, "El nombre del host es obligatorio.")
	}
	if maxPlayers < MinPlayers || maxPlayers > MaxPlayers {
		return Result{}, errorf(CodeValidation, "El número de jugadores debe estar entre %d y %d.", MinPlayers, MaxPlayers)
	}
	catID, catName, err := e.resolveCategory(categoryID)
	if err != nil {
		return Result{}, err
	}

	now := e.now()
	host := Participant{
		ID:        hostConnID,
		Name:      name,
		IsHost:    true,
		Connected: true,
		JoinedAt:  now,
	}
	s := &Session{
		HostID:           hostConnID,
		MaxPlayers:       maxPlayers,
		Password:         normalizePassword(password),
		WordCategoryID:   catID,
		WordCategoryName: catName,
		Phase:            PhaseLobby,
		Players:          []Participant{host},
		Votes:            make(map[string]string),
		CreatedAt:        now,
		UpdatedAt:        now,
		Stats:            make(map[string]*PlayerStats),
	}
	s.ensureStats(host)

	for attempt := 1; ; attempt++ {
		s.ID = e.newSessionID()
		err := e.store.Insert(s.Clone())
		if err == nil {
			break
		}
		if !errors.Is(err, ErrSessionExists) || attempt >= maxIDAttempts {
			return Result{}, fmt.Errorf("insert session: %w", err)
		}
	}

	return Result{Session: s}, nil
}

// JoinSession seats a new player, or reconnects a disconnected player that
// comes back under the same name.
func (e *Engine) JoinSession(sessionID, connID, rawName, password string) (Result, error) {
	name := normalizeName(rawName)

	return e.mutate(sessionID, func(s *Session) ([]Event, error) {
		if name == "" {
			return nil, newError(CodeValidation, "El nombre es obligatorio.")
		}

		existing, found := s.playerByName(name)
		isReconnect := found && !existing.Connected

		if s.Phase != PhaseLobby && !isReconnect {
			return nil, ErrGameAlreadyStarted
		}
		if p, ok := s.Player(connID); ok && p.Connected {
			return nil, ErrAlreadyJoined
		}
		if s.Password != "" && s.Password != normalizePassword(password) {
			return nil, ErrPasswordMismatch
		}
		if found && existing.Connected {
			return nil, ErrDuplicateName
		}
		if len(s.Players) >= s.MaxPlayers && !isReconnect {
			return nil, ErrSessionFull
		}

		if isReconnect {
			s.RebindParticipant(existing.ID, connID)
			existing.Connected = true
			s.ensureStats(*existing)
			return nil, nil
		}

		p := Participant{
			ID:        connID,
			Name:      name,
			Connected: true,
			JoinedAt:  e.now(),
		}
		s.Players = append(s.Players, p)
		s.ensureStats(p)
		return nil, nil
	})
}

// StartGame deals the first match once the lobby is full.
func (e *Engine) StartGame(sessionID, requesterID string) (Result, error) {
	return e.mutate(sessionID, func(s *Session) ([]Event, error) {
		if s.HostID != requesterID {
			return nil, ErrNotHost
		}
		if s.Phase != PhaseLobby {
			return nil, ErrAlreadyStarted
		}
		if len(s.Players) != s.MaxPlayers {
			return nil, ErrLobbyNotFull
		}
		if s.ConnectedCount() < MinPlayers {
			return nil, ErrNotEnoughPlayers
		}

		s.Phase = PhaseAssigning
		return e.prepareNewMatch(s)
	})
}

// prepareNewMatch deals words and roles, reseats everyone and opens round one.
func (e *Engine) prepareNewMatch(s *Session) ([]Event, error) {
	var connected []int
	for i, p := range s.Players {
		if p.Connected {
			connected = append(connected, i)
		}
	}
	if len(connected) == 0 {
		return nil, ErrNoConnectedPlayers
	}

	e.mu.Lock()
	pair, err := e.catalog.RandomPair(e.rng, s.WordCategoryID)
	if err != nil {
		e.mu.Unlock()
		if errors.Is(err, words.ErrUnknownCategory) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("draw word pair: %w", err)
	}
	impostor := connected[e.rng.IntN(len(connected))]

	for i := range s.Players {
		switch {
		case i == impostor:
			s.Players[i].Role = RoleImpostor
		case s.Players[i].Connected:
			s.Players[i].Role = RoleCivil
		default:
			s.Players[i].Role = RoleNone
		}
	}

	e.rng.Shuffle(len(s.Players), func(i, j int) {
		s.Players[i], s.Players[j] = s.Players[j], s.Players[i]
	})
	e.mu.Unlock()

	s.CivilWord = pair.Civil
	s.ImpostorWord = pair.Impostor
	s.Phase = PhaseRounds
	s.CurrentRound = 1
	s.Votes = make(map[string]string)
	s.ImpostorGuess = ""
	s.Winner = WinnerNone

	first := s.firstConnected()
	s.CurrentTurnIndex = first

	p := s.Players[first]
	return []Event{
		RoundStarted{Round: 1},
		TurnStarted{PlayerID: p.ID, PlayerName: p.Name, Round: 1},
	}, nil
}

// MarkTurnDone ends the caller's turn and moves to the next speaker, the next
// round, or voting.
func (e *Engine) MarkTurnDone(sessionID, connID string) (Result, error) {
	return e.mutate(sessionID, func(s *Session) ([]Event, error) {
		if s.Phase != PhaseRounds {
			return nil, ErrNotInRoundsPhase
		}
		if s.ConnectedCount() < MinPlayers {
			s.finish()
			return nil, nil
		}

		current := s.nextConnected(s.CurrentTurnIndex - 1)
		if current < 0 {
			s.finish()
			return nil, nil
		}
		s.CurrentTurnIndex = current
		if s.Players[current].ID != connID {
			return nil, ErrNotYourTurn
		}

		next := s.nextConnected(current)
		if next >= 0 {
			s.CurrentTurnIndex = next
			p := s.Players[next]
			return []Event{TurnStarted{PlayerID: p.ID, PlayerName: p.Name, Round: s.CurrentRound}}, nil
		}

		if s.CurrentRound >= TotalRounds {
			s.Phase = PhaseVoting
			s.CurrentTurnIndex = 0
			return []Event{VotingStarted{}}, nil
		}

		s.CurrentRound++
		first := s.firstConnected()
		s.CurrentTurnIndex = first
		p := s.Players[first]
		return []Event{
			RoundStarted{Round: s.CurrentRound},
			TurnStarted{PlayerID: p.ID, PlayerName: p.Name, Round: s.CurrentRound},
		}, nil
	})
}

// CastVote records (or replaces) a civilian's accusation.
func (e *Engine) CastVote(sessionID, voterID, targetID string) (Result, error) {
	return e.mutate(sessionID, func(s *Session) ([]Event, error) {
		if s.Phase != PhaseVoting {
			return nil, ErrNotVotingPhase
		}
		voter, ok := s.Player(voterID)
		if !ok {
			return nil, ErrPlayerNotFound
		}
		if voter.Role == RoleImpostor {
			return nil, ErrImpostorCannotVote
		}
		target, ok := s.Player(targetID)
		if !ok {
			return nil, ErrInvalidTarget
		}
		if target.ID == voter.ID {
			return nil, ErrCannotVoteSelf
		}

		s.Votes[voter.ID] = target.ID
		return e.resolve(s)
	})
}

// SubmitImpostorGuess records the impostor's guess at the civilian word.
func (e *Engine) SubmitImpostorGuess(sessionID, connID, guess string) (Result, error) {
	return e.mutate(sessionID, func(s *Session) ([]Event, error) {
		if s.Phase != PhaseVoting {
			return nil, ErrNotVotingPhase
		}
		p, ok := s.Player(connID)
		if !ok || p.Role != RoleImpostor {
			return nil, ErrNotImpostor
		}
		guess = strings.TrimSpace(guess)
		if guess == "" {
			return nil, ErrEmptyGuess
		}

		s.ImpostorGuess = guess
		return e.resolve(s)
	})
}

// resolve closes the vote once every eligible voter has voted. The impostor's
// guess does not gate it.
func (e *Engine) resolve(s *Session) ([]Event, error) {
	if s.Phase != PhaseVoting {
		return nil, nil
	}

	voters := s.EligibleVoters()
	counts := make(map[string]int, len(voters))
	for _, v := range voters {
		target, ok := s.Votes[v.ID]
		if !ok {
			return nil, nil
		}
		counts[target]++
	}

	impostor, ok := s.Impostor()
	if !ok {
		return nil, newError(CodeInternal, "no impostor assigned during voting")
	}

	top, topVotes := s.plurality(counts)
	caught := top == impostor.ID && 2*topVotes > len(voters)
	guessCorrect := WordsMatch(s.ImpostorGuess, s.CivilWord)

	switch {
	case caught && guessCorrect:
		s.Winner = WinnerDraw
	case caught:
		s.Winner = WinnerCivils
	default:
		s.Winner = WinnerImpostor
	}
	s.Phase = PhaseResults
	s.recordResults(impostor.ID, caught, guessCorrect)

	return []Event{ResultsReady{
		Winner:               s.Winner,
		ImpostorID:           impostor.ID,
		ImpostorGuessCorrect: guessCorrect,
	}}, nil
}

// plurality picks the most voted participant. Ties go to whoever joined the
// session first, then to seating order.
func (s *Session) plurality(counts map[string]int) (string, int) {
	var (
		best      string
		bestVotes int
		bestJoin  time.Time
	)
	for _, p := range s.Players {
		n := counts[p.ID]
		if n == 0 {
			continue
		}
		if n > bestVotes || (n == bestVotes && p.JoinedAt.Before(bestJoin)) {
			best, bestVotes, bestJoin = p.ID, n, p.JoinedAt
		}
	}
	return best, bestVotes
}

func (s *Session) recordResults(impostorID string, caught, guessCorrect bool) {
	for _, p := range s.Players {
		stats := s.ensureStats(p)
		stats.MatchesPlayed++

		switch {
		case p.ID == impostorID:
			stats.ImpostorCount++
			if caught {
				stats.CaughtCount++
			}
			if guessCorrect {
				stats.CorrectGuesses++
			}
			switch s.Winner {
			case WinnerImpostor:
				stats.WinsAsImpostor++
			case WinnerDraw:
				stats.DrawCount++
			}
		case p.Role == RoleCivil:
			switch s.Winner {
			case WinnerCivils:
				stats.WinsAsCivil++
			case WinnerDraw:
				stats.DrawCount++
			}
		}
	}
}

// RestartGame deals a new match after results, optionally switching category.
func (e *Engine) RestartGame(sessionID, requesterID, categoryID string) (Result, error) {
	return e.mutate(sessionID, func(s *Session) ([]Event, error) {
		if s.HostID != requesterID {
			return nil, ErrNotHost
		}
		if s.Phase != PhaseResults {
			return nil, ErrMatchNotFinished
		}
		if s.ConnectedCount() < MinPlayers {
			return nil, ErrNotEnoughPlayers
		}

		if categoryID == "" {
			categoryID = s.WordCategoryID
		}
		catID, catName, err := e.resolveCategory(categoryID)
		if err != nil {
			return nil, err
		}
		s.WordCategoryID = catID
		s.WordCategoryName = catName

		s.Phase = PhaseAssigning
		return e.prepareNewMatch(s)
	})
}

// ReshuffleRolesAndWords re-deals the current match from any started phase.
func (e *Engine) ReshuffleRolesAndWords(sessionID, requesterID string) (Result, error) {
	return e.mutate(sessionID, func(s *Session) ([]Event, error) {
		if s.HostID != requesterID {
			return nil, ErrNotHost
		}
		if s.Phase == PhaseLobby {
			return nil, ErrNotStartedYet
		}
		if s.ConnectedCount() < MinPlayers {
			return nil, ErrNotEnoughPlayers
		}

		s.Phase = PhaseAssigning
		return e.prepareNewMatch(s)
	})
}

// LeaveSession removes a participant. With disconnectOnly the seat is kept
// (marked disconnected) when removing it would shrink the roster below
// MinPlayers, so the player can reconnect by name. Losing the impostor mid-match
// ends it, and a departure that leaves every remaining voter done closes the vote.
func (e *Engine) LeaveSession(sessionID, connID string, disconnectOnly bool) (Result, error) {
	var events []Event
	s, err := e.store.Update(sessionID, func(s *Session) (Commit, error) {
		i := s.indexOf(connID)
		if i < 0 {
			return CommitDiscard, nil
		}
		wasHost := s.HostID == connID
		wasImpostor := s.Players[i].Role == RoleImpostor

		if disconnectOnly && len(s.Players)-1 < MinPlayers {
			s.Players[i].Connected = false
		} else {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			s.removeVotesInvolving(connID)
			delete(s.Stats, connID)
			if i < s.CurrentTurnIndex {
				s.CurrentTurnIndex--
			}
			if wasImpostor && (s.Phase == PhaseRounds || s.Phase == PhaseVoting) {
				s.finish()
			}
		}

		if len(s.Players) == 0 {
			return CommitRemove, nil
		}

		if wasHost {
			s.transferHost(connID)
		}
		if s.Phase != PhaseLobby && s.ConnectedCount() < MinPlayers {
			s.finish()
		}

		if s.CurrentTurnIndex < 0 || s.CurrentTurnIndex >= len(s.Players) {
			s.CurrentTurnIndex = 0
		}
		if j := s.connectedFrom(s.CurrentTurnIndex); j >= 0 {
			s.CurrentTurnIndex = j
		}

		evs, err := e.resolve(s)
		if err != nil {
			return CommitDiscard, err
		}
		events = evs

		s.UpdatedAt = e.now()
		return CommitSave, nil
	})
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return Result{}, nil
	case err != nil:
		return Result{}, err
	}
	return Result{Session: s, Events: events, Removed: s == nil}, nil
}

// Touch records a heartbeat from connID, keeping the session fresh for the
// sweeper and marking the participant connected.
func (e *Engine) Touch(sessionID, connID string) (Result, error) {
	s, err := e.store.Update(sessionID, func(s *Session) (Commit, error) {
		p, ok := s.Player(connID)
		if !ok {
			return CommitDiscard, nil
		}
		p.Connected = true
		s.UpdatedAt = e.now()
		return CommitSave, nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Session: s}, nil
}
