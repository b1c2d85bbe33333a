/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package store keeps live game sessions in memory.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/Seednode/impostor/game"
)

type entry struct {
	mu      sync.Mutex
	session *game.Session
	removed bool
}

// Memory is a game.Store backed by a map. Updates to one session are
// serialized; different sessions update independently.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// WithClock overrides time.Now for staleness checks.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

func (m *Memory) lookup(id string) (*entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	return e, ok
}

// Insert stores a new session. It fails with game.ErrSessionExists if the id is taken.
func (m *Memory) Insert(s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[s.ID]; exists {
		return game.ErrSessionExists
	}
	m.sessions[s.ID] = &entry{session: s.Clone()}
	return nil
}

// Get returns a copy of the session.
func (m *Memory) Get(id string) (*game.Session, bool) {
	e, ok := m.lookup(id)
	if !ok {
		return nil, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return nil, false
	}
	return e.session.Clone(), true
}

// Update hands fn a private copy of the session and applies the returned Commit.
func (m *Memory) Update(id string, fn func(s *game.Session) (game.Commit, error)) (*game.Session, error) {
	e, ok := m.lookup(id)
	if !ok {
		return nil, game.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return nil, game.ErrSessionNotFound
	}

	next := e.session.Clone()
	commit, err := fn(next)
	if err != nil {
		return nil, err
	}

	switch commit {
	case game.CommitSave:
		e.session = next
		return next.Clone(), nil
	case game.CommitRemove:
		m.removeLocked(id, e)
		return nil, nil
	default:
		return e.session.Clone(), nil
	}
}

// Delete removes a session if present.
func (m *Memory) Delete(id string) {
	e, ok := m.lookup(id)
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.removed {
		m.removeLocked(id, e)
	}
}

// removeLocked must be called with e.mu held.
func (m *Memory) removeLocked(id string, e *entry) {
	e.removed = true

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[id] == e {
		delete(m.sessions, id)
	}
}

func (m *Memory) Exists(id string) bool {
	_, ok := m.lookup(id)
	return ok
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions nobody is connected to, and sessions untouched for
// longer than ttl. It returns the removed ids.
func (m *Memory) Sweep(ttl time.Duration) []string {
	m.mu.RLock()
	candidates := make(map[string]*entry, len(m.sessions))
	for id, e := range m.sessions {
		candidates[id] = e
	}
	m.mu.RUnlock()

	cutoff := m.now().Add(-ttl)
	var removed []string
	for id, e := range candidates {
		e.mu.Lock()
		if !e.removed && (e.session.ConnectedCount() == 0 || e.session.UpdatedAt.Before(cutoff)) {
			m.removeLocked(id, e)
			removed = append(removed, id)
		}
		e.mu.Unlock()
	}
	return removed
}

// Janitor sweeps every interval until ctx is done. logf, if set, is told about
// each eviction.
func (m *Memory) Janitor(ctx context.Context, interval, ttl time.Duration, logf func(format string, args ...any)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, id := range m.Sweep(ttl) {
				if logf != nil {
					logf("GAMES: Swept idle game %s", id)
				}
			}
		}
	}
}
