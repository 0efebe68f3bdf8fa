// Package storage holds finished interviews. Only an in-memory store exists;
// it keeps the most recent snapshot plus a bounded history.
package storage

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/talentscout/internal/interview"
)

const defaultHistory = 16

// Memory is an in-process stand-in for candidate storage.
type Memory struct {
	mu      sync.RWMutex
	history []interview.Snapshot
	limit   int
	logger  *zap.Logger
}

var _ interview.Store = (*Memory)(nil)

// NewMemory creates a store keeping up to limit snapshots (a default when <= 0).
func NewMemory(limit int, logger *zap.Logger) *Memory {
	if limit <= 0 {
		limit = defaultHistory
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Memory{limit: limit, logger: logger}
}

// SaveCandidate stores a copy of snapshot.
func (m *Memory) SaveCandidate(ctx context.Context, snapshot interview.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snapshot.SessionID == "" {
		return errors.New("snapshot has no session id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, clone(snapshot))
	if len(m.history) > m.limit {
		m.history = m.history[len(m.history)-m.limit:]
	}

	m.logger.Debug("candidate snapshot stored",
		zap.String("session_id", snapshot.SessionID),
		zap.Int("answers", len(snapshot.Answers)),
		zap.Int("stored", len(m.history)),
	)
	return nil
}

// LastSaved returns the most recent snapshot.
func (m *Memory) LastSaved() (interview.Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.history) == 0 {
		return interview.Snapshot{}, false
	}
	return clone(m.history[len(m.history)-1]), true
}

// Get looks a snapshot up by session id.
func (m *Memory) Get(sessionID string) (interview.Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.history) - 1; i >= 0; i-- {
		if m.history[i].SessionID == sessionID {
			return clone(m.history[i]), true
		}
	}
	return interview.Snapshot{}, false
}

// Len reports how many snapshots are kept.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.history)
}

func clone(s interview.Snapshot) interview.Snapshot {
	out := s
	out.Candidate.Technologies = append([]string(nil), s.Candidate.Technologies...)
	out.Questions = append(out.Questions[:0:0], s.Questions...)
	out.Answers = append(out.Answers[:0:0], s.Answers...)
	return out
}
