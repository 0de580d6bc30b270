// Package session owns one UserState per session and serializes pipeline
// runs over it. State is exclusively held by the in-progress run; callers
// never touch a state concurrently with a run on the same session.
package session

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"SmartSaver/internal/model"
)

// Manager tracks live sessions and persists best-effort JSON snapshots.
// An empty dir disables persistence.
type Manager struct {
	mu       sync.Mutex
	dir      string
	sessions map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	state *model.UserState
}

// NewManager creates a Manager, creating the snapshot directory if needed.
func NewManager(dir string) (*Manager, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}
	return &Manager{dir: dir, sessions: make(map[string]*entry)}, nil
}

// Create starts a new session with default state and returns its id.
func (m *Manager) Create() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = &entry{state: model.DefaultState()}
	m.mu.Unlock()
	m.saveSnapshot(id)
	return id
}

// Ensure opens the named session, restoring a persisted snapshot if one
// exists and creating a default state otherwise. Used for well-known ids
// like the scheduler's demo session.
func (m *Manager) Ensure(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureLocked(id)
}

func (m *Manager) ensureLocked(id string) *entry {
	if e, ok := m.sessions[id]; ok {
		return e
	}
	state := m.loadSnapshot(id)
	if state == nil {
		state = model.DefaultState()
	}
	e := &entry{state: state}
	m.sessions[id] = e
	return e
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.sessions[id]; ok {
		return e, nil
	}
	// A snapshot on disk counts as a known session across restarts.
	if m.dir != "" {
		if _, err := os.Stat(m.path(id)); err == nil {
			return m.ensureLocked(id), nil
		}
	}
	return nil, fmt.Errorf("unknown session %q", id)
}

// Snapshot returns the display mapping of the session's current state.
func (m *Manager) Snapshot(id string) (map[string]any, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Snapshot(), nil
}

// Reset replaces the session's state wholesale with a fresh default.
func (m *Manager) Reset(id string) (map[string]any, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.state = model.DefaultState()
	snap := e.state.Snapshot()
	e.mu.Unlock()
	m.saveSnapshot(id)
	return snap, nil
}

// WithState runs fn while holding the session's lock, so at most one
// pipeline run owns the state at a time. fn receives the current state and
// returns the state to keep.
func (m *Manager) WithState(id string, fn func(*model.UserState) *model.UserState) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.state.Normalize()
	e.state = fn(e.state)
	e.mu.Unlock()
	m.saveSnapshot(id)
	return nil
}

func (m *Manager) path(id string) string {
	return filepath.Join(m.dir, id+".json")
}

// saveSnapshot is best-effort: a failed write is logged, never fatal.
func (m *Manager) saveSnapshot(id string) {
	if m.dir == "" {
		return
	}
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := SaveState(m.path(id), e.state); err != nil {
		log.Printf("[ERROR] save session %s: %v", id, err)
	}
}

func (m *Manager) loadSnapshot(id string) *model.UserState {
	if m.dir == "" {
		return nil
	}
	state, err := LoadState(m.path(id))
	if err != nil {
		log.Printf("[WARN] load session %s: %v", id, err)
		return nil
	}
	return state
}
