package commands

import (
	"errors"
	"sync"
)

// ErrTransitionInFlight is returned when a status transition is requested for
// an entity that already has one in progress. A second click while a request
// is outstanding must be rejected, not queued, to avoid duplicate transitions.
var ErrTransitionInFlight = errors.New("a status transition for this record is already in progress")

// TransitionGuard tracks which entity ids currently have a status transition
// in flight. It is shared by the transition handlers and safe for concurrent
// use.
type TransitionGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTransitionGuard creates an empty guard.
func NewTransitionGuard() *TransitionGuard {
	return &TransitionGuard{
		inFlight: make(map[string]struct{}),
	}
}

// Acquire marks the id as having a transition in flight.
// Returns ErrTransitionInFlight if one is already running for the same id.
func (g *TransitionGuard) Acquire(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[id]; busy {
		return ErrTransitionInFlight
	}
	g.inFlight[id] = struct{}{}
	return nil
}

// Release clears the in-flight mark for the id.
func (g *TransitionGuard) Release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, id)
}
