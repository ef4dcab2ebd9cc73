package service

import (
	"sync"

	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/ainara-edu/teksplan/internal/standards"
)

// StandardsSession holds the standards database currently backing the UI.
// Loads may run off the UI goroutine, and the subject can change while a
// load is in flight; each load is tagged with a generation number and a
// completion for a superseded generation is discarded, so a slow earlier
// load can never clobber a newer one.
type StandardsSession struct {
	mu      sync.Mutex
	loader  StandardsLoader
	gen     int
	state   domain.StandardsState
	subject string
	result  standards.LoadResult
}

func NewStandardsSession(loader StandardsLoader) *StandardsSession {
	return &StandardsSession{
		loader: loader,
		state:  domain.StandardsNone,
	}
}

// Begin marks a load for subject as pending and returns its generation tag.
func (s *StandardsSession) Begin(subject string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state = domain.StandardsPending
	s.subject = subject
	return s.gen
}

// Complete applies a finished load if gen is still current. Returns false
// when the load was superseded and its result discarded.
func (s *StandardsSession) Complete(gen int, result standards.LoadResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.result = result
	s.state = domain.StandardsReady
	return true
}

// Load runs a synchronous load for subject.
func (s *StandardsSession) Load(subject string) standards.LoadResult {
	gen := s.Begin(subject)
	result := s.loader.Load(subject)
	s.Complete(gen, result)
	return result
}

// State reports the current lifecycle state.
func (s *StandardsSession) State() domain.StandardsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subject reports the subject of the most recent load request.
func (s *StandardsSession) Subject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subject
}

// DB returns the active database. Before the first completed load this is
// an empty database, so lookups degrade to "missing" rather than failing.
func (s *StandardsSession) DB() standards.Database {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result.DB == nil {
		return make(standards.Database)
	}
	return s.result.DB
}

// Result returns the full outcome of the most recent completed load.
func (s *StandardsSession) Result() standards.LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
