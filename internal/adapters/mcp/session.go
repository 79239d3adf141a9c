package mcp

import (
	"sync"

	"redpoint/internal/ports"
)

// Session serializes tool calls onto one redpoint tree. The tree itself is
// single-threaded; the MCP server may dispatch handlers concurrently.
type Session struct {
	mu        sync.Mutex
	redpoints ports.Redpoints
}

// NewSession wraps an initialized access point
func NewSession(redpoints ports.Redpoints) *Session {
	return &Session{redpoints: redpoints}
}

// Do runs fn while holding the session lock
func (s *Session) Do(fn func(ports.Redpoints) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.redpoints)
}
