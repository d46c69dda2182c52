package theme

import "sync"

// Service holds the process-wide moonlight mode flag. The flag starts off
// at boot, is reachable only through these accessors, and is ephemeral:
// nothing persists it across restarts.
type Service struct {
	mu      sync.Mutex
	enabled bool
}

// NewService returns the flag in its initial (disabled) state.
func NewService() *Service {
	return &Service{}
}

// Enabled reports whether moonlight mode is on.
func (s *Service) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Toggle flips the flag and returns the new value.
func (s *Service) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = !s.enabled
	return s.enabled
}

// Set forces the flag to a known value.
func (s *Service) Set(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}
