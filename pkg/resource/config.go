package resource

import "sync"

// Settings holds process-wide configuration for resource rendering.
// It is read by rendering code only; the resolver is indifferent to it.
type Settings struct {
	mu          sync.RWMutex
	development bool
}

// Config is the process-wide settings instance. It is typically
// configured once at application startup.
var Config = &Settings{}

// Development reports whether development mode is active. In development
// mode compressed file variants are ignored and file hashes are
// recomputed on every read instead of being memoized.
func (s *Settings) Development() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.development
}

// SetDevelopment toggles development mode.
func (s *Settings) SetDevelopment(development bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.development = development
}
