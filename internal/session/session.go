// Package session implements the reference-counted init/shutdown gate.
package session

import (
	"sync"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Session counts outstanding Acquire calls. The zero value is an idle
// session ready for use.
type Session struct {
	mu    sync.Mutex
	count uint64
}

// New returns an idle session.
func New() *Session {
	return &Session{}
}

var (
	defaultOnce    sync.Once
	defaultSession *Session
)

// Default returns the process-wide session shared by callers that do not
// inject their own.
func Default() *Session {
	defaultOnce.Do(func() {
		defaultSession = New()
	})
	return defaultSession
}

// Acquire increments the counter. It always succeeds and returns the new
// count.
func (s *Session) Acquire() uint64 {
	s.mu.Lock()
	s.count++
	n := s.count
	s.mu.Unlock()
	return n
}

// Release decrements the counter. Releasing an idle session returns
// ERROR_UNINITIALIZED and leaves the counter at zero.
func (s *Session) Release() (uint64, nvml.Return) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return 0, nvml.ERROR_UNINITIALIZED
	}
	s.count--
	return s.count, nvml.SUCCESS
}

// Active reports whether at least one Acquire is outstanding.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count > 0
}

// Count returns the number of outstanding acquires.
func (s *Session) Count() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
