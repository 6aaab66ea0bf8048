package session

import (
	"sync"
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_StartsIdle(t *testing.T) {
	s := New()
	assert.False(t, s.Active())
	assert.Equal(t, uint64(0), s.Count())

	var zero Session
	assert.False(t, zero.Active())
}

func TestSession_ReleaseIdle(t *testing.T) {
	s := New()

	n, ret := s.Release()
	assert.Equal(t, nvml.ERROR_UNINITIALIZED, ret)
	assert.Equal(t, uint64(0), n)
	assert.Equal(t, uint64(0), s.Count())
}

func TestSession_NetCount(t *testing.T) {
	tests := []struct {
		name         string
		acquires     int
		releases     int
		wantActive   bool
		wantFailures int
	}{
		{"balanced", 3, 3, false, 0},
		{"more acquires", 5, 2, true, 0},
		{"more releases", 2, 5, false, 3},
		{"no acquires", 0, 2, false, 2},
		{"single", 1, 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			for i := 0; i < tt.acquires; i++ {
				s.Acquire()
			}

			failures := 0
			for i := 0; i < tt.releases; i++ {
				if _, ret := s.Release(); ret == nvml.ERROR_UNINITIALIZED {
					failures++
				}
			}

			assert.Equal(t, tt.wantActive, s.Active())
			assert.Equal(t, tt.wantFailures, failures)
		})
	}
}

func TestSession_ConcurrentAcquireRelease(t *testing.T) {
	s := New()
	const workers = 32
	const rounds = 500

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				s.Acquire()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, uint64(workers*rounds), s.Count())

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				_, ret := s.Release()
				assert.Equal(t, nvml.SUCCESS, ret)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(0), s.Count())
	assert.False(t, s.Active())
}

func TestDefault_Shared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
