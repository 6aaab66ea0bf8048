// Package mocknvml is the query facade of the mock GPU management library.
//
// Every operation checks, in order: the session is active, required
// outputs are present, handles decode, arguments are in range and caller
// buffers are large enough. Failures are reported as nvml.Return codes,
// never as panics or Go errors.
package mocknvml

import (
	"os"
	"sync"
	"time"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"gpumock/internal/fixture"
	"gpumock/internal/handle"
	"gpumock/internal/logging"
	"gpumock/internal/session"
	"gpumock/internal/topology"
)

// ConfigEnv names a fixture file loaded by Default instead of the built-in
// table.
const ConfigEnv = "MOCK_NVML_CONFIG"

// Library answers queries against one fixture table.
type Library struct {
	table          *fixture.Table
	codec          handle.Codec
	topo           topology.Synthesizer
	session        *session.Session
	logger         *logging.Logger
	procRoot       string
	eventWaitLimit time.Duration

	eventMu      sync.Mutex
	nextEventSet EventSet
}

// Option configures a Library.
type Option func(*Library)

// WithTable serves t instead of the built-in DGX A100 table.
func WithTable(t *fixture.Table) Option {
	return func(l *Library) {
		if t != nil {
			l.table = t
		}
	}
}

// WithSession gates the library on s instead of a private session.
func WithSession(s *session.Session) Option {
	return func(l *Library) {
		if s != nil {
			l.session = s
		}
	}
}

// WithLogger sets the event logger. The default discards events.
func WithLogger(logger *logging.Logger) Option {
	return func(l *Library) {
		l.logger = logger.With("mocknvml")
	}
}

// WithProcRoot points process-name lookups at another procfs mount.
func WithProcRoot(root string) Option {
	return func(l *Library) {
		if root != "" {
			l.procRoot = root
		}
	}
}

// DefaultEventWaitLimit caps EventSetWait unless WithEventWaitLimit is
// given. It matches the events.max_wait_ms config default.
const DefaultEventWaitLimit = 100 * time.Millisecond

// WithEventWaitLimit caps how long EventSetWait sleeps. Zero returns at
// once.
func WithEventWaitLimit(d time.Duration) Option {
	return func(l *Library) {
		if d >= 0 {
			l.eventWaitLimit = d
		}
	}
}

// New returns a library with its own idle session unless WithSession is
// given.
func New(opts ...Option) *Library {
	l := &Library{
		table:          fixture.DGXA100(),
		session:        session.New(),
		procRoot:       DefaultProcRoot,
		eventWaitLimit: DefaultEventWaitLimit,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.codec = handle.NewCodec(l.table.Count())
	l.topo = topology.New(l.table.Count())

	if l.logger != nil {
		l.logger.Info("mocknvml.fixture.loaded", "Device table ready", map[string]interface{}{
			"devices":        l.table.Count(),
			"driver_version": l.table.System.DriverVersion,
			"fingerprint":    l.table.Fingerprint(),
		})
	}
	return l
}

var (
	defaultOnce    sync.Once
	defaultLibrary *Library
)

// Default returns the process-wide library bound to session.Default. When
// MOCK_NVML_CONFIG names a readable fixture file it is served instead of
// the built-in table.
func Default() *Library {
	defaultOnce.Do(func() {
		logger := logging.NewLogger(logging.LevelWarn)
		opts := []Option{WithSession(session.Default()), WithLogger(logger)}

		if path := os.Getenv(ConfigEnv); path != "" {
			table, err := fixture.Load(path)
			if err != nil {
				logger.Warn("mocknvml.fixture.fallback", "Using built-in table", map[string]interface{}{
					"path":  path,
					"error": err.Error(),
				})
			} else {
				opts = append(opts, WithTable(table))
			}
		}
		defaultLibrary = New(opts...)
	})
	return defaultLibrary
}

// Table returns the device table the library serves.
func (l *Library) Table() *fixture.Table {
	return l.table
}

// Session returns the gate the library checks.
func (l *Library) Session() *session.Session {
	return l.session
}

// gate reports ERROR_UNINITIALIZED when no Init is outstanding.
func (l *Library) gate() nvml.Return {
	if !l.session.Active() {
		return nvml.ERROR_UNINITIALIZED
	}
	return nvml.SUCCESS
}

// device runs the session gate and decodes h.
func (l *Library) device(h handle.Handle) (*fixture.DeviceRecord, nvml.Return) {
	if ret := l.gate(); ret != nvml.SUCCESS {
		return nil, ret
	}
	return l.lookup(h)
}

// lookup decodes h without consulting the session.
func (l *Library) lookup(h handle.Handle) (*fixture.DeviceRecord, nvml.Return) {
	index, ok := l.codec.Decode(h)
	if !ok {
		return nil, nvml.ERROR_INVALID_ARGUMENT
	}
	rec, ok := l.table.Device(index)
	if !ok {
		return nil, nvml.ERROR_INVALID_ARGUMENT
	}
	return rec, nvml.SUCCESS
}
