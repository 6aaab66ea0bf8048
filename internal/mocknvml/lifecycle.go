package mocknvml

import "github.com/NVIDIA/go-nvml/pkg/nvml"

// Init acquires the session. It always succeeds.
func (l *Library) Init() nvml.Return {
	count := l.session.Acquire()
	l.logger.Debug("mocknvml.session.init", "Session acquired", map[string]interface{}{
		"refcount": count,
	})
	return nvml.SUCCESS
}

// InitWithFlags behaves like Init. Flags are accepted and ignored.
func (l *Library) InitWithFlags(flags uint32) nvml.Return {
	count := l.session.Acquire()
	l.logger.Debug("mocknvml.session.init", "Session acquired", map[string]interface{}{
		"refcount": count,
		"flags":    flags,
	})
	return nvml.SUCCESS
}

// Shutdown releases the session. Releasing an idle session returns
// ERROR_UNINITIALIZED.
func (l *Library) Shutdown() nvml.Return {
	count, ret := l.session.Release()
	if ret != nvml.SUCCESS {
		l.logger.Debug("mocknvml.session.shutdown_idle", "Shutdown without matching init", nil)
		return ret
	}
	l.logger.Debug("mocknvml.session.shutdown", "Session released", map[string]interface{}{
		"refcount": count,
	})
	return nvml.SUCCESS
}
