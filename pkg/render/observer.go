package render

import (
	"log/slog"
	"time"
)

// CycleInfo describes a finished render cycle.
type CycleInfo struct {
	Nested   int           // 0 for a top-level cycle
	Duration time.Duration // materialize, attach and flush
	Nodes    int           // dom nodes built
	Effects  int           // effects run
	Err      error
}

// Observer is notified when a cycle begins; the returned func is called
// when it ends. The func may be nil.
type Observer interface {
	BeginCycle(nested int) func(CycleInfo)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(nested int) func(CycleInfo)

// BeginCycle implements Observer.
func (f ObserverFunc) BeginCycle(nested int) func(CycleInfo) {
	return f(nested)
}

type multiObserver []Observer

// Observers combines observers. End callbacks run in reverse order.
func Observers(obs ...Observer) Observer {
	var out multiObserver
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

func (m multiObserver) BeginCycle(nested int) func(CycleInfo) {
	dones := make([]func(CycleInfo), 0, len(m))
	for _, o := range m {
		if done := o.BeginCycle(nested); done != nil {
			dones = append(dones, done)
		}
	}
	return func(info CycleInfo) {
		for i := len(dones) - 1; i >= 0; i-- {
			dones[i](info)
		}
	}
}

// LogObserver logs every cycle at debug level and failed cycles at warn.
func LogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default().With("component", "render")
	}
	return ObserverFunc(func(nested int) func(CycleInfo) {
		return func(info CycleInfo) {
			if info.Err != nil {
				logger.Warn("render cycle failed",
					"nested", info.Nested,
					"duration", info.Duration,
					"error", info.Err)
				return
			}
			logger.Debug("render cycle",
				"nested", info.Nested,
				"duration", info.Duration,
				"nodes", info.Nodes,
				"effects", info.Effects)
		}
	})
}
