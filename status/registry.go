// Package status is a small metrics registry the session publishes to and the
// frontend debug line reads from
package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys published by the session and frontend
const (
	KeyTicks       = "session.ticks"
	KeySaveOK      = "save.ok"
	KeySaveFailed  = "save.failed"
	KeyLoadOK      = "load.ok"
	KeyLoadFailed  = "load.failed"
	KeySceneActive = "scene.active"
	KeyLoopCount   = "loop.count"
	KeyPaused      = "session.paused"
	KeyPausedMs    = "session.paused.ms"
	KeyFrameMillis = "frame.ms"
)

// Registry groups metric maps by value type
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics of every type
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Inc adds one to the integer metric key
func (r *Registry) Inc(key string) {
	r.Ints.Get(key).Add(1)
}

// Line renders all metrics as "key=value" pairs sorted by type then key
func (r *Registry) Line() string {
	var parts []string
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, k+"="+v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, k+"="+strconv.FormatBool(v.Load()))
	})
	return strings.Join(parts, " ")
}
