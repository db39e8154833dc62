package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the session and read by the debug overlay
const (
	KeyCatches       = "round.catches"
	KeyRejected      = "round.rejected"
	KeyFrames        = "frame.count"
	KeyParticlesLive = "particles.live"
	KeyTokensActive  = "tokens.active"
	KeyElapsedMs     = "round.elapsed_ms"
	KeyFinished      = "round.finished"
	KeyMuted         = "audio.muted"
	KeyHandState     = "hand.state"
	KeyCooldown      = "hand.cooldown"
	KeySamples       = "sensor.samples"
)

// Registry is the central metrics facade
// The session caches pointers at construction; the frame loop writes directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line renders every metric as sorted "key=value" pairs for a single status row
func (r *Registry) Line() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return strings.Join(parts, " ")
}
