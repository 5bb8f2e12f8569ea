package metrics

import (
	"sync"
	"sync/atomic"
)

// MetricKey is a strongly typed metric identifier.
type MetricKey string

// Metric keys (centralized)
const (
	// Source
	SourceFetchTotal         MetricKey = "source_fetch_total"
	SourceFetchFailuresTotal MetricKey = "source_fetch_failures_total"

	// Advisor
	RulesEvaluatedTotal MetricKey = "advisor_rules_evaluated_total"
	RulesTriggeredTotal MetricKey = "advisor_rules_triggered_total"

	// Report
	ReportWritesTotal        MetricKey = "report_writes_total"
	ReportWriteFailuresTotal MetricKey = "report_write_failures_total"
)

// Registry stores the counters of a run.
type Registry struct {
	mu       sync.RWMutex
	counters map[MetricKey]*int64
}

// NewRegistry creates a metrics registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[MetricKey]*int64),
	}
}

// Inc increments a metric by 1.
func (r *Registry) Inc(key MetricKey) {
	r.Add(key, 1)
}

// Add increments a metric by delta. A nil registry ignores the update.
func (r *Registry) Add(key MetricKey, delta int64) {
	if r == nil {
		return
	}
	atomic.AddInt64(r.counter(key), delta)
}

// Get returns the current value of key, zero when it was never touched.
func (r *Registry) Get(key MetricKey) int64 {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ptr, ok := r.counters[key]
	if !ok {
		return 0
	}
	return atomic.LoadInt64(ptr)
}

// counter returns the slot for key, creating it on first use.
func (r *Registry) counter(key MetricKey) *int64 {
	r.mu.RLock()
	ptr, ok := r.counters[key]
	r.mu.RUnlock()
	if ok {
		return ptr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another writer may have won the race
	if ptr, ok = r.counters[key]; ok {
		return ptr
	}
	ptr = new(int64)
	r.counters[key] = ptr
	return ptr
}
