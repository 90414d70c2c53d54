package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type triggerStats struct {
	enqueued  map[string]int
	delivered int
	emptyPolls int
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// watcher ticks, and trigger traffic. It is intentionally simple so it can be
// swapped for a real backend later.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	triggers triggerStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*providerStats),
		triggers: triggerStats{enqueued: make(map[string]int)},
		otel:     otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordTriggerEnqueued counts a trigger entering the queue, by reason.
func (r *Recorder) RecordTriggerEnqueued(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.triggers.enqueued[reason]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTriggerEnqueued(reason)
	}
}

// RecordTriggerPoll counts a poll of the trigger endpoint and whether a
// record was delivered.
func (r *Recorder) RecordTriggerPoll(delivered bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if delivered {
		r.triggers.delivered++
	} else {
		r.triggers.emptyPolls++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTriggerPoll(delivered)
	}
}

// TriggersEnqueued returns the total triggers enqueued for a reason.
func (r *Recorder) TriggersEnqueued(reason string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.triggers.enqueued[reason]
}

// TriggersDelivered returns the total triggers handed to the polling client.
func (r *Recorder) TriggersDelivered() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.triggers.delivered
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordWatcherTick tracks watcher tick cycles and errors.
func (r *Recorder) RecordWatcherTick(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWatcherTick(duration, err)
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
