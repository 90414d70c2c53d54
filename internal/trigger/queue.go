package trigger

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Reason describes why a trigger was queued.
type Reason string

const (
	ReasonTeamWin     Reason = "TEAM_WIN"
	ReasonScoringPlay Reason = "SCORING_PLAY"
	ReasonManual      Reason = "MANUAL"
)

// Record is one pending actuator pulse. Immutable once created.
type Record struct {
	ID         string
	Reason     Reason
	EnqueuedAt time.Time
}

// Queue is a thread-safe FIFO of pending trigger records. Records leave the
// queue only through TryDequeue, which models the polling client's
// acknowledgment: the producer never removes, and simultaneous detections
// queue independently, delivered one per poll.
//
// The queue is unbounded. Trigger volume per game is inherently small, so
// growth is only possible when nothing polls, and the backlog drains one
// record at a time once polling resumes.
type Queue struct {
	mu           sync.Mutex
	records      []Record
	lastEnqueued time.Time
	lastAcked    time.Time
	now          func() time.Time
}

// NewQueue constructs an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		now: time.Now,
	}
}

// Enqueue appends a record for the given reason and returns it.
func (q *Queue) Enqueue(reason Reason) Record {
	q.mu.Lock()
	defer q.mu.Unlock()

	rec := Record{
		ID:         uuid.NewString(),
		Reason:     reason,
		EnqueuedAt: q.now().UTC(),
	}
	q.records = append(q.records, rec)
	q.lastEnqueued = rec.EnqueuedAt
	return rec
}

// TryDequeue atomically removes and returns the oldest record, if any.
// A record handed out here is gone: if the response never reaches the
// polling client it is not retried.
func (q *Queue) TryDequeue() (Record, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.records) == 0 {
		return Record{}, false
	}

	rec := q.records[0]
	q.records = q.records[1:]
	q.lastAcked = q.now().UTC()
	return rec, true
}

// Depth returns the number of pending records.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// Timestamps returns the last enqueue and last acknowledgment times.
// Zero values mean the event has not happened yet.
func (q *Queue) Timestamps() (lastEnqueued, lastAcknowledged time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.lastEnqueued, q.lastAcked
}
