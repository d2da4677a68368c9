package models

// Operation is the kind of remote write a queued mutation performs.
type Operation string

const (
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
	// OpUpsert is used by the habit-log write path, which is keyed on
	// (habit_id, date) and must stay idempotent under at-least-once replay.
	OpUpsert Operation = "UPSERT"
)

// QueuedMutation is a durably persisted record of a pending remote write.
// The queue is an ordered sequence; replay preserves enqueue order. A
// mutation leaves durable storage only when its remote execution succeeds.
type QueuedMutation struct {
	Payload      map[string]any `json:"payload"`
	ID           string         `json:"id"`
	Target       string         `json:"target"`
	Operation    Operation      `json:"operation"`
	ConflictKeys []string       `json:"conflict_keys,omitempty"`
	EnqueuedAt   int64          `json:"enqueued_at"`
}

// PayloadID returns the row identifier carried in the payload.
// UPDATE and DELETE mutations must carry one.
func (m QueuedMutation) PayloadID() (string, bool) {
	v, ok := m.Payload["id"]
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// DeadLetter is a mutation that failed with a terminal (non-retryable)
// remote rejection. Dead letters are kept for inspection instead of being
// replayed forever.
type DeadLetter struct {
	Mutation QueuedMutation `json:"mutation"`
	Reason   string         `json:"reason"`
	FailedAt int64          `json:"failed_at"`
}
